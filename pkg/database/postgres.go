package database

import (
	"context"
	"fmt"
	"time"

	"paperstash/config"
	"paperstash/internal/domain/page"
	"paperstash/internal/domain/upload"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func DSN(cfg *config.Config) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode)
}

// Open connects to Postgres with the pool settings used by the API.
func Open(dsn string, logLevel gormlogger.LogLevel) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get generic database object: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// Migrate creates or updates the upload_files and pages tables, including
// the (user_id, url) unique index on pages.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&upload.UploadFile{}, &page.Page{})
}

func HealthCheck(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Tables lists the tables owned by this service, in drop order.
var Tables = []string{"pages", "upload_files"}

func TableExists(db *gorm.DB, table string) bool {
	return db.Migrator().HasTable(table)
}

func TableCount(ctx context.Context, db *gorm.DB, table string) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Table(table).Count(&count).Error
	return count, err
}

func DropAllTables(db *gorm.DB) error {
	for _, table := range Tables {
		if err := db.Migrator().DropTable(table); err != nil {
			return fmt.Errorf("drop %s: %w", table, err)
		}
	}
	return nil
}

func TruncateAllTables(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Exec("TRUNCATE TABLE pages, upload_files RESTART IDENTITY CASCADE").Error
}
