package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"paperstash/config"
	"paperstash/pkg/database"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const usage = `
Paperstash - Database CLI Tool

Usage:
  migrate [command]

Commands:
  up          Create or update the upload_files and pages tables
  status      Show database connection status and row counts
  reset       Drop all tables and re-run migrations (DANGEROUS)
  truncate    Truncate all tables (DANGEROUS)

Examples:
  go run cmd/migrate/main.go up
  go run cmd/migrate/main.go status
`

func main() {
	flag.Usage = func() {
		fmt.Print(usage)
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	command := flag.Arg(0)

	cfg := config.LoadConfig()
	db, err := database.Open(database.DSN(cfg), gormlogger.Warn)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	defer database.Close(db)

	ctx := context.Background()

	switch command {
	case "up":
		log.Println("🚀 Running migrations UP...")
		if err := database.Migrate(db); err != nil {
			log.Fatalf("❌ Migration failed: %v", err)
		}
		log.Println("✅ Migrations completed successfully!")
	case "status":
		showStatus(ctx, db)
	case "reset":
		log.Println("⚠️  WARNING: This will DROP all tables and re-run migrations!")
		if err := database.DropAllTables(db); err != nil {
			log.Fatalf("❌ Failed to drop tables: %v", err)
		}
		if err := database.Migrate(db); err != nil {
			log.Fatalf("❌ Migration failed: %v", err)
		}
		log.Println("✅ Database reset completed!")
	case "truncate":
		log.Println("⚠️  WARNING: This will TRUNCATE all tables!")
		if err := database.TruncateAllTables(ctx, db); err != nil {
			log.Fatalf("❌ Truncate failed: %v", err)
		}
		log.Println("✅ All tables truncated!")
	default:
		fmt.Printf("Unknown command: %s\n", command)
		flag.Usage()
		os.Exit(1)
	}
}

func showStatus(ctx context.Context, db *gorm.DB) {
	log.Println("🔍 Checking database status...")

	if err := database.HealthCheck(ctx, db); err != nil {
		log.Fatalf("❌ Database connection failed: %v", err)
	}
	log.Println("✅ Database connection: OK")

	for _, table := range database.Tables {
		if !database.TableExists(db, table) {
			log.Printf("❌ Table %-20s does not exist", table)
			continue
		}
		count, err := database.TableCount(ctx, db, table)
		if err != nil {
			log.Printf("⚠️  Error counting table %s: %v", table, err)
			continue
		}
		log.Printf("✅ Table %-20s exists (%d rows)", table, count)
	}
}
