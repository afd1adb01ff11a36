//go:build integration

package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"paperstash/internal/domain/page"
	"paperstash/internal/domain/upload"
	"paperstash/pkg/database"
	paperstash_errors "paperstash/pkg/errors"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *gorm.DB
	uploads   UploadRepository
	pages     PageRepository
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := database.Open(connStr, gormlogger.Silent)
	s.Require().NoError(err)
	s.Require().NoError(database.Migrate(db))
	s.db = db
	s.uploads = NewUploadRepository(db)
	s.pages = NewPageRepository(db)
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		_ = database.Close(s.db)
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	s.Require().NoError(database.TruncateAllTables(s.ctx, s.db))
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) newPage(id string, userID uuid.UUID, url string) *page.Page {
	return &page.Page{
		ID:       id,
		UserID:   userID,
		URL:      url,
		Title:    "a",
		Slug:     "u-x-a-pdf-0000",
		Hash:     "u/x/a.pdf",
		PageType: page.PageTypeFile,
		State:    page.StateProcessing,
		SavedAt:  time.Now(),
	}
}

func (s *PostgresIntegrationSuite) TestUploads_CreateAndGet() {
	u := &upload.UploadFile{
		ID:          uuid.New(),
		URL:         "https://example.com/a.pdf",
		UserID:      uuid.New(),
		FileName:    "a.pdf",
		ContentType: "application/pdf",
		Status:      upload.StatusInitialized,
	}
	s.Require().NoError(s.uploads.Create(s.ctx, u))
	s.ErrorIs(s.uploads.Create(s.ctx, u), paperstash_errors.ErrAlreadyExists)

	got, err := s.uploads.GetByID(s.ctx, u.ID)
	s.Require().NoError(err)
	s.Equal(u.FileName, got.FileName)
	s.Equal(upload.StatusInitialized, got.Status)

	_, err = s.uploads.GetByID(s.ctx, uuid.New())
	s.ErrorIs(err, paperstash_errors.ErrNotFound)
}

func (s *PostgresIntegrationSuite) TestUploads_MarkStaleFailed() {
	u := &upload.UploadFile{ID: uuid.New(), URL: "x", UserID: uuid.New(), FileName: "a", ContentType: "b", Status: upload.StatusInitialized}
	s.Require().NoError(s.uploads.Create(s.ctx, u))

	n, err := s.uploads.MarkStaleFailed(s.ctx, time.Hour)
	s.Require().NoError(err)
	s.Zero(n)

	n, err = s.uploads.MarkStaleFailed(s.ctx, -time.Minute)
	s.Require().NoError(err)
	s.Equal(int64(1), n)

	got, err := s.uploads.GetByID(s.ctx, u.ID)
	s.Require().NoError(err)
	s.Equal(upload.StatusFailed, got.Status)
}

func (s *PostgresIntegrationSuite) TestPages_UpsertDedupes() {
	userID := uuid.New()

	id, err := s.pages.Upsert(s.ctx, s.newPage("p1", userID, "https://example.com/a.pdf"))
	s.Require().NoError(err)
	s.Equal("p1", id)

	s.Require().NoError(s.db.Model(&page.Page{}).Where("id = ?", "p1").Update("archived_at", time.Now()).Error)

	id, err = s.pages.Upsert(s.ctx, s.newPage("p2", userID, "https://example.com/a.pdf"))
	s.Require().NoError(err)
	s.Equal("p1", id)

	got, err := s.pages.GetByUserURL(s.ctx, userID, "https://example.com/a.pdf")
	s.Require().NoError(err)
	s.Equal("p1", got.ID)
	s.Nil(got.ArchivedAt)

	var count int64
	s.Require().NoError(s.db.Model(&page.Page{}).Count(&count).Error)
	s.Equal(int64(1), count)
}

func (s *PostgresIntegrationSuite) TestPages_Touch() {
	userID := uuid.New()
	_, err := s.pages.Upsert(s.ctx, s.newPage("p1", userID, "https://example.com/a.pdf"))
	s.Require().NoError(err)

	later := time.Now().Add(time.Hour).UTC().Truncate(time.Microsecond)
	s.Require().NoError(s.pages.Touch(s.ctx, "p1", later))

	got, err := s.pages.GetByUserURL(s.ctx, userID, "https://example.com/a.pdf")
	s.Require().NoError(err)
	s.True(got.SavedAt.Equal(later))

	s.ErrorIs(s.pages.Touch(s.ctx, "missing", later), paperstash_errors.ErrNotFound)
}

func (s *PostgresIntegrationSuite) TestPages_ConcurrentUpsert() {
	userID := uuid.New()

	const n = 16
	ids := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id, err := s.pages.Upsert(s.ctx, s.newPage(uuid.NewString(), userID, "https://example.com/a.pdf"))
			s.NoError(err)
			ids[i] = id
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		s.Equal(ids[0], id)
	}
	var count int64
	s.Require().NoError(s.db.Model(&page.Page{}).Where("user_id = ?", userID).Count(&count).Error)
	s.Equal(int64(1), count)
}
