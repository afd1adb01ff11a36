package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"paperstash/internal/analytics"
	"paperstash/internal/domain/page"
	"paperstash/internal/domain/upload"
	"paperstash/internal/services/mocks"
	paperstash_errors "paperstash/pkg/errors"
	"paperstash/pkg/logger"
)

type UploadFileServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	uploads *mocks.MockUploadStore
	pages   *mocks.MockPageStore
	issuer  *mocks.MockURLIssuer
	tracker *mocks.MockTracker

	service *UploadFileService
	userID  uuid.UUID
	ctx     context.Context
}

func (s *UploadFileServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.uploads = mocks.NewMockUploadStore(s.ctrl)
	s.pages = mocks.NewMockPageStore(s.ctrl)
	s.issuer = mocks.NewMockURLIssuer(s.ctrl)
	s.tracker = mocks.NewMockTracker(s.ctrl)

	s.service = s.newService(time.Second)
	s.userID = uuid.New()
	s.ctx = WithUserContext(context.Background(), s.userID)
}

func (s *UploadFileServiceTestSuite) newService(issueTimeout time.Duration) *UploadFileService {
	return NewUploadFileService(
		s.uploads,
		s.issuer,
		NewPageReconciler(s.pages),
		s.tracker,
		logger.NewNop(),
		UploadFileConfig{Env: "test", IssueTimeout: issueTimeout},
	)
}

func (s *UploadFileServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestUploadFileServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UploadFileServiceTestSuite))
}

func (s *UploadFileServiceTestSuite) expectTrack() {
	s.tracker.EXPECT().Track(gomock.Any(), gomock.Any()).Do(func(_ context.Context, e analytics.Event) {
		s.Equal(analytics.EventFileUploadRequest, e.Name)
		s.Equal(s.userID.String(), e.UserID)
		s.Equal("test", e.Properties["env"])
	})
}

func (s *UploadFileServiceTestSuite) TestRequestUpload_Unauthorized() {
	_, err := s.service.RequestUpload(context.Background(), RequestUploadInput{
		URL:             "https://example.com/a.pdf",
		ContentType:     "application/pdf",
		CreatePageEntry: true,
	})

	s.ErrorIs(err, paperstash_errors.ErrUnauthorized)
	s.Equal(paperstash_errors.CodeUnauthorized, paperstash_errors.ErrorCode(err))
}

func (s *UploadFileServiceTestSuite) TestRequestUpload_BadURL() {
	s.expectTrack()

	_, err := s.service.RequestUpload(s.ctx, RequestUploadInput{
		URL:             "not a url",
		ContentType:     "application/pdf",
		CreatePageEntry: true,
	})

	s.ErrorIs(err, paperstash_errors.ErrBadInput)
	s.Equal(paperstash_errors.CodeBadInput, paperstash_errors.ErrorCode(err))
}

func (s *UploadFileServiceTestSuite) TestRequestUpload_MissingContentType() {
	s.expectTrack()

	_, err := s.service.RequestUpload(s.ctx, RequestUploadInput{URL: "https://example.com/a.pdf"})

	s.ErrorIs(err, paperstash_errors.ErrBadInput)
}

func (s *UploadFileServiceTestSuite) TestRequestUpload_ClientRequestIDTooLong() {
	s.expectTrack()

	_, err := s.service.RequestUpload(s.ctx, RequestUploadInput{
		URL:             "https://example.com/a.pdf",
		ContentType:     "application/pdf",
		CreatePageEntry: true,
		ClientRequestID: strings.Repeat("c", page.MaxIDLength+1),
	})

	s.ErrorIs(err, paperstash_errors.ErrBadInput)
	s.Equal(paperstash_errors.CodeBadInput, paperstash_errors.ErrorCode(err))
}

func (s *UploadFileServiceTestSuite) TestRequestUpload_ClientRequestIDAtLimit() {
	id := strings.Repeat("c", page.MaxIDLength)

	s.expectTrack()
	s.uploads.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	s.issuer.EXPECT().IssueUploadURL(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(upload.SignedURL{Path: "u/x/a.pdf", URL: "https://signed"}, nil)
	s.pages.EXPECT().GetByUserURL(gomock.Any(), gomock.Any(), gomock.Any()).Return(page.Page{}, paperstash_errors.ErrNotFound)
	s.pages.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *page.Page) (string, error) {
		return p.ID, nil
	})

	_, err := s.service.RequestUpload(s.ctx, RequestUploadInput{
		URL:             "https://example.com/a.pdf",
		ContentType:     "application/pdf",
		CreatePageEntry: true,
		ClientRequestID: id,
	})

	s.Require().NoError(err)
}

func (s *UploadFileServiceTestSuite) TestRequestUpload_WithoutPageEntry() {
	var created upload.UploadFile

	s.expectTrack()
	s.uploads.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *upload.UploadFile) error {
		created = *u
		return nil
	})
	s.issuer.EXPECT().IssueUploadURL(gomock.Any(), gomock.Any(), "My-Paper.pdf", "application/pdf").
		DoAndReturn(func(_ context.Context, id uuid.UUID, name, contentType string) (upload.SignedURL, error) {
			s.Equal(created.ID, id, "upload must exist before the URL is issued")
			return upload.SignedURL{
				Path:    "u/" + id.String() + "/" + name,
				URL:     "https://bucket.example/signed",
				Headers: map[string]string{"Content-Type": contentType},
			}, nil
		})

	result, err := s.service.RequestUpload(s.ctx, RequestUploadInput{
		URL:         "https://example.com/docs/My-Paper.pdf#p2",
		ContentType: "application/pdf",
	})

	s.Require().NoError(err)
	s.Equal(created.ID, result.ID)
	s.Equal("https://bucket.example/signed", result.UploadSignedURL)
	s.Equal(map[string]string{"Content-Type": "application/pdf"}, result.UploadHeaders)
	s.Equal(upload.StatusInitialized, created.Status)
	s.Equal(s.userID, created.UserID)
	s.Equal("https://example.com/docs/My-Paper.pdf#p2", created.URL)
	s.Equal("My-Paper.pdf", created.FileName)
	s.Equal("application/pdf", created.ContentType)
}

func (s *UploadFileServiceTestSuite) TestRequestUpload_CreatesPage() {
	s.expectTrack()
	s.uploads.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	s.issuer.EXPECT().IssueUploadURL(gomock.Any(), gomock.Any(), "a.pdf", "application/pdf").
		DoAndReturn(func(_ context.Context, id uuid.UUID, name, _ string) (upload.SignedURL, error) {
			return upload.SignedURL{Path: "u/" + id.String() + "/" + name, URL: "https://signed"}, nil
		})
	s.pages.EXPECT().GetByUserURL(gomock.Any(), s.userID, "https://example.com/a.pdf").
		Return(page.Page{}, paperstash_errors.ErrNotFound)
	s.pages.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *page.Page) (string, error) {
		s.Equal("client-1", p.ID)
		s.Equal(s.userID, p.UserID)
		s.Equal("https://example.com/a.pdf", p.URL)
		s.Equal("a", p.Title)
		s.Equal(page.PageTypeFile, p.PageType)
		s.Equal(page.StateProcessing, p.State)
		s.Equal(SlugOf(p.Hash), p.Slug)
		s.Nil(p.ArchivedAt)
		s.Require().NotNil(p.UploadFileID)
		return p.ID, nil
	})

	result, err := s.service.RequestUpload(s.ctx, RequestUploadInput{
		URL:             "https://example.com/a.pdf",
		ContentType:     "application/pdf",
		CreatePageEntry: true,
		ClientRequestID: "client-1",
	})

	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, result.ID)
}

func (s *UploadFileServiceTestSuite) TestRequestUpload_ExistingPageTouched() {
	s.expectTrack()
	s.uploads.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	s.issuer.EXPECT().IssueUploadURL(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(upload.SignedURL{Path: "u/x/a.pdf", URL: "https://signed"}, nil)
	s.pages.EXPECT().GetByUserURL(gomock.Any(), s.userID, "https://example.com/a.pdf").
		Return(page.Page{ID: "existing"}, nil)
	s.pages.EXPECT().Touch(gomock.Any(), "existing", gomock.Any()).Return(nil)

	_, err := s.service.RequestUpload(s.ctx, RequestUploadInput{
		URL:             "https://example.com/a.pdf",
		ContentType:     "application/pdf",
		CreatePageEntry: true,
	})

	s.Require().NoError(err)
}

func (s *UploadFileServiceTestSuite) TestRequestUpload_CreateFails() {
	s.expectTrack()
	s.uploads.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	_, err := s.service.RequestUpload(s.ctx, RequestUploadInput{
		URL:             "https://example.com/a.pdf",
		ContentType:     "application/pdf",
		CreatePageEntry: true,
	})

	s.ErrorIs(err, paperstash_errors.ErrFailedCreate)
	s.Equal(paperstash_errors.CodeFailedCreate, paperstash_errors.ErrorCode(err))
	var stageErr *paperstash_errors.StageError
	s.Require().ErrorAs(err, &stageErr)
	s.Equal(paperstash_errors.StageCreateUpload, stageErr.Stage)
}

func (s *UploadFileServiceTestSuite) TestRequestUpload_IssuerFails() {
	s.expectTrack()
	s.uploads.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	s.issuer.EXPECT().IssueUploadURL(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(upload.SignedURL{}, errors.New("access denied"))

	_, err := s.service.RequestUpload(s.ctx, RequestUploadInput{
		URL:             "https://example.com/a.pdf",
		ContentType:     "application/pdf",
		CreatePageEntry: true,
	})

	s.ErrorIs(err, paperstash_errors.ErrFailedCreate)
	var stageErr *paperstash_errors.StageError
	s.Require().ErrorAs(err, &stageErr)
	s.Equal(paperstash_errors.StageIssueSignedURL, stageErr.Stage)
}

func (s *UploadFileServiceTestSuite) TestRequestUpload_IssuerTimeout() {
	s.service = s.newService(20 * time.Millisecond)

	s.expectTrack()
	s.uploads.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	s.issuer.EXPECT().IssueUploadURL(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ uuid.UUID, _, _ string) (upload.SignedURL, error) {
			<-ctx.Done()
			return upload.SignedURL{}, ctx.Err()
		})

	_, err := s.service.RequestUpload(s.ctx, RequestUploadInput{
		URL:         "https://example.com/a.pdf",
		ContentType: "application/pdf",
	})

	s.ErrorIs(err, paperstash_errors.ErrFailedCreate)
	s.ErrorIs(err, context.DeadlineExceeded)
}

func (s *UploadFileServiceTestSuite) TestRequestUpload_ReconcileFails() {
	s.expectTrack()
	s.uploads.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	s.issuer.EXPECT().IssueUploadURL(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(upload.SignedURL{Path: "u/x/a.pdf", URL: "https://signed"}, nil)
	s.pages.EXPECT().GetByUserURL(gomock.Any(), gomock.Any(), gomock.Any()).Return(page.Page{}, paperstash_errors.ErrNotFound)
	s.pages.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return("", errors.New("deadlock detected"))

	_, err := s.service.RequestUpload(s.ctx, RequestUploadInput{
		URL:             "https://example.com/a.pdf",
		ContentType:     "application/pdf",
		CreatePageEntry: true,
	})

	s.ErrorIs(err, paperstash_errors.ErrFailedCreate)
	var stageErr *paperstash_errors.StageError
	s.Require().ErrorAs(err, &stageErr)
	s.Equal(paperstash_errors.StageReconcilePage, stageErr.Stage)
}

func TestNewUploadFileService_Defaults(t *testing.T) {
	svc := NewUploadFileService(nil, nil, nil, nil, logger.NewNop(), UploadFileConfig{})
	if svc.cfg.IssueTimeout != 10*time.Second {
		t.Fatalf("issue timeout = %s, want 10s", svc.cfg.IssueTimeout)
	}
	if _, ok := svc.tracker.(analytics.NopTracker); !ok {
		t.Fatalf("tracker = %T, want NopTracker", svc.tracker)
	}
}
