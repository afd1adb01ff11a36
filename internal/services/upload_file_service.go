package services

import (
	"context"
	"time"

	"paperstash/internal/analytics"
	"paperstash/internal/domain/page"
	"paperstash/internal/domain/upload"
	paperstash_errors "paperstash/pkg/errors"
	"paperstash/pkg/logger"

	"github.com/google/uuid"
)

type UploadFileConfig struct {
	Env          string
	StripWWW     bool
	IssueTimeout time.Duration
}

type RequestUploadInput struct {
	URL             string
	ContentType     string
	CreatePageEntry bool
	ClientRequestID string
}

type RequestUploadResult struct {
	ID              uuid.UUID
	UploadSignedURL string
	UploadHeaders   map[string]string
}

// UploadFileService handles requests to archive a remote document: it
// validates the location, records the upload, issues a signed write URL and
// optionally files the document in the user's library.
type UploadFileService struct {
	uploads    UploadStore
	issuer     URLIssuer
	reconciler *PageReconciler
	tracker    Tracker
	logger     *logger.Logger
	cfg        UploadFileConfig
}

func NewUploadFileService(
	uploads UploadStore,
	issuer URLIssuer,
	reconciler *PageReconciler,
	tracker Tracker,
	l *logger.Logger,
	cfg UploadFileConfig,
) *UploadFileService {
	if cfg.IssueTimeout <= 0 {
		cfg.IssueTimeout = 10 * time.Second
	}
	if tracker == nil {
		tracker = analytics.NopTracker{}
	}
	return &UploadFileService{
		uploads:    uploads,
		issuer:     issuer,
		reconciler: reconciler,
		tracker:    tracker,
		logger:     l,
		cfg:        cfg,
	}
}

// RequestUpload runs validate, create upload, issue URL and (optionally)
// reconcile page, in that order. The returned error is always one of
// ErrUnauthorized, ErrBadInput or an error matching ErrFailedCreate.
func (s *UploadFileService) RequestUpload(ctx context.Context, in RequestUploadInput) (RequestUploadResult, error) {
	userID, ok := UserIDFromContext(ctx)
	if !ok {
		return RequestUploadResult{}, paperstash_errors.ErrUnauthorized
	}
	log := s.logger.WithContext(ctx)

	s.tracker.Track(ctx, analytics.Event{
		Name:   analytics.EventFileUploadRequest,
		UserID: userID.String(),
		Properties: map[string]string{
			"url": in.URL,
			"env": s.cfg.Env,
		},
	})

	normalized, err := ValidateUploadURL(in.URL, URLOptions{StripWWW: s.cfg.StripWWW})
	if err != nil {
		log.Infof("upload request rejected: invalid url %q", in.URL)
		return RequestUploadResult{}, paperstash_errors.ErrBadInput
	}
	if in.ContentType == "" {
		log.Infof("upload request rejected: missing content type")
		return RequestUploadResult{}, paperstash_errors.ErrBadInput
	}
	if len(in.ClientRequestID) > page.MaxIDLength {
		log.Infof("upload request rejected: client request id longer than %d", page.MaxIDLength)
		return RequestUploadResult{}, paperstash_errors.ErrBadInput
	}

	record := &upload.UploadFile{
		ID:          uuid.New(),
		URL:         in.URL,
		UserID:      userID,
		FileName:    normalized.FileName,
		ContentType: in.ContentType,
		Status:      upload.StatusInitialized,
	}
	if err := s.uploads.Create(ctx, record); err != nil {
		return RequestUploadResult{}, s.fail(log, paperstash_errors.StageCreateUpload, err)
	}

	issueCtx, cancel := context.WithTimeout(ctx, s.cfg.IssueTimeout)
	issued, err := s.issuer.IssueUploadURL(issueCtx, record.ID, normalized.FileName, in.ContentType)
	cancel()
	if err != nil {
		return RequestUploadResult{}, s.fail(log, paperstash_errors.StageIssueSignedURL, err)
	}

	if in.CreatePageEntry {
		pageID, err := s.reconciler.Reconcile(ctx, ReconcileInput{
			UserID:          userID,
			URL:             normalized.URL,
			Path:            issued.Path,
			Title:           normalized.Title,
			UploadFileID:    record.ID,
			ClientRequestID: in.ClientRequestID,
		})
		if err != nil {
			return RequestUploadResult{}, s.fail(log, paperstash_errors.StageReconcilePage, err)
		}
		log.Debugf("upload %s filed as page %s", record.ID, pageID)
	}

	log.Infof("upload %s requested for %s", record.ID, normalized.URL)
	return RequestUploadResult{
		ID:              record.ID,
		UploadSignedURL: issued.URL,
		UploadHeaders:   issued.Headers,
	}, nil
}

// fail logs the failing stage and collapses err into FailedCreate. A
// created upload file is left INITIALIZED for the janitor.
func (s *UploadFileService) fail(log *logger.Logger, stage string, err error) error {
	log.Errorf("upload request failed at %s: %v", stage, err)
	return paperstash_errors.NewStageError(stage, err)
}
