package page

import (
	"time"

	"github.com/google/uuid"
)

type PageType string

const (
	PageTypeFile    PageType = "FILE"
	PageTypeArticle PageType = "ARTICLE"
)

type State string

const (
	StateProcessing State = "PROCESSING"
	StateSucceeded  State = "SUCCEEDED"
	StateFailed     State = "FAILED"
)

// MaxIDLength bounds Page.ID, which callers may supply.
const MaxIDLength = 64

// Page represents pages, a user's saved document. (UserID, URL) is unique.
type Page struct {
	ID                         string     `gorm:"type:varchar(64);primaryKey" json:"id"`
	UserID                     uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_pages_user_url,priority:1" json:"user_id"`
	URL                        string     `gorm:"not null;uniqueIndex:idx_pages_user_url,priority:2" json:"url"`
	Title                      string     `gorm:"not null;default:''" json:"title"`
	Slug                       string     `gorm:"not null" json:"slug"`
	Hash                       string     `gorm:"not null" json:"hash"`
	Content                    string     `gorm:"type:text;not null;default:''" json:"content"`
	PageType                   PageType   `gorm:"type:varchar(16);not null" json:"page_type"`
	State                      State      `gorm:"type:varchar(16);not null" json:"state"`
	UploadFileID               *uuid.UUID `gorm:"type:uuid;index" json:"upload_file_id,omitempty"`
	ReadingProgressPercent     float64    `gorm:"not null;default:0" json:"reading_progress_percent"`
	ReadingProgressAnchorIndex int        `gorm:"not null;default:0" json:"reading_progress_anchor_index"`
	SavedAt                    time.Time  `gorm:"not null" json:"saved_at"`
	ArchivedAt                 *time.Time `json:"archived_at,omitempty"`
	CreatedAt                  time.Time  `json:"created_at"`
	UpdatedAt                  time.Time  `json:"updated_at"`
}

func (Page) TableName() string {
	return "pages"
}
