package analytics

import (
	"encoding/json"
	"time"
)

const EventFileUploadRequest = "file_upload_request"

type Event struct {
	Name       string            `json:"name"`
	UserID     string            `json:"user_id"`
	Properties map[string]string `json:"properties,omitempty"`
}

// Envelope is the wire format handed to publishers.
type Envelope struct {
	EventType  string          `json:"event_type"`
	UserID     string          `json:"user_id"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

func NewEnvelope(e Event, at time.Time) ([]byte, error) {
	payload, err := json.Marshal(e.Properties)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{
		EventType:  e.Name,
		UserID:     e.UserID,
		OccurredAt: at.UTC(),
		Payload:    payload,
	})
}
