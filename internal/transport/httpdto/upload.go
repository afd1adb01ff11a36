package httpdto

// UploadFileRequest is used for POST /v1/uploads/request
type UploadFileRequest struct {
	URL             string `json:"url"`
	ContentType     string `json:"content_type"`
	CreatePageEntry bool   `json:"create_page_entry"`
	ClientRequestID string `json:"client_request_id,omitempty"`
}

// UploadFileRequestResult is returned after a successful upload request
type UploadFileRequestResult struct {
	ID              string            `json:"id"`
	UploadSignedURL string            `json:"upload_signed_url"`
	UploadHeaders   map[string]string `json:"upload_headers,omitempty"`
}

// UploadFileDTO represents an upload file in API responses
type UploadFileDTO struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
