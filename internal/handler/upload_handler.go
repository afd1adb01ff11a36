package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"paperstash/internal/domain/upload"
	"paperstash/internal/services"
	"paperstash/internal/transport/httpdto"
	paperstash_errors "paperstash/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UploadRequester interface {
	RequestUpload(ctx context.Context, in services.RequestUploadInput) (services.RequestUploadResult, error)
}

type UploadReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (upload.UploadFile, error)
}

type UploadHandler struct {
	service UploadRequester
	uploads UploadReader
}

func NewUploadHandler(service UploadRequester, uploads UploadReader) *UploadHandler {
	return &UploadHandler{service: service, uploads: uploads}
}

func (h *UploadHandler) RequestUpload(c *gin.Context) {
	var req httpdto.UploadFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", paperstash_errors.CodeBadInput))
		return
	}

	result, err := h.service.RequestUpload(c.Request.Context(), services.RequestUploadInput{
		URL:             req.URL,
		ContentType:     req.ContentType,
		CreatePageEntry: req.CreatePageEntry,
		ClientRequestID: req.ClientRequestID,
	})
	if err != nil {
		code := paperstash_errors.ErrorCode(err)
		c.JSON(paperstash_errors.HTTPStatus(err), httpdto.NewErrorResponse(publicMessage(code), code))
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.UploadFileRequestResult{
		ID:              result.ID.String(),
		UploadSignedURL: result.UploadSignedURL,
		UploadHeaders:   result.UploadHeaders,
	}))
}

func (h *UploadHandler) GetByID(c *gin.Context) {
	userID, ok := services.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized", paperstash_errors.CodeUnauthorized))
		return
	}
	uploadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid upload id", "INVALID_REQUEST"))
		return
	}
	item, err := h.uploads.GetByID(c.Request.Context(), uploadID)
	if err != nil && !errors.Is(err, paperstash_errors.ErrNotFound) {
		_ = c.Error(err)
		c.Status(http.StatusInternalServerError)
		return
	}
	if err != nil || item.UserID != userID {
		c.JSON(http.StatusNotFound, httpdto.NewErrorResponse("upload not found", "NOT_FOUND"))
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(toUploadFileDTO(item)))
}

func toUploadFileDTO(u upload.UploadFile) httpdto.UploadFileDTO {
	return httpdto.UploadFileDTO{
		ID:          u.ID.String(),
		URL:         u.URL,
		FileName:    u.FileName,
		ContentType: u.ContentType,
		Status:      string(u.Status),
		CreatedAt:   u.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   u.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func publicMessage(code string) string {
	switch code {
	case paperstash_errors.CodeUnauthorized:
		return "unauthorized"
	case paperstash_errors.CodeBadInput:
		return "invalid url"
	default:
		return "failed to create upload"
	}
}
