package handlers

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/quizbank/quizbank-backend/internal/http/middleware"
	"github.com/quizbank/quizbank-backend/internal/http/response"
	"github.com/quizbank/quizbank-backend/internal/pkg/logger"
	"github.com/quizbank/quizbank-backend/internal/scan"
	"github.com/quizbank/quizbank-backend/internal/services"
)

type ScanHandler struct {
	log     *logger.Logger
	scanner services.ScanService
}

func NewScanHandler(log *logger.Logger, scanner services.ScanService) *ScanHandler {
	return &ScanHandler{
		log:     log.With("handler", "ScanHandler"),
		scanner: scanner,
	}
}

type scanRequest struct {
	ImageBase64  string `json:"image_base64" binding:"required"`
	MimeType     string `json:"mime_type"`
	Topic        string `json:"topic"`
	MergeTopicID string `json:"merge_topic_id"`
}

// POST /api/scan
func (h *ScanHandler) ScanPage(c *gin.Context) {
	userID := middleware.UserID(c)

	var req scanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	image, err := base64.StdEncoding.DecodeString(req.ImageBase64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_image", err)
		return
	}

	var mergeTopicID *uuid.UUID
	if raw := strings.TrimSpace(req.MergeTopicID); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_merge_topic_id", err)
			return
		}
		mergeTopicID = &id
	}

	summary, err := h.scanner.ScanImage(c.Request.Context(), userID, image, req.MimeType, strings.TrimSpace(req.Topic), mergeTopicID)
	if err != nil {
		respondScanError(c, err)
		return
	}
	response.RespondOK(c, summary)
}

func respondScanError(c *gin.Context, err error) {
	var malformed *scan.MalformedResponseError
	var shape *scan.InvalidShapeError
	switch {
	case errors.As(err, &malformed):
		response.RespondError(c, http.StatusBadGateway, "malformed_model_response", err)
	case errors.As(err, &shape):
		response.RespondError(c, http.StatusBadGateway, "invalid_model_payload", err)
	case errors.Is(err, services.ErrNoAPIKey):
		response.RespondError(c, http.StatusPreconditionFailed, "no_api_key", err)
	default:
		respondImportError(c, err)
	}
}
