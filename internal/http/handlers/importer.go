package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/quizbank/quizbank-backend/internal/http/middleware"
	"github.com/quizbank/quizbank-backend/internal/http/response"
	"github.com/quizbank/quizbank-backend/internal/ingest"
	"github.com/quizbank/quizbank-backend/internal/ingest/tabular"
	"github.com/quizbank/quizbank-backend/internal/pkg/logger"
	"github.com/quizbank/quizbank-backend/internal/services"
)

const maxImportBytes = 20 << 20

type ImportHandler struct {
	log      *logger.Logger
	importer services.ImportService
}

func NewImportHandler(log *logger.Logger, importer services.ImportService) *ImportHandler {
	return &ImportHandler{
		log:      log.With("handler", "ImportHandler"),
		importer: importer,
	}
}

// POST /api/import
//
// Accepts either a multipart "file" part or a JSON body
// {"source_name": "...", "text": "..."} for pasted tabular text. An optional
// merge_topic_id form/query value appends the batch to an existing topic.
func (h *ImportHandler) Import(c *gin.Context) {
	userID := middleware.UserID(c)

	sourceName, data, ok := h.readSource(c)
	if !ok {
		return
	}

	mergeTopicID, ok := parseMergeTopicID(c)
	if !ok {
		return
	}

	summary, err := h.importer.ImportFile(c.Request.Context(), userID, sourceName, data, mergeTopicID)
	if err != nil {
		respondImportError(c, err)
		return
	}
	response.RespondOK(c, summary)
}

type pastedImportRequest struct {
	SourceName string `json:"source_name"`
	Text       string `json:"text" binding:"required"`
}

func (h *ImportHandler) readSource(c *gin.Context) (string, []byte, bool) {
	file, header, err := c.Request.FormFile("file")
	if err == nil {
		defer func() { _ = file.Close() }()
		data, readErr := io.ReadAll(io.LimitReader(file, maxImportBytes))
		if readErr != nil {
			response.RespondError(c, http.StatusBadRequest, "read_file_failed", readErr)
			return "", nil, false
		}
		return header.Filename, data, true
	}

	var req pastedImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return "", nil, false
	}
	name := strings.TrimSpace(req.SourceName)
	if name == "" {
		name = "Pasted Questions"
	}
	return name, []byte(req.Text), true
}

func parseMergeTopicID(c *gin.Context) (*uuid.UUID, bool) {
	raw := strings.TrimSpace(c.Query("merge_topic_id"))
	if raw == "" {
		raw = strings.TrimSpace(c.PostForm("merge_topic_id"))
	}
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_merge_topic_id", err)
		return nil, false
	}
	return &id, true
}

func respondImportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ingest.ErrNoValidRows):
		response.RespondError(c, http.StatusUnprocessableEntity, "no_valid_rows", err)
	case errors.Is(err, tabular.ErrEmptySource):
		response.RespondError(c, http.StatusBadRequest, "empty_source", err)
	case errors.Is(err, services.ErrTopicNotFound):
		response.RespondError(c, http.StatusNotFound, "topic_not_found", err)
	default:
		response.RespondError(c, http.StatusInternalServerError, "import_failed", err)
	}
}
