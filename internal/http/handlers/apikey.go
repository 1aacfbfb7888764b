package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/quizbank/quizbank-backend/internal/domain"
	"github.com/quizbank/quizbank-backend/internal/http/middleware"
	"github.com/quizbank/quizbank-backend/internal/http/response"
	"github.com/quizbank/quizbank-backend/internal/pkg/logger"
	"github.com/quizbank/quizbank-backend/internal/repos"
)

type APIKeyHandler struct {
	log  *logger.Logger
	db   *gorm.DB
	keys repos.APIKeyRepo
}

func NewAPIKeyHandler(log *logger.Logger, db *gorm.DB, keys repos.APIKeyRepo) *APIKeyHandler {
	return &APIKeyHandler{
		log:  log.With("handler", "APIKeyHandler"),
		db:   db,
		keys: keys,
	}
}

// maskedKeySet never returns stored keys to the client, only whether each
// provider is configured.
type maskedKeySet struct {
	HasOpenAIKey bool   `json:"has_openai_key"`
	HasGeminiKey bool   `json:"has_gemini_key"`
	AIProvider   string `json:"ai_provider"`
}

// GET /api/api-keys
func (h *APIKeyHandler) GetKeys(c *gin.Context) {
	userID := middleware.UserID(c)
	keys, err := h.keys.GetByUser(c.Request.Context(), nil, userID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "get_keys_failed", err)
		return
	}
	out := maskedKeySet{AIProvider: "openai"}
	if keys != nil {
		out.HasOpenAIKey = keys.OpenAIKey != ""
		out.HasGeminiKey = keys.GeminiKey != ""
		out.AIProvider = keys.AIProvider
	}
	response.RespondOK(c, out)
}

type saveKeysRequest struct {
	OpenAIKey  string `json:"openai_key"`
	GeminiKey  string `json:"gemini_key"`
	AIProvider string `json:"ai_provider"`
}

// PUT /api/api-keys
func (h *APIKeyHandler) SaveKeys(c *gin.Context) {
	userID := middleware.UserID(c)
	var req saveKeysRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	provider := strings.ToLower(strings.TrimSpace(req.AIProvider))
	if provider == "" {
		provider = "openai"
	}

	row := &domain.APIKeySet{
		UserID:     userID,
		OpenAIKey:  strings.TrimSpace(req.OpenAIKey),
		GeminiKey:  strings.TrimSpace(req.GeminiKey),
		AIProvider: provider,
	}
	if err := h.keys.Upsert(c.Request.Context(), nil, row); err != nil {
		response.RespondError(c, http.StatusInternalServerError, "save_keys_failed", err)
		return
	}
	response.RespondOK(c, maskedKeySet{
		HasOpenAIKey: row.OpenAIKey != "",
		HasGeminiKey: row.GeminiKey != "",
		AIProvider:   row.AIProvider,
	})
}
