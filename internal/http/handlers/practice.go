package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/quizbank/quizbank-backend/internal/http/middleware"
	"github.com/quizbank/quizbank-backend/internal/http/response"
	"github.com/quizbank/quizbank-backend/internal/ingest"
	"github.com/quizbank/quizbank-backend/internal/pkg/logger"
	"github.com/quizbank/quizbank-backend/internal/services"
)

type PracticeHandler struct {
	log       *logger.Logger
	explainer services.ExplainService
}

func NewPracticeHandler(log *logger.Logger, explainer services.ExplainService) *PracticeHandler {
	return &PracticeHandler{
		log:       log.With("handler", "PracticeHandler"),
		explainer: explainer,
	}
}

type checkAnswerRequest struct {
	CorrectAnswer string   `json:"correct_answer" binding:"required"`
	Options       []string `json:"options" binding:"required"`
	Selected      string   `json:"selected"`
}

type checkAnswerResponse struct {
	Correct     bool `json:"correct"`
	AnswerIndex *int `json:"answer_index,omitempty"`
}

// POST /api/practice/check
func (h *PracticeHandler) CheckAnswer(c *gin.Context) {
	var req checkAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	out := checkAnswerResponse{
		Correct: ingest.Resolve(req.CorrectAnswer, req.Options, req.Selected),
	}
	if idx, ok := ingest.AnswerIndex(req.CorrectAnswer, req.Options); ok {
		out.AnswerIndex = &idx
	}
	response.RespondOK(c, out)
}

// POST /api/questions/:id/explain
func (h *PracticeHandler) Explain(c *gin.Context) {
	userID := middleware.UserID(c)
	qid, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}

	text, err := h.explainer.Explain(c.Request.Context(), userID, qid)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrQuestionNotFound):
			response.RespondError(c, http.StatusNotFound, "question_not_found", err)
		case errors.Is(err, services.ErrNoAPIKey):
			response.RespondError(c, http.StatusPreconditionFailed, "no_api_key", err)
		default:
			response.RespondError(c, http.StatusBadGateway, "explain_failed", err)
		}
		return
	}
	response.RespondOK(c, gin.H{"explanation": text})
}
