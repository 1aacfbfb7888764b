package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/quizbank/quizbank-backend/internal/domain"
	"github.com/quizbank/quizbank-backend/internal/http/middleware"
	"github.com/quizbank/quizbank-backend/internal/http/response"
	"github.com/quizbank/quizbank-backend/internal/ingest"
	"github.com/quizbank/quizbank-backend/internal/pkg/logger"
	"github.com/quizbank/quizbank-backend/internal/repos"
)

type TopicHandler struct {
	log    *logger.Logger
	db     *gorm.DB
	topics repos.TopicRepo
}

func NewTopicHandler(log *logger.Logger, db *gorm.DB, topics repos.TopicRepo) *TopicHandler {
	return &TopicHandler{
		log:    log.With("handler", "TopicHandler"),
		db:     db,
		topics: topics,
	}
}

// GET /api/topics
func (h *TopicHandler) ListTopics(c *gin.Context) {
	userID := middleware.UserID(c)
	topics, err := h.topics.GetByUser(c.Request.Context(), nil, userID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "list_topics_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"topics": topics})
}

type createTopicRequest struct {
	Name string `json:"name" binding:"required"`
}

// POST /api/topics
func (h *TopicHandler) CreateTopic(c *gin.Context) {
	userID := middleware.UserID(c)
	var req createTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		response.RespondError(c, http.StatusBadRequest, "empty_name", nil)
		return
	}

	topic := &domain.Topic{ID: uuid.New(), UserID: userID, Name: name}
	if _, err := h.topics.Create(c.Request.Context(), nil, []*domain.Topic{topic}); err != nil {
		response.RespondError(c, http.StatusInternalServerError, "create_topic_failed", err)
		return
	}
	response.RespondCreated(c, topic)
}

type renameTopicRequest struct {
	Name string `json:"name" binding:"required"`
}

// PATCH /api/topics/:id
func (h *TopicHandler) RenameTopic(c *gin.Context) {
	id, ok := h.topicForUser(c)
	if !ok {
		return
	}
	var req renameTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if err := h.topics.Rename(c.Request.Context(), nil, id, strings.TrimSpace(req.Name)); err != nil {
		response.RespondError(c, http.StatusInternalServerError, "rename_topic_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"id": id, "name": strings.TrimSpace(req.Name)})
}

// DELETE /api/topics/:id
func (h *TopicHandler) DeleteTopic(c *gin.Context) {
	id, ok := h.topicForUser(c)
	if !ok {
		return
	}
	if err := h.topics.SoftDeleteByIDs(c.Request.Context(), nil, []uuid.UUID{id}); err != nil {
		response.RespondError(c, http.StatusInternalServerError, "delete_topic_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"deleted": id})
}

type updateQuestionRequest struct {
	No            *string   `json:"no"`
	Question      *string   `json:"question"`
	Options       *[]string `json:"options"`
	CorrectAnswer *string   `json:"correct_answer"`
	Explanation   *string   `json:"explanation"`
	TopicID       *string   `json:"topic_id"`
}

// PATCH /api/questions/:id
func (h *TopicHandler) UpdateQuestion(c *gin.Context) {
	userID := middleware.UserID(c)
	qid, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req updateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	q, topic, err := h.findQuestion(c, userID, qid)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "lookup_failed", err)
		return
	}
	if q == nil {
		response.RespondError(c, http.StatusNotFound, "question_not_found", nil)
		return
	}

	if req.No != nil {
		q.No = strings.TrimSpace(*req.No)
	}
	if req.Question != nil && strings.TrimSpace(*req.Question) != "" {
		q.Question = strings.TrimSpace(*req.Question)
	}
	if req.Options != nil {
		q.SetOptionList(ingest.DedupeFold(*req.Options))
	}
	if req.CorrectAnswer != nil {
		q.CorrectAnswer = strings.TrimSpace(*req.CorrectAnswer)
	}
	if req.Explanation != nil {
		q.Explanation = strings.TrimSpace(*req.Explanation)
	}
	if req.TopicID != nil {
		newID, err := uuid.Parse(*req.TopicID)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_topic_id", err)
			return
		}
		target, err := h.topics.GetByID(c.Request.Context(), nil, newID)
		if err != nil || target == nil || target.UserID != userID {
			response.RespondError(c, http.StatusNotFound, "topic_not_found", err)
			return
		}
		q.TopicID = target.ID
		q.Topic = target.Name
	} else if topic != nil {
		q.Topic = topic.Name
	}

	if err := h.topics.UpdateQuestion(c.Request.Context(), nil, q); err != nil {
		response.RespondError(c, http.StatusInternalServerError, "update_question_failed", err)
		return
	}
	response.RespondOK(c, q)
}

// DELETE /api/questions/:id
func (h *TopicHandler) DeleteQuestion(c *gin.Context) {
	userID := middleware.UserID(c)
	qid, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	q, _, err := h.findQuestion(c, userID, qid)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "lookup_failed", err)
		return
	}
	if q == nil {
		response.RespondError(c, http.StatusNotFound, "question_not_found", nil)
		return
	}
	if err := h.topics.DeleteQuestionsByIDs(c.Request.Context(), nil, []uuid.UUID{qid}); err != nil {
		response.RespondError(c, http.StatusInternalServerError, "delete_question_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"deleted": qid})
}

// topicForUser parses :id and checks the topic belongs to the scoped user.
func (h *TopicHandler) topicForUser(c *gin.Context) (uuid.UUID, bool) {
	userID := middleware.UserID(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return uuid.Nil, false
	}
	topic, err := h.topics.GetByID(c.Request.Context(), nil, id)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "lookup_failed", err)
		return uuid.Nil, false
	}
	if topic == nil || topic.UserID != userID {
		response.RespondError(c, http.StatusNotFound, "topic_not_found", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *TopicHandler) findQuestion(c *gin.Context, userID, questionID uuid.UUID) (*domain.Question, *domain.Topic, error) {
	topics, err := h.topics.GetByUser(c.Request.Context(), nil, userID)
	if err != nil {
		return nil, nil, err
	}
	for _, t := range topics {
		for _, q := range t.Questions {
			if q.ID == questionID {
				return q, t, nil
			}
		}
	}
	return nil, nil, nil
}
