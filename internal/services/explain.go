package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/quizbank/quizbank-backend/internal/clients/openai"
	"github.com/quizbank/quizbank-backend/internal/domain"
	"github.com/quizbank/quizbank-backend/internal/ingest"
	"github.com/quizbank/quizbank-backend/internal/pkg/logger"
	"github.com/quizbank/quizbank-backend/internal/repos"
)

type ExplainService interface {
	// Explain generates a short explanation for one stored question using
	// the user's provider key.
	Explain(ctx context.Context, userID, questionID uuid.UUID) (string, error)
}

type explainService struct {
	log    *logger.Logger
	ai     openai.Client
	keys   repos.APIKeyRepo
	topics repos.TopicRepo
}

func NewExplainService(log *logger.Logger, ai openai.Client, keys repos.APIKeyRepo, topics repos.TopicRepo) ExplainService {
	return &explainService{
		log:    log.With("service", "ExplainService"),
		ai:     ai,
		keys:   keys,
		topics: topics,
	}
}

func (s *explainService) Explain(ctx context.Context, userID, questionID uuid.UUID) (string, error) {
	q, err := s.findQuestion(ctx, userID, questionID)
	if err != nil {
		return "", err
	}

	keys, err := s.keys.GetByUser(ctx, nil, userID)
	if err != nil {
		return "", err
	}
	client := s.ai
	if keys != nil && keys.OpenAIKey != "" {
		client = s.ai.WithAPIKey(keys.OpenAIKey)
	} else if !client.HasKey() {
		return "", ErrNoAPIKey
	}

	text, err := client.GenerateText(ctx,
		"You are a concise tutor. Explain why the correct answer is correct in at most 120 words.",
		explainPrompt(q))
	if err != nil {
		return "", fmt.Errorf("explanation call: %w", err)
	}
	return strings.TrimSpace(text), nil
}

func (s *explainService) findQuestion(ctx context.Context, userID, questionID uuid.UUID) (*domain.Question, error) {
	topics, err := s.topics.GetByUser(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	for _, t := range topics {
		for _, q := range t.Questions {
			if q.ID == questionID {
				return q, nil
			}
		}
	}
	return nil, ErrQuestionNotFound
}

func explainPrompt(q *domain.Question) string {
	var b strings.Builder
	b.WriteString("Question: ")
	b.WriteString(q.Question)
	b.WriteString("\nOptions:\n")
	opts := q.OptionList()
	for i, opt := range opts {
		if strings.TrimSpace(opt) == "" {
			continue
		}
		b.WriteString(fmt.Sprintf("%c. %s\n", 'A'+i, opt))
	}
	b.WriteString("Correct answer: ")
	if idx, ok := ingest.AnswerIndex(q.CorrectAnswer, opts); ok {
		b.WriteString(fmt.Sprintf("%c. %s", 'A'+idx, opts[idx]))
	} else {
		b.WriteString(q.CorrectAnswer)
	}
	return b.String()
}
