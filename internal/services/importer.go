package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/quizbank/quizbank-backend/internal/domain"
	"github.com/quizbank/quizbank-backend/internal/ingest"
	"github.com/quizbank/quizbank-backend/internal/ingest/tabular"
	"github.com/quizbank/quizbank-backend/internal/pkg/logger"
	"github.com/quizbank/quizbank-backend/internal/repos"
)

// ImportSummary is what the UI shows after an import: the topics touched and
// the imported/skipped row counts.
type ImportSummary struct {
	Topics   []*domain.Topic `json:"topics"`
	Imported int             `json:"imported"`
	Skipped  int             `json:"skipped"`
}

type ImportService interface {
	// ImportFile parses a CSV/TSV/XLSX payload and persists the resulting
	// topics for the user. When mergeTopicID is non-nil every surviving
	// question is appended to that topic instead of the grouped ones.
	ImportFile(ctx context.Context, userID uuid.UUID, sourceName string, data []byte, mergeTopicID *uuid.UUID) (*ImportSummary, error)

	// ImportRows runs pre-parsed rows through the pipeline and persists the
	// result. The scan path lands here after extraction and cleaning.
	ImportRows(ctx context.Context, userID uuid.UUID, sourceName string, rows []ingest.Row, mergeTopicID *uuid.UUID) (*ImportSummary, error)
}

type importService struct {
	db        *gorm.DB
	log       *logger.Logger
	topicRepo repos.TopicRepo
	importer  *ingest.Importer
}

func NewImportService(db *gorm.DB, log *logger.Logger, topicRepo repos.TopicRepo, opts ingest.ImportOptions) ImportService {
	svcLog := log.With("service", "ImportService")
	return &importService{
		db:        db,
		log:       svcLog,
		topicRepo: topicRepo,
		importer:  ingest.NewImporter(svcLog, opts),
	}
}

func (s *importService) ImportFile(ctx context.Context, userID uuid.UUID, sourceName string, data []byte, mergeTopicID *uuid.UUID) (*ImportSummary, error) {
	table, err := tabular.Parse(sourceName, data)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", sourceName, err)
	}
	return s.ImportRows(ctx, userID, sourceName, table.Rows, mergeTopicID)
}

func (s *importService) ImportRows(ctx context.Context, userID uuid.UUID, sourceName string, rows []ingest.Row, mergeTopicID *uuid.UUID) (*ImportSummary, error) {
	result, err := s.importer.ImportRows(rows, sourceName)
	if err != nil {
		return nil, err
	}

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if mergeTopicID != nil && *mergeTopicID != uuid.Nil {
			return s.mergeInto(ctx, tx, *mergeTopicID, result)
		}
		for _, t := range result.Topics {
			t.UserID = userID
		}
		_, err := s.topicRepo.Create(ctx, tx, result.Topics)
		return err
	})
	if txErr != nil {
		return nil, txErr
	}

	return &ImportSummary{
		Topics:   result.Topics,
		Imported: result.Imported,
		Skipped:  result.Skipped,
	}, nil
}

// mergeInto appends the whole batch to one existing topic. Grouping by
// resolved topic name is discarded; the target keeps its id and name.
func (s *importService) mergeInto(ctx context.Context, tx *gorm.DB, topicID uuid.UUID, result *ingest.ImportResult) error {
	target, err := s.topicRepo.GetByID(ctx, tx, topicID)
	if err != nil {
		return err
	}
	if target == nil {
		return fmt.Errorf("merge target topic %s: %w", topicID, ErrTopicNotFound)
	}

	merged := make([]*domain.Question, 0, result.Imported)
	for _, t := range result.Topics {
		for _, q := range t.Questions {
			q.Topic = target.Name
			merged = append(merged, q)
		}
	}
	if err := s.topicRepo.AppendQuestions(ctx, tx, target.ID, merged); err != nil {
		return err
	}

	target.Questions = append(target.Questions, merged...)
	result.Topics = []*domain.Topic{target}
	return nil
}
