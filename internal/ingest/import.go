package ingest

import (
	"errors"

	"github.com/google/uuid"

	"github.com/quizbank/quizbank-backend/internal/domain"
	"github.com/quizbank/quizbank-backend/internal/pkg/logger"
)

// ErrNoValidRows means every row in a batch was skipped. Nothing is created
// and nothing should be persisted.
var ErrNoValidRows = errors.New("no valid rows in source")

// ImportResult is the outcome of one import batch. Topics are ordered by
// first appearance of their name in the source.
type ImportResult struct {
	Topics   []*domain.Topic `json:"topics"`
	Imported int             `json:"imported"`
	Skipped  int             `json:"skipped"`
}

// Importer drives normalization and grouping over the rows of one source.
// It holds no cross-call state; independent sources may run concurrently.
type Importer struct {
	log  *logger.Logger
	opts ImportOptions
}

func NewImporter(log *logger.Logger, opts ImportOptions) *Importer {
	if log != nil {
		log = log.With("component", "Importer")
	}
	return &Importer{log: log, opts: opts}
}

// ImportRows normalizes every row, deduplicates the survivors within the
// batch, and groups them into topics by resolved topic name. Row-level
// problems are absorbed and counted; only a fully skipped batch is an error.
func (im *Importer) ImportRows(rows []Row, sourceName string) (*ImportResult, error) {
	collected := make([]*domain.Question, 0, len(rows))
	skipped := 0

	for i, row := range rows {
		if row.IsEmpty() {
			skipped++
			continue
		}
		q, reason := NormalizeRow(row, sourceName, i, im.opts)
		if reason != SkipNone {
			skipped++
			if im.log != nil {
				im.log.Debug("row skipped", "source", sourceName, "row", i+1, "reason", string(reason))
			}
			continue
		}
		collected = append(collected, q)
	}

	normalized := len(collected)
	collected = DedupeQuestions(collected)
	skipped += normalized - len(collected)
	if len(collected) == 0 {
		return nil, ErrNoValidRows
	}

	result := &ImportResult{
		Topics:   groupByTopic(collected),
		Imported: len(collected),
		Skipped:  skipped,
	}
	if im.log != nil {
		im.log.Info("import batch done",
			"source", sourceName,
			"imported", result.Imported,
			"skipped", result.Skipped,
			"topics", len(result.Topics))
	}
	return result, nil
}

// groupByTopic emits one Topic per distinct resolved topic name, in
// first-seen order, with a fresh id. Question sort order within a topic
// follows source order.
func groupByTopic(questions []*domain.Question) []*domain.Topic {
	order := make([]string, 0)
	byName := map[string]*domain.Topic{}

	for _, q := range questions {
		t, ok := byName[q.Topic]
		if !ok {
			t = &domain.Topic{ID: uuid.New(), Name: q.Topic}
			byName[q.Topic] = t
			order = append(order, q.Topic)
		}
		q.TopicID = t.ID
		q.SortIndex = len(t.Questions)
		t.Questions = append(t.Questions, q)
	}

	out := make([]*domain.Topic, 0, len(order))
	for _, name := range order {
		out = append(out, byName[name])
	}
	return out
}
