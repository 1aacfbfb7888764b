package ingest

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/quizbank/quizbank-backend/internal/domain"
)

// SkipReason tags why a row was dropped. Skips are counted, never surfaced
// as errors; only the aggregate reaches the caller.
type SkipReason string

const (
	SkipNone            SkipReason = ""
	SkipMissingQuestion SkipReason = "missing_question"
	SkipTooFewOptions   SkipReason = "too_few_options"
	SkipMissingAnswer   SkipReason = "missing_answer"
)

// ImportOptions tunes normalization. StrictAnswers turns the documented
// default of falling back to the first option when no correct-answer column
// resolves into a skip instead.
type ImportOptions struct {
	StrictAnswers bool
}

var optionLetters = []string{"A", "B", "C", "D"}

// topicExtensions are the source-name suffixes stripped when the topic name
// falls back to the file name.
var topicExtensions = []string{".csv", ".txt", ".xlsx", ".xls"}

// NormalizeRow extracts a Question from one tabular row. rowIndex is
// zero-based; the display label falls back to the 1-based index. A non-empty
// SkipReason means the row was dropped.
func NormalizeRow(row Row, sourceName string, rowIndex int, opts ImportOptions) (*domain.Question, SkipReason) {
	question, _ := row.Resolve("Question", "no", "id", "number")
	if question == "" {
		return nil, SkipMissingQuestion
	}

	options := extractOptions(row)
	if len(options) < 2 {
		return nil, SkipTooFewOptions
	}

	correct := resolveCorrectAnswer(row)
	if correct == "" {
		if opts.StrictAnswers {
			return nil, SkipMissingAnswer
		}
		// Documented default: an unlabeled bank grades against its first
		// option rather than failing the whole row.
		correct = options[0]
	}

	no, _ := row.Exact("Question No.")
	if no == "" {
		no = strconv.Itoa(rowIndex + 1)
	}

	explanation, _ := row.Resolve("Explanation")
	pageNo, _ := row.Resolve("Page No.")

	q := &domain.Question{
		ID:            uuid.New(),
		No:            no,
		Question:      question,
		CorrectAnswer: correct,
		Explanation:   explanation,
		Topic:         resolveTopicName(row, sourceName),
		PageNo:        pageNo,
	}
	q.SetOptionList(options)
	return q, SkipNone
}

// extractOptions tries the known option header conventions in order and
// stops at the first yielding at least one non-empty cell. Survivors are
// deduplicated case-insensitively.
func extractOptions(row Row) []string {
	strategies := []func() []string{
		func() []string { return collectExact(row, "Option ") }, // Option A..Option D
		func() []string {
			out := make([]string, 0, 4)
			for i := 1; i <= 4; i++ {
				if v, _ := row.Exact("Option" + strconv.Itoa(i)); v != "" {
					out = append(out, v)
				}
			}
			return out
		},
		func() []string { return collectExact(row, "") }, // bare A..D headers
		func() []string {
			out := make([]string, 0, 4)
			for _, l := range optionLetters {
				if v, ok := row.Fuzzy("Option " + l); ok && v != "" {
					out = append(out, v)
				}
			}
			return out
		},
	}
	for _, strat := range strategies {
		if vals := strat(); len(vals) > 0 {
			return DedupeFold(vals)
		}
	}
	return nil
}

func collectExact(row Row, prefix string) []string {
	out := make([]string, 0, 4)
	for _, l := range optionLetters {
		if v, _ := row.Exact(prefix + l); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func resolveCorrectAnswer(row Row) string {
	if v, _ := row.Exact("Correct Answer"); v != "" {
		return v
	}
	if v, ok := row.Fuzzy("Correct Answer"); ok && v != "" {
		return v
	}
	if v, ok := row.Fuzzy("Correct"); ok && v != "" {
		return v
	}
	if v, ok := row.Fuzzy("Answer"); ok && v != "" {
		return v
	}
	return ""
}

func resolveTopicName(row Row, sourceName string) string {
	if v, _ := row.Resolve("Topic"); v != "" {
		return v
	}
	name := strings.TrimSpace(sourceName)
	for _, ext := range topicExtensions {
		if strings.HasSuffix(strings.ToLower(name), ext) {
			name = name[:len(name)-len(ext)]
			break
		}
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "General"
	}
	return name
}
