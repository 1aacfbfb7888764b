package ingest

import (
	"strings"

	"github.com/quizbank/quizbank-backend/internal/domain"
)

// DedupeFold removes duplicates under trimmed case-insensitive comparison,
// keeping the first occurrence (with its original casing) in place.
func DedupeFold(values []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(values))
	for _, v := range values {
		key := strings.ToLower(strings.TrimSpace(v))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, v)
	}
	return out
}

// DedupeQuestions drops questions whose text duplicates an earlier one in
// the same batch, case-insensitively. Order of first occurrence is kept.
func DedupeQuestions(qs []*domain.Question) []*domain.Question {
	seen := map[string]bool{}
	out := make([]*domain.Question, 0, len(qs))
	for _, q := range qs {
		if q == nil {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(q.Question))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, q)
	}
	return out
}
