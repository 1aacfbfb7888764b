package scan

import (
	"strings"

	"github.com/quizbank/quizbank-backend/internal/ingest"
)

// displayOptionCount is the fixed size of the options list the practice UI
// renders; shorter lists are right-padded with empty strings.
const displayOptionCount = 4

// CleanPayload normalizes every extracted question in place: options are
// trimmed, deduplicated case-insensitively, and padded or truncated to
// exactly four entries; the correct answer is trimmed uppercase; the batch
// page number is stamped onto each question.
func CleanPayload(p *ScanPayload) {
	if p == nil {
		return
	}
	pageNo := strings.TrimSpace(p.PageNo)
	for _, q := range p.Questions {
		if q == nil {
			continue
		}
		trimmed := make([]string, 0, len(q.Options))
		for _, o := range q.Options {
			trimmed = append(trimmed, strings.TrimSpace(o))
		}
		opts := ingest.DedupeFold(trimmed)
		for len(opts) < displayOptionCount {
			opts = append(opts, "")
		}
		q.Options = opts[:displayOptionCount]

		q.No = strings.TrimSpace(q.No)
		q.Question = strings.TrimSpace(q.Question)
		q.CorrectAnswer = strings.ToUpper(strings.TrimSpace(q.CorrectAnswer))
		q.Explanation = strings.TrimSpace(q.Explanation)
		q.PageNo = pageNo
	}
}

// scanHeaders is the canonical header set scanned questions are projected
// onto before they re-enter the tabular normalization path.
var scanHeaders = []string{
	"Question No.",
	"Question",
	"Option A",
	"Option B",
	"Option C",
	"Option D",
	"Correct Answer",
	"Explanation",
	"Topic",
	"Page No.",
}

// Rows projects a cleaned payload onto canonical import rows so the scan
// path shares the Row Normalizer, Deduplicator, and Import Orchestrator with
// tabular import. topicName may be empty; the normalizer then falls back to
// the source name.
func Rows(p *ScanPayload, topicName string) []ingest.Row {
	if p == nil {
		return nil
	}
	rows := make([]ingest.Row, 0, len(p.Questions))
	for _, q := range p.Questions {
		if q == nil {
			continue
		}
		opts := q.Options
		for len(opts) < displayOptionCount {
			opts = append(opts, "")
		}
		values := []string{
			q.No,
			q.Question,
			opts[0], opts[1], opts[2], opts[3],
			q.CorrectAnswer,
			q.Explanation,
			topicName,
			q.PageNo,
		}
		rows = append(rows, ingest.NewRow(scanHeaders, values))
	}
	return rows
}
