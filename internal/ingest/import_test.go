package ingest

import (
	"errors"
	"strconv"
	"testing"
)

func TestImportRows_GroupsByTopicFirstSeen(t *testing.T) {
	headers := []string{"Question", "Option A", "Option B", "Topic"}
	rows := []Row{
		NewRow(headers, []string{"Q1?", "a", "b", "Physics"}),
		NewRow(headers, []string{"Q2?", "a", "b", "Chemistry"}),
		NewRow(headers, []string{"Q3?", "a", "b", "Physics"}),
	}

	im := NewImporter(nil, ImportOptions{})
	result, err := im.ImportRows(rows, "mixed.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Imported != 3 || result.Skipped != 0 {
		t.Fatalf("unexpected counts: %+v", result)
	}
	if len(result.Topics) != 2 {
		t.Fatalf("expected 2 topics, got %d", len(result.Topics))
	}
	if result.Topics[0].Name != "Physics" || result.Topics[1].Name != "Chemistry" {
		t.Fatalf("expected first-seen topic order, got %q, %q", result.Topics[0].Name, result.Topics[1].Name)
	}
	if len(result.Topics[0].Questions) != 2 {
		t.Fatalf("expected 2 physics questions, got %d", len(result.Topics[0].Questions))
	}
	for _, topic := range result.Topics {
		for i, q := range topic.Questions {
			if q.TopicID != topic.ID {
				t.Fatalf("question not linked to its topic")
			}
			if q.SortIndex != i {
				t.Fatalf("expected sort index %d, got %d", i, q.SortIndex)
			}
		}
	}
}

func TestImportRows_CSVRoundTrip(t *testing.T) {
	headers := []string{"Question No.", "Question", "Option A", "Option B", "Option C", "Option D", "Correct Answer", "Explanation"}
	rows := []Row{NewRow(headers, []string{"1", "What is 2+2?", "3", "4", "5", "6", "4", "Math basics"})}

	im := NewImporter(nil, ImportOptions{})
	result, err := im.ImportRows(rows, "arithmetic.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Topics) != 1 || len(result.Topics[0].Questions) != 1 {
		t.Fatalf("expected exactly one topic with one question, got %+v", result)
	}
	q := result.Topics[0].Questions[0]
	opts := q.OptionList()
	if len(opts) != 4 || opts[0] != "3" || opts[1] != "4" || opts[2] != "5" || opts[3] != "6" {
		t.Fatalf("unexpected options %v", opts)
	}
	if q.CorrectAnswer != "4" || q.No != "1" {
		t.Fatalf("unexpected answer %q / no %q", q.CorrectAnswer, q.No)
	}
}

func TestImportRows_SkipsAreCountedNotFatal(t *testing.T) {
	headers := []string{"Question", "Option A", "Option B"}
	rows := []Row{
		NewRow(headers, []string{"", "a", "b"}),      // no question
		NewRow(headers, []string{"Q?", "same", ""}),  // one option
		NewRow(headers, []string{"Keep?", "a", "b"}), // fine
	}

	im := NewImporter(nil, ImportOptions{})
	result, err := im.ImportRows(rows, "s.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Imported != 1 || result.Skipped != 2 {
		t.Fatalf("unexpected counts: %+v", result)
	}
}

func TestImportRows_AllSkippedFails(t *testing.T) {
	headers := []string{"Question", "Option A", "Option B"}
	rows := []Row{
		NewRow(headers, []string{"", "a", "b"}),
		NewRow(headers, []string{"Q?", "only", ""}),
	}

	im := NewImporter(nil, ImportOptions{})
	result, err := im.ImportRows(rows, "s.csv")
	if !errors.Is(err, ErrNoValidRows) {
		t.Fatalf("expected ErrNoValidRows, got %v", err)
	}
	if result != nil {
		t.Fatalf("expected no result, got %+v", result)
	}
}

func TestImportRows_DuplicateQuestionsCollapseWithinBatch(t *testing.T) {
	headers := []string{"Question", "Option A", "Option B"}
	rows := []Row{
		NewRow(headers, []string{"Same question?", "a", "b"}),
		NewRow(headers, []string{"same QUESTION?", "a", "b"}),
	}

	im := NewImporter(nil, ImportOptions{})
	result, err := im.ImportRows(rows, "s.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Imported != 1 || result.Skipped != 1 {
		t.Fatalf("expected dedupe within batch, got %+v", result)
	}
}

func TestImportRows_SkipAndDuplicateCountsCombine(t *testing.T) {
	headers := []string{"Question", "Option A", "Option B"}
	rows := []Row{
		NewRow(headers, []string{"", "a", "b"}), // no question
		NewRow(headers, []string{"Same?", "a", "b"}),
		NewRow(headers, []string{"SAME?", "a", "b"}), // duplicate
		NewRow(headers, []string{"Other?", "a", "b"}),
	}

	im := NewImporter(nil, ImportOptions{})
	result, err := im.ImportRows(rows, "s.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Imported != 2 || result.Skipped != 2 {
		t.Fatalf("unexpected counts: %+v", result)
	}
	if result.Imported+result.Skipped != len(rows) {
		t.Fatalf("counts do not cover the batch: %+v", result)
	}
}

func TestImportRows_PageNoSurvivesPipeline(t *testing.T) {
	headers := []string{"Question", "Option A", "Option B", "Page No."}
	rows := make([]Row, 0, 3)
	for i := 0; i < 3; i++ {
		rows = append(rows, NewRow(headers, []string{"Q" + strconv.Itoa(i) + "?", "a", "b", "42"}))
	}

	im := NewImporter(nil, ImportOptions{})
	result, err := im.ImportRows(rows, "scan")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, topic := range result.Topics {
		for _, q := range topic.Questions {
			if q.PageNo != "42" {
				t.Fatalf("page number lost: %q", q.PageNo)
			}
		}
	}
}
