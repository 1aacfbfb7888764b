package scan

import "testing"

func TestCleanPayload_PadsAndDedupesOptions(t *testing.T) {
	p := &ScanPayload{
		PageNo: " 9 ",
		Questions: []*ScanQuestion{
			{
				No:            " 1. ",
				Question:      " Which? ",
				Options:       []string{" alpha ", "Alpha", "beta"},
				CorrectAnswer: " a ",
			},
		},
	}

	CleanPayload(p)

	q := p.Questions[0]
	if len(q.Options) != 4 {
		t.Fatalf("expected exactly 4 options, got %v", q.Options)
	}
	if q.Options[0] != " alpha " && q.Options[0] != "alpha" {
		t.Fatalf("expected first occurrence kept, got %q", q.Options[0])
	}
	if q.Options[2] != "" || q.Options[3] != "" {
		t.Fatalf("expected right-padding with empty strings, got %v", q.Options)
	}
	if q.CorrectAnswer != "A" {
		t.Fatalf("expected trimmed uppercase answer, got %q", q.CorrectAnswer)
	}
	if q.PageNo != "9" {
		t.Fatalf("expected batch page number attached, got %q", q.PageNo)
	}
	if q.No != "1." || q.Question != "Which?" {
		t.Fatalf("expected trimmed fields, got %+v", q)
	}
}

func TestCleanPayload_TruncatesExtraOptions(t *testing.T) {
	p := &ScanPayload{
		Questions: []*ScanQuestion{
			{Options: []string{"a", "b", "c", "d", "e", "f"}},
		},
	}
	CleanPayload(p)
	if len(p.Questions[0].Options) != 4 {
		t.Fatalf("expected truncation to 4, got %v", p.Questions[0].Options)
	}
}

func TestRows_ProjectsOntoCanonicalHeaders(t *testing.T) {
	p := &ScanPayload{
		PageNo: "5",
		Questions: []*ScanQuestion{
			{No: "1.", Question: "Q?", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: "A", PageNo: "5"},
		},
	}

	rows := Rows(p, "Biology")
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if v, _ := row.Exact("Question"); v != "Q?" {
		t.Fatalf("unexpected question cell %q", v)
	}
	if v, _ := row.Exact("Topic"); v != "Biology" {
		t.Fatalf("unexpected topic cell %q", v)
	}
	if v, _ := row.Exact("Page No."); v != "5" {
		t.Fatalf("unexpected page cell %q", v)
	}
	if v, _ := row.Exact("Correct Answer"); v != "A" {
		t.Fatalf("unexpected answer cell %q", v)
	}
}
