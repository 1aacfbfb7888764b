package scan

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestExtractScan_FencedPayload(t *testing.T) {
	raw := "```json\n{\"pageNo\":\"5\",\"questions\":[{\"no\":\"1.\",\"question\":\"Q?\",\"options\":[\"a\",\"b\",\"c\",\"d\"],\"correctAnswer\":\"A\",\"explanation\":\"\"}]}\n```"

	p, err := ExtractScan(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.PageNo != "5" {
		t.Fatalf("expected pageNo 5, got %q", p.PageNo)
	}
	if len(p.Questions) != 1 || p.Questions[0].Question != "Q?" {
		t.Fatalf("unexpected questions %+v", p.Questions)
	}
}

func TestExtractScan_SurroundingProse(t *testing.T) {
	raw := "Sure! Here is the transcription you asked for:\n" +
		`{"pageNo":"12","questions":[]}` +
		"\nLet me know if you need anything else."

	p, err := ExtractScan(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.PageNo != "12" {
		t.Fatalf("expected pageNo 12, got %q", p.PageNo)
	}
	if len(p.Questions) != 0 {
		t.Fatalf("expected valid-but-empty questions, got %+v", p.Questions)
	}
}

func TestExtractScan_RepairsTrailingCommas(t *testing.T) {
	raw := `{"pageNo":"1","questions":[{"no":"1","question":"Q?","options":["a","b",],"correctAnswer":"A",},]}`

	p, err := ExtractScan(raw)
	if err != nil {
		t.Fatalf("expected trailing commas to be repaired, got %v", err)
	}
	if len(p.Questions) != 1 || len(p.Questions[0].Options) != 2 {
		t.Fatalf("unexpected payload %+v", p.Questions)
	}
}

func TestExtractScan_NoBracesIsMalformed(t *testing.T) {
	_, err := ExtractScan("I could not read the page, sorry.")
	var malformed *MalformedResponseError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedResponseError, got %v", err)
	}
	if malformed.Excerpt == "" {
		t.Fatalf("expected a diagnostic excerpt")
	}
}

func TestExtractScan_UnparseableIsMalformedWithExcerpt(t *testing.T) {
	long := "{\"questions\": [" + strings.Repeat("x", 400) + "}"
	_, err := ExtractScan(long)
	var malformed *MalformedResponseError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedResponseError, got %v", err)
	}
	if len(malformed.Excerpt) > 200 {
		t.Fatalf("excerpt too long: %d", len(malformed.Excerpt))
	}
}

func TestExtractScan_ExcerptKeepsRuneBoundaries(t *testing.T) {
	_, err := ExtractScan(strings.Repeat("頁", 100))
	var malformed *MalformedResponseError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedResponseError, got %v", err)
	}
	if len(malformed.Excerpt) > 200 {
		t.Fatalf("excerpt too long: %d", len(malformed.Excerpt))
	}
	if !utf8.ValidString(malformed.Excerpt) {
		t.Fatalf("excerpt split a rune: %q", malformed.Excerpt)
	}
}

func TestExtractScan_MissingQuestionsIsInvalidShape(t *testing.T) {
	_, err := ExtractScan(`{"pageNo":"3"}`)
	var shape *InvalidShapeError
	if !errors.As(err, &shape) {
		t.Fatalf("expected InvalidShapeError, got %v", err)
	}
}

func TestExtractScan_WrongQuestionsShapeIsInvalidShape(t *testing.T) {
	_, err := ExtractScan(`{"questions":"not an array"}`)
	var shape *InvalidShapeError
	if !errors.As(err, &shape) {
		t.Fatalf("expected InvalidShapeError, got %v", err)
	}
}

func TestExtractScan_CoercesLooseValueTypes(t *testing.T) {
	raw := `{"pageNo":7,"questions":[{"no":3,"question":" Q? ","options":["a",2,null],"correctAnswer":"b"}]}`

	p, err := ExtractScan(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.PageNo != "7" {
		t.Fatalf("expected numeric pageNo coerced, got %q", p.PageNo)
	}
	q := p.Questions[0]
	if q.No != "3" || q.Question != "Q?" {
		t.Fatalf("expected coerced fields, got %+v", q)
	}
	if len(q.Options) != 3 || q.Options[1] != "2" || q.Options[2] != "" {
		t.Fatalf("expected coerced options, got %v", q.Options)
	}
}
