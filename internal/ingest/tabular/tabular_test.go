package tabular

import (
	"errors"
	"testing"
)

func TestParse_CSVWithHeaderRow(t *testing.T) {
	csv := "Question No.,Question,Option A,Option B,Option C,Option D,Correct Answer,Explanation\n" +
		"1,What is 2+2?,3,4,5,6,4,Math basics\n"

	table, err := Parse("arithmetic.csv", []byte(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table.Headers) != 8 || table.Headers[1] != "Question" {
		t.Fatalf("unexpected headers %v", table.Headers)
	}
	if len(table.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(table.Rows))
	}
	if v, _ := table.Rows[0].Exact("Question"); v != "What is 2+2?" {
		t.Fatalf("unexpected cell %q", v)
	}
}

func TestParse_SkipsEmptyLines(t *testing.T) {
	csv := "\nQuestion,Option A,Option B\n\nQ?,a,b\n,,\nQ2?,c,d\n"

	table, err := Parse("s.csv", []byte(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Rows))
	}
}

func TestParse_TrimsHeaders(t *testing.T) {
	csv := " Question , Option A , Option B \nQ?,a,b\n"

	table, err := Parse("s.csv", []byte(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, ok := table.Rows[0].Exact("Question"); !ok || v != "Q?" {
		t.Fatalf("expected trimmed header lookup to work, got %q ok=%v", v, ok)
	}
}

func TestParse_TabSeparatedPaste(t *testing.T) {
	tsv := "Question\tOption A\tOption B\nQ?\ta\tb\n"

	table, err := Parse("pasted", []byte(tsv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table.Headers) != 3 {
		t.Fatalf("expected tab sniffing, got headers %v", table.Headers)
	}
}

func TestParse_ShortRecordsPad(t *testing.T) {
	csv := "Question,Option A,Option B,Explanation\nQ?,a,b\n"

	table, err := Parse("s.csv", []byte(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, ok := table.Rows[0].Exact("Explanation"); !ok || v != "" {
		t.Fatalf("expected missing trailing cell to read empty, got %q ok=%v", v, ok)
	}
}

func TestParse_EmptySourceFails(t *testing.T) {
	if _, err := Parse("empty.csv", []byte("\n\n")); !errors.Is(err, ErrEmptySource) {
		t.Fatalf("expected ErrEmptySource, got %v", err)
	}
	if _, err := Parse("headeronly.csv", []byte("Question,Option A\n")); !errors.Is(err, ErrEmptySource) {
		t.Fatalf("expected ErrEmptySource for header-only source, got %v", err)
	}
}
