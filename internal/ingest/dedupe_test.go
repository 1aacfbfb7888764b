package ingest

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/quizbank/quizbank-backend/internal/domain"
)

func TestDedupeFold_RemovesCaseInsensitiveDuplicates(t *testing.T) {
	got := DedupeFold([]string{"Paris", "paris", " PARIS ", "Rome", "rome", "Berlin"})
	want := []string{"Paris", "Rome", "Berlin"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestDedupeFold_DropsEmptyValues(t *testing.T) {
	got := DedupeFold([]string{"", "  ", "a", ""})
	if len(got) != 1 || got[0] != "a" {
		t.Fatalf("expected [a], got %v", got)
	}
}

func TestDedupeFold_NoPairCollidesAfterFold(t *testing.T) {
	in := []string{"Alpha", "beta", "ALPHA", "Beta", "gamma", "GaMmA", "delta"}
	got := DedupeFold(in)
	seen := map[string]bool{}
	for _, v := range got {
		k := strings.ToLower(strings.TrimSpace(v))
		if seen[k] {
			t.Fatalf("duplicate %q survived in %v", v, got)
		}
		seen[k] = true
	}
}

func TestDedupeQuestions_KeepsFirstOccurrence(t *testing.T) {
	mk := func(text string) *domain.Question {
		return &domain.Question{ID: uuid.New(), Question: text}
	}
	first := mk("What is 2+2?")
	qs := []*domain.Question{first, mk("what is 2+2?"), mk("Other?")}
	got := DedupeQuestions(qs)
	if len(got) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(got))
	}
	if got[0] != first {
		t.Fatalf("expected first occurrence to win")
	}
}
