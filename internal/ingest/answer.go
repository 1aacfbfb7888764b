package ingest

import (
	"regexp"
	"strings"
)

// Answer encodings seen in real question banks, tried in order:
//
//	labeled option: "Option B", "option 3"
//	bare letter:    "C"
//	literal text:   the answer string itself ("4", "P and Q", "1-ii, 2-iii")
//
// The first strategy whose pattern applies decides the outcome, so a bare
// "B" is always the letter form and never falls through to literal compare.
type answerStrategy struct {
	name string
	// applies reports whether the correct-answer text is in this encoding.
	// resolve returns the zero-based option index, or -1 when the encoding
	// carries no index (literal form).
	applies func(correct string) bool
	resolve func(correct string, options []string) int
}

var (
	labeledLetterRE = regexp.MustCompile(`(?i)^option\s?([a-d])$`)
	labeledDigitRE  = regexp.MustCompile(`(?i)^option\s([1-4])$`)
	bareLetterRE    = regexp.MustCompile(`(?i)^[a-d]$`)
)

func labeledOptionIndex(correct string, _ []string) int {
	if m := labeledLetterRE.FindStringSubmatch(correct); m != nil {
		return int(strings.ToUpper(m[1])[0] - 'A')
	}
	if m := labeledDigitRE.FindStringSubmatch(correct); m != nil {
		return int(m[1][0] - '1')
	}
	return -1
}

var answerStrategies = []answerStrategy{
	{
		name: "labeled_option",
		applies: func(correct string) bool {
			return labeledLetterRE.MatchString(correct) || labeledDigitRE.MatchString(correct)
		},
		resolve: labeledOptionIndex,
	},
	{
		name: "bare_letter",
		applies: func(correct string) bool {
			return bareLetterRE.MatchString(correct)
		},
		resolve: func(correct string, _ []string) int {
			return int(strings.ToUpper(correct)[0] - 'A')
		},
	},
	{
		name:    "literal_text",
		applies: func(string) bool { return true },
		resolve: func(string, []string) int { return -1 },
	},
}

// Resolve reports whether the selected option text matches the canonical
// correct answer. Indexed forms compare options[index] to the selection
// byte-for-byte; the literal fallback is a trimmed case-insensitive compare.
// No match is a normal outcome, never an error.
func Resolve(correctAnswer string, options []string, selected string) bool {
	correct := strings.TrimSpace(correctAnswer)
	for _, s := range answerStrategies {
		if !s.applies(correct) {
			continue
		}
		idx := s.resolve(correct, options)
		if idx < 0 {
			return strings.EqualFold(strings.TrimSpace(selected), correct)
		}
		if idx >= len(options) {
			return false
		}
		return options[idx] == selected
	}
	return false
}

// AnswerIndex resolves the correct answer to an option index for UI
// highlighting. For the literal form it scans options for a trimmed
// case-insensitive match. ok is false when nothing resolves in range.
func AnswerIndex(correctAnswer string, options []string) (int, bool) {
	correct := strings.TrimSpace(correctAnswer)
	for _, s := range answerStrategies {
		if !s.applies(correct) {
			continue
		}
		idx := s.resolve(correct, options)
		if idx >= 0 {
			if idx >= len(options) {
				return 0, false
			}
			return idx, true
		}
		for i, opt := range options {
			if strings.EqualFold(strings.TrimSpace(opt), correct) {
				return i, true
			}
		}
		return 0, false
	}
	return 0, false
}
