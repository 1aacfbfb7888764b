// Package scan recovers structured question payloads from LLM vision output.
// Prompt drift, markdown fences, and trailing-comma JSON all land here so the
// ingestion pipeline itself only ever sees clean rows.
package scan

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// MalformedResponseError means the model output contained no recoverable
// JSON object, or the recovered slice failed to parse even after cleanup.
type MalformedResponseError struct {
	Reason  string
	Excerpt string
}

func (e *MalformedResponseError) Error() string {
	if e.Excerpt != "" {
		return fmt.Sprintf("malformed model response: %s (excerpt: %q)", e.Reason, e.Excerpt)
	}
	return "malformed model response: " + e.Reason
}

// InvalidShapeError means the payload parsed but lacks a questions array.
type InvalidShapeError struct {
	Reason string
}

func (e *InvalidShapeError) Error() string {
	return "invalid scan payload shape: " + e.Reason
}

// ScanPayload is the page-level result of one vision call.
type ScanPayload struct {
	PageNo    string          `json:"pageNo"`
	Questions []*ScanQuestion `json:"questions"`
}

// ScanQuestion mirrors one element of the model's questions array before it
// enters the row-normalization path.
type ScanQuestion struct {
	No            string   `json:"no"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
	PageNo        string   `json:"pageNo,omitempty"`
}

const excerptLen = 200

var trailingCommaRE = regexp.MustCompile(`,\s*([}\]])`)

// ExtractScan recovers the JSON payload from raw model text. An empty
// questions array is a valid-but-empty result, not a failure.
func ExtractScan(raw string) (*ScanPayload, error) {
	s := strings.TrimSpace(raw)
	s = stripFence(s)

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end < 0 || start >= end {
		return nil, &MalformedResponseError{
			Reason:  "no JSON object found",
			Excerpt: excerpt(raw),
		}
	}
	s = s[start : end+1]
	s = trailingCommaRE.ReplaceAllString(s, "$1")

	var root map[string]any
	if err := json.Unmarshal([]byte(s), &root); err != nil {
		return nil, &MalformedResponseError{
			Reason:  "parse failed: " + err.Error(),
			Excerpt: excerpt(s),
		}
	}

	rawQs, ok := root["questions"]
	if !ok {
		return nil, &InvalidShapeError{Reason: "missing questions field"}
	}
	list, ok := rawQs.([]any)
	if !ok {
		return nil, &InvalidShapeError{Reason: "questions is not an array"}
	}

	payload := &ScanPayload{
		PageNo:    stringFromAny(root["pageNo"]),
		Questions: make([]*ScanQuestion, 0, len(list)),
	}
	for _, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		payload.Questions = append(payload.Questions, &ScanQuestion{
			No:            stringFromAny(m["no"]),
			Question:      stringFromAny(m["question"]),
			Options:       stringsFromAny(m["options"]),
			CorrectAnswer: stringFromAny(m["correctAnswer"]),
			Explanation:   stringFromAny(m["explanation"]),
		})
	}
	return payload, nil
}

// stripFence removes one leading fenced-code marker (optionally tagged
// "json") and one trailing fence, when both conventions appear.
func stripFence(s string) string {
	if strings.HasPrefix(s, "```") {
		s = s[3:]
		rest := strings.TrimLeft(s, " \t")
		lower := strings.ToLower(rest)
		if strings.HasPrefix(lower, "json") {
			s = rest[4:]
		}
	}
	if strings.HasSuffix(strings.TrimSpace(s), "```") {
		t := strings.TrimSpace(s)
		s = t[:len(t)-3]
	}
	return strings.TrimSpace(s)
}

func excerpt(s string) string {
	s = strings.TrimSpace(s)
	if len(s) <= excerptLen {
		return s
	}
	cut := excerptLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

func stringFromAny(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

func stringsFromAny(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(arr))
	for _, it := range arr {
		out = append(out, stringFromAny(it))
	}
	return out
}
