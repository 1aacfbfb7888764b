package ingest

import "strings"

// Row is one parsed tabular record: an ordered mapping of header to cell.
// Header order is preserved from the source; lookups are by trimmed
// case-insensitive header name.
type Row struct {
	headers []string
	cells   map[string]string
}

func foldHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

// NewRow pairs headers with values positionally. Missing values map to "";
// extra values are dropped. Duplicate headers keep the first cell.
func NewRow(headers []string, values []string) Row {
	cells := make(map[string]string, len(headers))
	ordered := make([]string, 0, len(headers))
	for i, h := range headers {
		key := foldHeader(h)
		if key == "" {
			continue
		}
		ordered = append(ordered, strings.TrimSpace(h))
		if _, dup := cells[key]; dup {
			continue
		}
		if i < len(values) {
			cells[key] = values[i]
		} else {
			cells[key] = ""
		}
	}
	return Row{headers: ordered, cells: cells}
}

// NewRowFromMap builds a Row from an already keyed record, preserving the
// given header order.
func NewRowFromMap(headers []string, cells map[string]string) Row {
	values := make([]string, len(headers))
	for i, h := range headers {
		values[i] = cells[h]
	}
	return NewRow(headers, values)
}

func (r Row) Headers() []string { return r.headers }

func (r Row) IsEmpty() bool {
	for _, v := range r.cells {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// Exact returns the trimmed cell under an exact case-insensitive header
// match.
func (r Row) Exact(header string) (string, bool) {
	v, ok := r.cells[foldHeader(header)]
	if !ok {
		return "", false
	}
	return strings.TrimSpace(v), true
}

// Fuzzy returns the trimmed cell of the first header (in source order) that
// contains target as a case-insensitive substring. Headers that also contain
// one of the exclude substrings are passed over, which keeps a search for
// "Question" from landing on "Question No.".
func (r Row) Fuzzy(target string, exclude ...string) (string, bool) {
	want := foldHeader(target)
	if want == "" {
		return "", false
	}
	for _, h := range r.headers {
		key := foldHeader(h)
		if !strings.Contains(key, want) {
			continue
		}
		skip := false
		for _, ex := range exclude {
			if strings.Contains(key, strings.ToLower(ex)) {
				skip = true
				break
			}
		}
		if skip {
			continue
		}
		return strings.TrimSpace(r.cells[key]), true
	}
	return "", false
}

// Resolve tries an exact match first, then a fuzzy one.
func (r Row) Resolve(target string, exclude ...string) (string, bool) {
	if v, ok := r.Exact(target); ok {
		return v, true
	}
	return r.Fuzzy(target, exclude...)
}
