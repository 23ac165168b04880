package question

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// headerNames are column titles that mark a row as a header.
var headerNames = map[string]bool{
	"category":  true,
	"kategorie": true,
	"question":  true,
	"questions": true,
	"frage":     true,
	"fragen":    true,
	"text":      true,
	"type":      true,
	"typ":       true,
	"author":    true,
	"autor":     true,
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseBytes parses comma-separated question data held in memory.
func ParseBytes(data []byte) ([]Question, error) {
	return Parse(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
}

// Parse reads comma-separated rows of (category, question) and returns one
// Question per data row. Quoted fields may contain commas, quotes and
// newlines. Blank rows and header rows are skipped, and the column order is
// detected per row.
func Parse(r io.Reader) ([]Question, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var out []Question
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse questions: %w", err)
		}

		fields := nonBlank(rec)
		if len(fields) == 0 || isHeader(fields) {
			continue
		}
		out = append(out, fromFields(fields))
	}

	if len(out) == 0 {
		return nil, ErrNoQuestions
	}
	return out, nil
}

// fromFields builds a Question from the non-blank fields of a row.
func fromFields(fields []string) Question {
	if len(fields) == 1 {
		return Question{Text: fields[0], Category: DefaultCategory}
	}
	category, text := detectOrder(fields[0], fields[1])
	return Question{Text: text, Category: category}
}

// detectOrder decides which of two fields is the question. A field with a
// question mark wins; otherwise the longer field does, and ties keep the
// canonical category,question order.
func detectOrder(a, b string) (category, text string) {
	aq := strings.Contains(a, "?")
	bq := strings.Contains(b, "?")
	switch {
	case aq && !bq:
		return b, a
	case bq && !aq:
		return a, b
	}
	if utf8.RuneCountInString(a) > utf8.RuneCountInString(b) {
		return b, a
	}
	return a, b
}

func nonBlank(rec []string) []string {
	var out []string
	for _, f := range rec {
		if f = clean(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// isHeader checks the leading fields fromFields reads. Trailing columns are
// ignored.
func isHeader(fields []string) bool {
	for _, f := range fields[:min(len(fields), 2)] {
		if !headerNames[strings.ToLower(f)] {
			return false
		}
	}
	return true
}

// clean normalizes a raw field: NFC, trimmed, inner whitespace collapsed.
func clean(s string) string {
	s = norm.NFC.String(s)
	return strings.Join(strings.Fields(s), " ")
}
