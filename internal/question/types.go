package question

import "errors"

// DefaultCategory is assigned to rows that carry only a question.
const DefaultCategory = "Allgemein"

// ErrNoQuestions is returned when an input parses without error but yields no
// question rows.
var ErrNoQuestions = errors.New("no questions found")

// Question is a single prompt shown on one card.
type Question struct {
	Text     string
	Category string
}

// Categories returns the distinct categories of qs in first-appearance order.
func Categories(qs []Question) []string {
	seen := make(map[string]bool)
	var out []string
	for _, q := range qs {
		if seen[q.Category] {
			continue
		}
		seen[q.Category] = true
		out = append(out, q.Category)
	}
	return out
}
