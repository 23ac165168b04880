package deck

import "sort"

// Selection is a set of selected category names.
type Selection struct {
	set map[string]struct{}
}

// NewSelection returns a selection holding the given categories.
func NewSelection(categories ...string) Selection {
	s := Selection{set: make(map[string]struct{}, len(categories))}
	for _, c := range categories {
		s.set[c] = struct{}{}
	}
	return s
}

// Contains reports whether category is selected.
func (s Selection) Contains(category string) bool {
	_, ok := s.set[category]
	return ok
}

// Len returns the number of selected categories.
func (s Selection) Len() int {
	return len(s.set)
}

// Empty reports whether nothing is selected.
func (s Selection) Empty() bool {
	return len(s.set) == 0
}

// Toggle returns a copy of s with category flipped.
func (s Selection) Toggle(category string) Selection {
	out := s.Clone()
	if out.Contains(category) {
		delete(out.set, category)
	} else {
		out.set[category] = struct{}{}
	}
	return out
}

// Clone returns an independent copy.
func (s Selection) Clone() Selection {
	out := Selection{set: make(map[string]struct{}, len(s.set))}
	for c := range s.set {
		out.set[c] = struct{}{}
	}
	return out
}

// Equal reports whether both selections hold the same categories.
func (s Selection) Equal(o Selection) bool {
	if len(s.set) != len(o.set) {
		return false
	}
	for c := range s.set {
		if !o.Contains(c) {
			return false
		}
	}
	return true
}

// Restrict drops every category not in known.
func (s Selection) Restrict(known []string) Selection {
	out := NewSelection()
	for _, c := range known {
		if s.Contains(c) {
			out.set[c] = struct{}{}
		}
	}
	return out
}

// Categories returns the selected categories sorted by name.
func (s Selection) Categories() []string {
	out := make([]string, 0, len(s.set))
	for c := range s.set {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
