package deck

import (
	"math/rand/v2"
	"sort"

	"github.com/fffcards/fff/internal/question"
)

// Policy controls how a filtered list is sequenced.
type Policy struct {
	// Shuffle randomizes the order before any placement.
	Shuffle bool

	// Interleave names a category spread evenly through the sequence.
	Interleave string

	// Closing names a category placed within the final third.
	Closing string
}

// Filter returns the questions whose category is selected, in order.
func Filter(qs []question.Question, sel Selection) []question.Question {
	var out []question.Question
	for _, q := range qs {
		if sel.Contains(q.Category) {
			out = append(out, q)
		}
	}
	return out
}

// Shuffle returns a shuffled copy of qs.
func Shuffle(qs []question.Question, rng *rand.Rand) []question.Question {
	out := make([]question.Question, len(qs))
	copy(out, qs)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Spread pulls every question of category out of qs and re-inserts them at
// evenly spaced positions. Item i of k lands at index (i+1)*T/(k+1) of the
// T-long result; the rest keep their relative order.
func Spread(qs []question.Question, category string) []question.Question {
	spread, rest := partition(qs, category)
	if len(spread) == 0 {
		return qs
	}

	total := len(qs)
	k := len(spread)
	slots := make(map[int]bool, k)
	for i := 0; i < k; i++ {
		slots[(i+1)*total/(k+1)] = true
	}

	out := make([]question.Question, 0, total)
	var si, ri int
	for pos := 0; pos < total; pos++ {
		if slots[pos] {
			out = append(out, spread[si])
			si++
			continue
		}
		out = append(out, rest[ri])
		ri++
	}
	return out
}

// Close pulls every question of category out of qs and re-inserts them at
// random positions within the final third. When there are more closing
// questions than the final third holds, the region grows to fit them.
func Close(qs []question.Question, category string, rng *rand.Rand) []question.Question {
	closing, rest := partition(qs, category)
	if len(closing) == 0 {
		return qs
	}

	total := len(qs)
	c := len(closing)
	start := closingStart(total, c)

	// Choose c distinct positions in [start, total).
	region := make([]int, total-start)
	for i := range region {
		region[i] = start + i
	}
	rng.Shuffle(len(region), func(i, j int) {
		region[i], region[j] = region[j], region[i]
	})
	picked := region[:c]
	sort.Ints(picked)

	slots := make(map[int]bool, c)
	for _, p := range picked {
		slots[p] = true
	}

	out := make([]question.Question, 0, total)
	var ci, ri int
	for pos := 0; pos < total; pos++ {
		if slots[pos] {
			out = append(out, closing[ci])
			ci++
			continue
		}
		out = append(out, rest[ri])
		ri++
	}
	return out
}

// closingStart returns the first index of the final third of a total-long
// sequence, moved earlier if c items would not fit.
func closingStart(total, c int) int {
	start := (2*total + 2) / 3
	if total-start < c {
		start = total - c
	}
	return start
}

// Order applies a Policy: shuffle, then spread, then close.
func Order(qs []question.Question, p Policy, rng *rand.Rand) []question.Question {
	out := qs
	if p.Shuffle {
		out = Shuffle(out, rng)
	}
	if p.Interleave != "" {
		out = Spread(out, p.Interleave)
	}
	if p.Closing != "" && p.Closing != p.Interleave {
		out = Close(out, p.Closing, rng)
	}
	return out
}

// partition splits qs into those of category and the rest, keeping order.
func partition(qs []question.Question, category string) (match, rest []question.Question) {
	for _, q := range qs {
		if q.Category == category {
			match = append(match, q)
		} else {
			rest = append(rest, q)
		}
	}
	return match, rest
}
