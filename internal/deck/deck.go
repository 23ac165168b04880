package deck

import (
	"math/rand/v2"

	"github.com/fffcards/fff/internal/question"
)

// Deck holds the loaded questions, the category selection, the visible
// sequence derived from them, and a cursor into that sequence.
type Deck struct {
	all        []question.Question
	categories []string
	selection  Selection
	visible    []question.Question
	cursor     Cursor
	policy     Policy
	rng        *rand.Rand
}

// New creates a Deck over all with every category selected. A nil rng uses
// a randomly seeded source.
func New(all []question.Question, policy Policy, rng *rand.Rand) *Deck {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	d := &Deck{
		all:        all,
		categories: question.Categories(all),
		policy:     policy,
		rng:        rng,
	}
	d.Select(NewSelection(d.categories...))
	return d
}

// Categories returns every discovered category in first-appearance order.
func (d *Deck) Categories() []string {
	return d.categories
}

// Counts returns the number of loaded questions per category.
func (d *Deck) Counts() map[string]int {
	counts := make(map[string]int, len(d.categories))
	for _, q := range d.all {
		counts[q.Category]++
	}
	return counts
}

// Total returns the number of loaded questions.
func (d *Deck) Total() int {
	return len(d.all)
}

// Selection returns a copy of the current selection.
func (d *Deck) Selection() Selection {
	return d.selection.Clone()
}

// Select replaces the selection, rebuilds the visible sequence, and moves the
// cursor back to the first card. Unknown categories are dropped.
func (d *Deck) Select(sel Selection) {
	d.selection = sel.Restrict(d.categories)
	d.visible = Order(Filter(d.all, d.selection), d.policy, d.rng)
	d.cursor.Reset(len(d.visible))
}

// Reshuffle shuffles the visible sequence, even when the policy does not,
// and returns to the first card.
func (d *Deck) Reshuffle() {
	p := d.policy
	p.Shuffle = true
	d.visible = Order(Filter(d.all, d.selection), p, d.rng)
	d.cursor.Reset(len(d.visible))
}

// Visible returns the current sequence.
func (d *Deck) Visible() []question.Question {
	return d.visible
}

// Len returns the length of the visible sequence.
func (d *Deck) Len() int {
	return len(d.visible)
}

// Empty reports whether no card is visible.
func (d *Deck) Empty() bool {
	return len(d.visible) == 0
}

// Current returns the card under the cursor.
func (d *Deck) Current() (question.Question, bool) {
	if d.Empty() {
		return question.Question{}, false
	}
	return d.visible[d.cursor.Index()], true
}

// Index returns the cursor position.
func (d *Deck) Index() int {
	return d.cursor.Index()
}

// HasPrev reports whether Prev would move.
func (d *Deck) HasPrev() bool {
	return !d.cursor.AtStart()
}

// HasNext reports whether Next would move.
func (d *Deck) HasNext() bool {
	return !d.cursor.AtEnd()
}

// Next advances to the following card.
func (d *Deck) Next() bool {
	return d.cursor.Next()
}

// Prev returns to the previous card.
func (d *Deck) Prev() bool {
	return d.cursor.Prev()
}
