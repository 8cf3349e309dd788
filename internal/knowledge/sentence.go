package knowledge

import (
	"fmt"
	"strings"
)

/*
A Sentence is one logical statement about the board: exactly Count of
the cells in its set are mines. Sentences never gain cells; they only
shrink as the engine proves individual cells safe or mined, and are
discarded once empty.
*/
type Sentence struct {
	cells CellSet
	count int
}

// NewSentence copies cells into a fresh sentence. Panics with
// [AssertionError] unless 0 <= count <= |cells|.
func NewSentence(cells CellSet, count int) *Sentence {
	s := &Sentence{cells: cells.Clone(), count: count}
	if count < 0 || count > cells.Len() {
		panic(AssertionError{fmt.Sprintf("invalid sentence %s", s)})
	}
	return s
}

// Cells exposes the sentence's cell set for inspection. Callers must
// not mutate it.
func (s *Sentence) Cells() CellSet {
	return s.cells
}

func (s *Sentence) Count() int {
	return s.count
}

func (s *Sentence) Equal(x *Sentence) bool {
	return s.count == x.count && s.cells.Equal(x.cells)
}

// KnownMines returns the cells of this sentence already proven to be
// mines by the engine-wide fact set.
func (s *Sentence) KnownMines(mines CellSet) CellSet {
	return s.cells.Intersect(mines)
}

// KnownSafes returns the cells of this sentence already proven safe by
// the engine-wide fact set.
func (s *Sentence) KnownSafes(safes CellSet) CellSet {
	return s.cells.Intersect(safes)
}

// EliminateMine absorbs the fact that c is a mine: the cell leaves the
// set and the count drops by one. No-op when c is not a member, so
// repeated calls are safe.
func (s *Sentence) EliminateMine(c Cell) {
	if !s.cells.Has(c) {
		return
	}
	s.cells.Delete(c)
	s.count--
	if s.count < 0 {
		panic(AssertionError{fmt.Sprintf("sentence count went negative: %s", s)})
	}
}

// EliminateSafe absorbs the fact that c is safe: the cell leaves the
// set, the count stays. No-op when c is not a member.
func (s *Sentence) EliminateSafe(c Cell) {
	if !s.cells.Has(c) {
		return
	}
	s.cells.Delete(c)
	if s.count > s.cells.Len() {
		panic(AssertionError{fmt.Sprintf("sentence count exceeds cells: %s", s)})
	}
}

func (s *Sentence) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, c := range s.cells.Sorted() {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(c.String())
	}
	fmt.Fprintf(&b, "} = %d", s.count)
	return b.String()
}
