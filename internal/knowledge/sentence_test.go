package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSentenceCopiesCells(t *testing.T) {
	cells := NewCellSet(Cell{0, 0}, Cell{0, 1})
	s := NewSentence(cells, 1)

	cells.Add(Cell{5, 5})
	assert.Equal(t, 2, s.Cells().Len())
}

func TestNewSentenceRejectsBadCounts(t *testing.T) {
	cells := NewCellSet(Cell{0, 0}, Cell{0, 1})
	require.Panics(t, func() { NewSentence(cells, -1) })
	require.Panics(t, func() { NewSentence(cells, 3) })
	require.NotPanics(t, func() { NewSentence(cells, 0) })
	require.NotPanics(t, func() { NewSentence(cells, 2) })
}

func TestSentenceEqual(t *testing.T) {
	a := NewSentence(NewCellSet(Cell{0, 0}, Cell{1, 1}), 1)
	b := NewSentence(NewCellSet(Cell{1, 1}, Cell{0, 0}), 1)
	c := NewSentence(NewCellSet(Cell{0, 0}, Cell{1, 1}), 2)
	d := NewSentence(NewCellSet(Cell{0, 0}), 1)

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
}

func TestSentenceKnownCellsUseEngineFacts(t *testing.T) {
	s := NewSentence(NewCellSet(Cell{0, 0}, Cell{0, 1}, Cell{0, 2}), 1)

	mines := NewCellSet(Cell{0, 0}, Cell{9, 9})
	safes := NewCellSet(Cell{0, 2})

	assert.Equal(t, NewCellSet(Cell{0, 0}), s.KnownMines(mines))
	assert.Equal(t, NewCellSet(Cell{0, 2}), s.KnownSafes(safes))
	assert.Equal(t, NewCellSet(), s.KnownMines(NewCellSet()))
}

func TestEliminateMine(t *testing.T) {
	s := NewSentence(NewCellSet(Cell{0, 0}, Cell{0, 1}), 1)

	s.EliminateMine(Cell{0, 0})
	assert.Equal(t, 0, s.Count())
	assert.Equal(t, NewCellSet(Cell{0, 1}), s.Cells())

	// idempotent for a cell no longer present
	s.EliminateMine(Cell{0, 0})
	assert.Equal(t, 0, s.Count())
	assert.Equal(t, NewCellSet(Cell{0, 1}), s.Cells())
}

func TestEliminateSafe(t *testing.T) {
	s := NewSentence(NewCellSet(Cell{0, 0}, Cell{0, 1}), 1)

	s.EliminateSafe(Cell{0, 1})
	assert.Equal(t, 1, s.Count())
	assert.Equal(t, NewCellSet(Cell{0, 0}), s.Cells())

	s.EliminateSafe(Cell{0, 1})
	assert.Equal(t, 1, s.Count())
	assert.Equal(t, NewCellSet(Cell{0, 0}), s.Cells())
}

func TestEliminateMineNegativeCountPanics(t *testing.T) {
	s := NewSentence(NewCellSet(Cell{0, 0}, Cell{0, 1}), 0)
	require.Panics(t, func() { s.EliminateMine(Cell{0, 0}) })
}

func TestSentenceString(t *testing.T) {
	s := NewSentence(NewCellSet(Cell{1, 0}, Cell{0, 1}), 1)
	assert.Equal(t, "{(0,1) (1,0)} = 1", s.String())
}
