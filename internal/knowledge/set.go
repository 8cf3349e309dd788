package knowledge

import "slices"

type void struct{}

// CellSet is an unordered set of cells keyed by value equality.
type CellSet map[Cell]void

func NewCellSet(cells ...Cell) CellSet {
	s := make(CellSet, len(cells))
	for _, c := range cells {
		s.Add(c)
	}
	return s
}

func (s CellSet) Add(c Cell) {
	s[c] = void{}
}

func (s CellSet) Has(c Cell) bool {
	_, ok := s[c]
	return ok
}

func (s CellSet) Delete(c Cell) {
	delete(s, c)
}

func (s CellSet) Len() int {
	return len(s)
}

func (s CellSet) Clone() CellSet {
	clone := make(CellSet, len(s))
	for c := range s {
		clone[c] = void{}
	}
	return clone
}

func (s CellSet) Equal(x CellSet) bool {
	return len(s) == len(x) && s.SubsetOf(x)
}

// SubsetOf reports whether every cell of s is in x.
func (s CellSet) SubsetOf(x CellSet) bool {
	if len(s) > len(x) {
		return false
	}
	for c := range s {
		if !x.Has(c) {
			return false
		}
	}
	return true
}

// Intersect returns the cells present in both s and x.
func (s CellSet) Intersect(x CellSet) CellSet {
	result := NewCellSet()
	for c := range s {
		if x.Has(c) {
			result.Add(c)
		}
	}
	return result
}

// Diff returns the cells of s not present in x.
func (s CellSet) Diff(x CellSet) CellSet {
	result := NewCellSet()
	for c := range s {
		if !x.Has(c) {
			result.Add(c)
		}
	}
	return result
}

// Sorted returns the cells in row-major order.
func (s CellSet) Sorted() []Cell {
	cells := make([]Cell, 0, len(s))
	for c := range s {
		cells = append(cells, c)
	}
	slices.SortFunc(cells, cellcmp)
	return cells
}
