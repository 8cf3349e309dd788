package knowledge

import "fmt"

// Cell identifies one grid position. Row and column are zero-based,
// row-major from the top-left corner.
type Cell struct {
	Row, Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

func cellcmp(a, b Cell) int {
	if a.Row < b.Row {
		return -1
	}
	if a.Row > b.Row {
		return 1
	}
	if a.Col < b.Col {
		return -1
	}
	if a.Col > b.Col {
		return 1
	}
	return 0
}

// Neighbors returns the up-to-8 cells adjacent to c, clipped to a
// height x width grid.
func (c Cell) Neighbors(height, width int) []Cell {
	ns := make([]Cell, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, cc := c.Row+dr, c.Col+dc
			if 0 <= r && r < height && 0 <= cc && cc < width {
				ns = append(ns, Cell{Row: r, Col: cc})
			}
		}
	}
	return ns
}
