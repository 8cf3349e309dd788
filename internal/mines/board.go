package mines

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/rsavkin/minesweeper-agent/internal/knowledge"
)

/*
Board holds the true state of one minesweeper field. It answers the
queries the inference engine's side of the table is allowed to ask
(bounds, mine membership, neighbor counts) and decides wins; it never
reaches into the engine.
*/
type Board struct {
	height, width int
	grid          []bool /* real mine points */
	mines         knowledge.CellSet
}

// NewBoard places mineCount mines uniformly on a height x width field.
func NewBoard(height, width, mineCount int, r *rand.Rand) (*Board, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("invalid board dimensions %dx%d", height, width)
	}
	if mineCount < 0 || mineCount > height*width {
		return nil, fmt.Errorf(
			"cannot place %d mines on a %dx%d board", mineCount, height, width,
		)
	}
	b := &Board{
		height: height,
		width:  width,
		grid:   make([]bool, height*width),
		mines:  knowledge.NewCellSet(),
	}
	for b.mines.Len() < mineCount {
		row, col := r.IntN(height), r.IntN(width)
		if !b.grid[row*width+col] {
			b.grid[row*width+col] = true
			b.mines.Add(knowledge.Cell{Row: row, Col: col})
		}
	}
	return b, nil
}

// NewBoardWithMines builds a board with mines at fixed cells, for
// crafted scenarios.
func NewBoardWithMines(height, width int, mineCells ...knowledge.Cell) (*Board, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("invalid board dimensions %dx%d", height, width)
	}
	b := &Board{
		height: height,
		width:  width,
		grid:   make([]bool, height*width),
		mines:  knowledge.NewCellSet(),
	}
	for _, c := range mineCells {
		if c.Row < 0 || c.Row >= height || c.Col < 0 || c.Col >= width {
			return nil, fmt.Errorf("mine %s is out of bounds", c)
		}
		b.grid[c.Row*width+c.Col] = true
		b.mines.Add(c)
	}
	return b, nil
}

func (b *Board) Dims() (height, width int) {
	return b.height, b.width
}

func (b *Board) MineCount() int {
	return b.mines.Len()
}

func (b *Board) IsMine(c knowledge.Cell) bool {
	return b.grid[c.Row*b.width+c.Col]
}

// NearbyMines counts the mines within one row and column of c, not
// counting c itself.
func (b *Board) NearbyMines(c knowledge.Cell) int {
	n := 0
	for _, nb := range c.Neighbors(b.height, b.width) {
		if b.IsMine(nb) {
			n++
		}
	}
	return n
}

// Won reports whether flagged marks exactly the mines.
func (b *Board) Won(flagged knowledge.CellSet) bool {
	return flagged.Equal(b.mines)
}

// String renders the true grid, mines as X.
func (b *Board) String() string {
	var sb strings.Builder
	for row := range b.height {
		for col := range b.width {
			if b.grid[row*b.width+col] {
				sb.WriteString("X ")
			} else {
				sb.WriteString("- ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Render draws the player's view: opened cells show their neighbor
// count, flagged cells show *, the rest stay blank.
func (b *Board) Render(opened, flagged knowledge.CellSet) string {
	var sb strings.Builder
	for row := range b.height {
		for col := range b.width {
			c := knowledge.Cell{Row: row, Col: col}
			switch {
			case flagged.Has(c):
				sb.WriteString("* ")
			case opened.Has(c):
				fmt.Fprintf(&sb, "%d ", b.NearbyMines(c))
			default:
				sb.WriteString("  ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
