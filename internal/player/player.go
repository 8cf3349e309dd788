package player

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"github.com/rsavkin/minesweeper-agent/internal/knowledge"
	"github.com/rsavkin/minesweeper-agent/internal/mines"
)

var Log = logrus.New()

type Outcome int

const (
	Won Outcome = iota
	Lost
)

func (o Outcome) String() string {
	if o == Won {
		return "won"
	}
	return "lost"
}

// Summary describes one finished game.
type Summary struct {
	Outcome     Outcome
	Moves       int
	RandomMoves int
	Flagged     int
}

/*
Player drives one game: it relays the board's observations into the
engine and picks the next probe from the engine's answers, preferring
proven-safe cells and falling back to a random one.
*/
type Player struct {
	board   *mines.Board
	engine  *knowledge.Engine
	flagged knowledge.CellSet
	r       *rand.Rand
}

func New(board *mines.Board, r *rand.Rand) *Player {
	height, width := board.Dims()
	return &Player{
		board:   board,
		engine:  knowledge.NewEngine(height, width),
		flagged: knowledge.NewCellSet(),
		r:       r,
	}
}

func (p *Player) Engine() *knowledge.Engine {
	return p.engine
}

func (p *Player) Flagged() knowledge.CellSet {
	return p.flagged.Clone()
}

// View renders the board as the player currently sees it.
func (p *Player) View() string {
	return p.board.Render(p.engine.MovesMade(), p.flagged)
}

// Play runs the game to completion and reports how it went.
func (p *Player) Play() Summary {
	var sum Summary
	for {
		for _, c := range p.engine.KnownMines().Sorted() {
			if !p.flagged.Has(c) {
				p.flagged.Add(c)
				sum.Flagged++
				Log.WithField("cell", c.String()).Debug("flagged mine")
			}
		}
		if p.board.Won(p.flagged) {
			sum.Outcome = Won
			return sum
		}

		move, ok := p.engine.SafeMove()
		if ok {
			Log.WithField("cell", move.String()).Debug("safe move")
		} else {
			move, ok = p.engine.RandomMove(p.r)
			if !ok {
				break
			}
			sum.RandomMoves++
			Log.WithField("cell", move.String()).Debug("random move")
		}

		sum.Moves++
		if p.board.IsMine(move) {
			Log.WithField("cell", move.String()).Debug("hit a mine")
			sum.Outcome = Lost
			return sum
		}
		if err := p.engine.Observe(move, p.board.NearbyMines(move)); err != nil {
			Log.Fatal("engine rejected a fresh move: ", err)
		}
	}

	/*
	 * No cell left to probe. Every unprobed cell is a known mine, so
	 * the flag pass on the next-to-last turn either completed the game
	 * or the placement count disagreed with the board.
	 */
	if p.board.Won(p.flagged) {
		sum.Outcome = Won
	} else {
		sum.Outcome = Lost
	}
	return sum
}
