package knowledge

import (
	"fmt"
	"math/rand/v2"

	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

/*
Engine accumulates knowledge about a single game. It owns the fact sets
and the knowledge base outright; running several games concurrently
just means one Engine per game, nothing is shared between instances.
*/
type Engine struct {
	height, width int

	movesMade CellSet
	mines     CellSet
	safes     CellSet

	knowledge []*Sentence
}

func NewEngine(height, width int) *Engine {
	return &Engine{
		height:    height,
		width:     width,
		movesMade: NewCellSet(),
		mines:     NewCellSet(),
		safes:     NewCellSet(),
	}
}

func (e *Engine) Dims() (height, width int) {
	return e.height, e.width
}

// KnownMines returns a copy of the cells proven to be mines.
func (e *Engine) KnownMines() CellSet {
	return e.mines.Clone()
}

// KnownSafes returns a copy of the cells proven safe.
func (e *Engine) KnownSafes() CellSet {
	return e.safes.Clone()
}

// MovesMade returns a copy of the cells already probed.
func (e *Engine) MovesMade() CellSet {
	return e.movesMade.Clone()
}

// Knowledge returns the live sentences for inspection. Callers must
// not mutate them.
func (e *Engine) Knowledge() []*Sentence {
	kb := make([]*Sentence, len(e.knowledge))
	copy(kb, e.knowledge)
	return kb
}

// fact is one proven conclusion waiting to be folded into the fact
// sets and every live sentence.
type fact struct {
	cell Cell
	mine bool
}

/*
Observe records that cell was revealed and had count mines among its
neighbors, then saturates the knowledge base. Returns an error (and
changes nothing) if cell was already probed; the board only reveals
each cell once under correct play.
*/
func (e *Engine) Observe(cell Cell, count int) error {
	if e.movesMade.Has(cell) {
		return fmt.Errorf("cell %s already observed", cell)
	}

	Log.WithFields(logrus.Fields{
		"cell": cell.String(), "count": count,
	}).Debug("observe")

	e.movesMade.Add(cell)

	var pending deque.Deque[fact]
	pending.PushBack(fact{cell: cell, mine: false})

	/*
	 * Build the sentence over the unprobed neighborhood. Neighbors
	 * already proven safe or mined stay in: the count describes the
	 * whole neighborhood, and saturation eliminates them against the
	 * fact sets right after the sentence lands.
	 */
	neighbors := NewCellSet()
	for _, n := range cell.Neighbors(e.height, e.width) {
		if !e.movesMade.Has(n) {
			neighbors.Add(n)
		}
	}
	if neighbors.Len() > 0 {
		e.addSentence(NewSentence(neighbors, count))
	}

	e.saturate(&pending)
	return nil
}

// addSentence appends s unless an equal sentence is already present.
func (e *Engine) addSentence(s *Sentence) bool {
	for _, k := range e.knowledge {
		if k.Equal(s) {
			return false
		}
	}
	e.knowledge = append(e.knowledge, s)
	return true
}

/*
saturate runs collect-then-commit passes until a full pass changes
nothing: no new fact, no sentence resolved, no sentence derived. Each
pass commits queued facts, extracts facts from resolved sentences, and
derives new sentences from strict-subset pairs. Termination: facts only
accumulate (bounded by the grid) and each distinct sentence is admitted
at most once between resolutions.
*/
func (e *Engine) saturate(pending *deque.Deque[fact]) {
	for pass := 1; ; pass++ {
		changed := false

		for pending.Len() > 0 {
			if e.commitFact(pending.PopFront()) {
				changed = true
			}
		}

		e.dropDuplicates()

		if e.extractFacts(pending) {
			changed = true
		}

		if e.deriveSubsets() {
			changed = true
		}

		if !changed && pending.Len() == 0 {
			Log.WithFields(logrus.Fields{
				"passes": pass, "sentences": len(e.knowledge),
				"mines": e.mines.Len(), "safes": e.safes.Len(),
			}).Debug("saturated")
			return
		}
	}
}

/*
commitFact adds one conclusion to the fact sets and folds it into every
live sentence. Reports whether the fact was new. A cell proven both
safe and mined means the observations were inconsistent.
*/
func (e *Engine) commitFact(f fact) bool {
	isNew := false
	if f.mine {
		if e.safes.Has(f.cell) {
			panic(AssertionError{fmt.Sprintf("cell %s proven both safe and mine", f.cell)})
		}
		if !e.mines.Has(f.cell) {
			e.mines.Add(f.cell)
			isNew = true
			Log.WithField("cell", f.cell.String()).Debug("proven mine")
		}
		for _, s := range e.knowledge {
			s.EliminateMine(f.cell)
		}
	} else {
		if e.mines.Has(f.cell) {
			panic(AssertionError{fmt.Sprintf("cell %s proven both safe and mine", f.cell)})
		}
		if !e.safes.Has(f.cell) {
			e.safes.Add(f.cell)
			isNew = true
			Log.WithField("cell", f.cell.String()).Debug("proven safe")
		}
		for _, s := range e.knowledge {
			s.EliminateSafe(f.cell)
		}
	}
	return isNew
}

// dropDuplicates removes sentences that eliminations have collapsed
// into copies of an earlier one.
func (e *Engine) dropDuplicates() {
	kept := e.knowledge[:0]
	for _, s := range e.knowledge {
		dup := false
		for _, k := range kept {
			if k.Equal(s) {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, s)
		}
	}
	e.knowledge = kept
}

/*
extractFacts removes every resolved sentence, queueing its cells as
facts: count zero proves all cells safe, count equal to the set size
proves them all mines. An empty sentence carries no information and is
dropped; an empty sentence with a nonzero count is a contradiction.
*/
func (e *Engine) extractFacts(pending *deque.Deque[fact]) bool {
	changed := false
	kept := e.knowledge[:0]
	for _, s := range e.knowledge {
		switch {
		case s.cells.Len() == 0:
			if s.count != 0 {
				panic(AssertionError{fmt.Sprintf("contradiction: empty sentence %s", s)})
			}
			changed = true
		case s.count == 0:
			for _, c := range s.cells.Sorted() {
				pending.PushBack(fact{cell: c, mine: false})
			}
			changed = true
		case s.count == s.cells.Len():
			for _, c := range s.cells.Sorted() {
				pending.PushBack(fact{cell: c, mine: true})
			}
			changed = true
		default:
			kept = append(kept, s)
		}
	}
	e.knowledge = kept
	return changed
}

/*
deriveSubsets applies the subset rule to every ordered pair of live
sentences: when sub's cells are a strict subset of super's, the cells
unique to super hold exactly the leftover mines. Candidates equal to an
existing sentence are suppressed. Derivations pair only the sentences
present at entry; anything new gets its chance next pass.
*/
func (e *Engine) deriveSubsets() bool {
	changed := false
	snapshot := e.knowledge
	for _, super := range snapshot {
		for _, sub := range snapshot {
			if super == sub {
				continue
			}
			if sub.cells.Len() >= super.cells.Len() || !sub.cells.SubsetOf(super.cells) {
				continue
			}
			if super.count < sub.count {
				panic(AssertionError{fmt.Sprintf(
					"contradiction: %s is a subset of %s", sub, super,
				)})
			}
			derived := NewSentence(super.cells.Diff(sub.cells), super.count-sub.count)
			if e.addSentence(derived) {
				Log.WithFields(logrus.Fields{
					"super": super.String(), "sub": sub.String(),
					"derived": derived.String(),
				}).Debug("subset derivation")
				changed = true
			}
		}
	}
	return changed
}

/*
SafeMove returns a cell proven safe and not yet probed. The spec of
this query allows any candidate; picking the row-major minimum keeps
replays reproducible. ok is false when no such cell exists.
*/
func (e *Engine) SafeMove() (move Cell, ok bool) {
	for c := range e.safes {
		if e.movesMade.Has(c) {
			continue
		}
		if !ok || cellcmp(c, move) < 0 {
			move, ok = c, true
		}
	}
	return move, ok
}

/*
RandomMove picks uniformly among cells that are neither probed nor
known mines. ok is false when no such cell remains, which means the
board is exhausted; callers check for a finished game first.
*/
func (e *Engine) RandomMove(r *rand.Rand) (move Cell, ok bool) {
	eligible := make([]Cell, 0, e.height*e.width-e.movesMade.Len())
	for row := range e.height {
		for col := range e.width {
			c := Cell{Row: row, Col: col}
			if !e.movesMade.Has(c) && !e.mines.Has(c) {
				eligible = append(eligible, c)
			}
		}
	}
	if len(eligible) == 0 {
		return Cell{}, false
	}
	return eligible[r.IntN(len(eligible))], true
}
