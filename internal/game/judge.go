package game

import (
	"detectivequest/internal/evidence"
	"detectivequest/internal/notebook"
)

// Verdict is the outcome of an accusation.
type Verdict struct {
	Accused   string
	Matches   int
	Threshold int
}

// Sustained reports whether the evidence against the accused clears the bar.
func (v Verdict) Sustained() bool {
	return v.Matches >= v.Threshold
}

// Judge walks the notebook in order and counts the clues whose board entry
// names the accused. The comparison is exact: the player must get the name
// right, not merely close.
func Judge(nb *notebook.Notebook, board *evidence.Board, accused string, threshold int) Verdict {
	verdict := Verdict{Accused: accused, Threshold: threshold}
	nb.Walk(func(text string) bool {
		if suspect, ok := board.SuspectFor(text); ok && suspect == accused {
			verdict.Matches++
		}
		return true
	})
	return verdict
}
