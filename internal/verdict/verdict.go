// Package verdict decides whether the collected evidence is enough to convict the accused.
package verdict

import (
	"github.com/myrjola/detectivequest/internal/ledger"
	"github.com/myrjola/detectivequest/internal/models"
	"github.com/myrjola/detectivequest/internal/suspects"
)

// Threshold is the number of clues pointing at the accused needed for a conviction.
const Threshold = 2

// Outcome of a judgment.
type Outcome int

const (
	Insufficient Outcome = iota
	Convicted
)

func (o Outcome) String() string {
	if o == Convicted {
		return "convicted"
	}
	return "insufficient"
}

// Result is the outcome together with the evidence that counted.
type Result struct {
	Accused  string
	Outcome  Outcome
	Count    int
	Evidence []string
}

// Judge counts the collected clues attributed to accused. Names must match exactly.
func Judge(clues *ledger.Ledger, index *suspects.Index, accused string) Result {
	r := Result{Accused: accused, Outcome: Insufficient, Count: 0, Evidence: nil}
	for clue := range clues.InOrder() {
		if index.Lookup(clue) == accused {
			r.Count++
			r.Evidence = append(r.Evidence, clue)
		}
	}
	if r.Count >= Threshold {
		r.Outcome = Convicted
	}
	return r
}

// Revelation is what the optional reveal shows after the verdict.
type Revelation struct {
	Culprit string
	Found   []string
	Missed  []string
	Correct bool
}

// Reveal compares the ground truth with what was collected and with the accused.
func Reveal(truth models.GroundTruth, clues *ledger.Ledger, accused string) Revelation {
	rev := Revelation{Culprit: truth.Culprit, Found: nil, Missed: nil, Correct: accused == truth.Culprit}
	for _, clue := range truth.Clues {
		if clues.Contains(clue) {
			rev.Found = append(rev.Found, clue)
		} else {
			rev.Missed = append(rev.Missed, clue)
		}
	}
	return rev
}
