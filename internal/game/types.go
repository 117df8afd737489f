// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - Hint: per-letter result of a guess (incorrect/maybe/correct).
//   - GuessResult: per-position hints for one guess.
//   - State: in-play / won / lost.
//   - Attempt: one accepted guess with its hints.

package game

import (
	"fmt"

	"github.com/sstandre/tuidle/internal/words"
)

// Hint represents the evaluation result for a single letter in a guess.
// Values are ordered by how much they tell the player:
//
//	Incorrect (0) < Maybe (1) < Correct (2)
//
// The keyboard relies on this order to keep the best hint per letter.
type Hint int

const (
	Incorrect Hint = 0 // letter does not occur in the secret (or all occurrences are used up)
	Maybe     Hint = 1 // letter occurs in the secret at another position
	Correct   Hint = 2 // letter is in the right position
)

// Less reports whether h is strictly less informative than o.
func (h Hint) Less(o Hint) bool { return h < o }

// MaxHint returns the more informative of a and b.
func MaxHint(a, b Hint) Hint {
	if a.Less(b) {
		return b
	}
	return a
}

// String returns the class name hosts use for rendering.
func (h Hint) String() string {
	switch h {
	case Incorrect:
		return "incorrect"
	case Maybe:
		return "maybe"
	case Correct:
		return "correct"
	}
	return fmt.Sprintf("Hint(%d)", int(h))
}

// MarshalText encodes the hint as its class name.
func (h Hint) MarshalText() ([]byte, error) {
	switch h {
	case Incorrect, Maybe, Correct:
		return []byte(h.String()), nil
	}
	return nil, fmt.Errorf("game: invalid hint %d", int(h))
}

// UnmarshalText parses a class name.
func (h *Hint) UnmarshalText(b []byte) error {
	switch string(b) {
	case "incorrect":
		*h = Incorrect
	case "maybe":
		*h = Maybe
	case "correct":
		*h = Correct
	default:
		return fmt.Errorf("game: unknown hint %q", string(b))
	}
	return nil
}

// GuessResult holds one hint per position of a guess.
type GuessResult []Hint

// Solved reports whether every position is Correct.
func (r GuessResult) Solved() bool {
	if len(r) == 0 {
		return false
	}
	for _, h := range r {
		if h != Correct {
			return false
		}
	}
	return true
}

// State is the coarse session state.
type State int

const (
	InPlay State = iota
	Won
	Lost
)

// String reports the state as "playing", "won" or "lost".
func (s State) String() string {
	switch s {
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "playing"
}

// MarshalText encodes the state as its string form.
func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Over reports whether s is terminal.
func (s State) Over() bool { return s != InPlay }

// Attempt is one accepted guess together with its hints.
type Attempt struct {
	Guess  words.Word  `json:"guess"`
	Result GuessResult `json:"hints"`
}
