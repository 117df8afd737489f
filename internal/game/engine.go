// internal/game/engine.go
//
// Guess evaluation.
//
// Evaluate implements the two‑pass Wordle scoring rule:
//
// Pass 1:
//   - Mark exact matches Correct.
//   - Bag every other secret letter (counts, so duplicates survive).
//
// Pass 2:
//   - Left to right, for each guess letter not yet Correct: if the bag still
//     holds that letter, mark Maybe and take one out; otherwise leave Incorrect.
//
// A letter therefore never collects more Maybe+Correct hints than it has
// occurrences in the secret, and earlier duplicates win the Maybe.

package game

import (
	"errors"
	"fmt"

	"github.com/sstandre/tuidle/internal/words"
)

// ErrInvalidLength is returned when a word does not have the expected length.
var ErrInvalidLength = errors.New("game: invalid word length")

// Evaluate scores guess against secret. Both must have the same length.
func Evaluate(secret, guess words.Word) (GuessResult, error) {
	s := []rune(string(secret))
	g := []rune(string(guess))
	if len(s) != len(g) {
		return nil, fmt.Errorf("%w: secret has %d letters, guess has %d", ErrInvalidLength, len(s), len(g))
	}

	res := make(GuessResult, len(g)) // zero value is Incorrect
	remaining := make(map[rune]int, len(s))

	for i := range g {
		if g[i] == s[i] {
			res[i] = Correct
		} else {
			remaining[s[i]]++
		}
	}

	for i := range g {
		if res[i] != Incorrect {
			continue
		}
		if remaining[g[i]] > 0 {
			res[i] = Maybe
			remaining[g[i]]--
		}
	}
	return res, nil
}
