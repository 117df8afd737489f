package game

import (
	"github.com/samber/lo"

	"github.com/sstandre/tuidle/internal/words"
)

// Observation is one (letter, hint) pair seen in a scored guess.
type Observation struct {
	Letter words.Letter
	Hint   Hint
}

// Observations zips a guess with its hints.
// Extra letters or hints beyond the shorter of the two are ignored.
func Observations(guess words.Word, result GuessResult) []Observation {
	letters := guess.Letters()
	n := min(len(letters), len(result))
	out := make([]Observation, n)
	for i := 0; i < n; i++ {
		out[i] = Observation{Letter: letters[i], Hint: result[i]}
	}
	return out
}

// Keyboard tracks the best hint seen for each letter.
// A stored hint is only ever replaced by a strictly better one.
// The zero value is ready to use.
type Keyboard struct {
	best map[words.Letter]Hint
}

// Merge folds observations into the keyboard.
func (k *Keyboard) Merge(obs ...Observation) {
	if k.best == nil {
		k.best = make(map[words.Letter]Hint)
	}
	for _, o := range obs {
		cur, ok := k.best[o.Letter]
		if !ok || cur.Less(o.Hint) {
			k.best[o.Letter] = o.Hint
		}
	}
}

// Hint returns the best hint recorded for l; ok is false if none yet.
func (k *Keyboard) Hint(l words.Letter) (h Hint, ok bool) {
	h, ok = k.best[l]
	return h, ok
}

// Len returns the number of letters with a recorded hint.
func (k *Keyboard) Len() int { return len(k.best) }

// Snapshot returns a copy of the recorded hints.
func (k *Keyboard) Snapshot() map[words.Letter]Hint {
	return lo.Assign(map[words.Letter]Hint{}, k.best)
}
