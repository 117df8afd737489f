package words

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// ErrNoCandidates is returned by pickers given an empty list.
var ErrNoCandidates = errors.New("words: no candidates to pick from")

// Picker chooses a secret from a list of candidates.
type Picker interface {
	Pick(candidates []Word) (Word, error)
}

// PickerFunc adapts a function to Picker.
type PickerFunc func(candidates []Word) (Word, error)

// Pick calls f.
func (f PickerFunc) Pick(candidates []Word) (Word, error) { return f(candidates) }

// RandomPicker picks uniformly using crypto/rand.
type RandomPicker struct{}

// Pick returns a uniformly random candidate.
func (RandomPicker) Pick(candidates []Word) (Word, error) {
	if len(candidates) == 0 {
		return "", ErrNoCandidates
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(candidates))))
	if err != nil {
		return "", err
	}
	return candidates[n.Int64()], nil
}

// Fixed always picks w, regardless of the candidates offered.
// Useful for tests and for serving a known answer.
func Fixed(w Word) Picker {
	return PickerFunc(func(candidates []Word) (Word, error) {
		if len(candidates) == 0 {
			return "", ErrNoCandidates
		}
		return w, nil
	})
}
