// internal/words/dictionary.go
//
// Dictionary loading.
//
// Initialization behavior (Load):
//   1. If both AnswersFile and AllowedFile are set,
//      load answers from the first and allowed guesses from the second.
//   2. If only AllowedFile is set,
//      load that file and use it for both answers and allowed guesses.
//   3. If neither is set,
//      fall back to the embedded lists in the assets package.
//
// Answers are always accepted as guesses.

package words

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/samber/lo"

	"github.com/sstandre/tuidle/assets"
)

// ErrEmptyList is returned when no answers survive loading.
var ErrEmptyList = errors.New("words: answers list is empty")

// LoadOptions selects where word lists come from.
type LoadOptions struct {
	Length      int    // letters per word
	AnswersFile string // optional path, one word per line
	AllowedFile string // optional path, one word per line
}

// Dictionary is an immutable pair of answer pool and accepted-guess set.
type Dictionary struct {
	length  int
	answers []Word
	allowed map[Word]struct{} // answers ∪ extra guesses
}

// NewDictionary builds a dictionary from already-normalized lists.
// Entries that are not valid for length are dropped.
func NewDictionary(length int, answers, allowed []Word) *Dictionary {
	keep := func(w Word, _ int) bool { return w.Valid(length) }
	ans := lo.Uniq(lo.Filter(answers, keep))

	set := make(map[Word]struct{}, len(ans)+len(allowed))
	for _, w := range ans {
		set[w] = struct{}{}
	}
	for _, w := range lo.Filter(allowed, keep) {
		set[w] = struct{}{}
	}
	return &Dictionary{length: length, answers: ans, allowed: set}
}

// Load reads the configured lists (see package comment for precedence).
func Load(opts LoadOptions) (*Dictionary, error) {
	var ansList, allowList []Word
	var err error

	switch {
	case opts.AnswersFile != "" && opts.AllowedFile != "":
		if ansList, err = readWordFile(opts.AnswersFile, opts.Length); err != nil {
			return nil, err
		}
		if allowList, err = readWordFile(opts.AllowedFile, opts.Length); err != nil {
			return nil, err
		}

	case opts.AllowedFile != "":
		if allowList, err = readWordFile(opts.AllowedFile, opts.Length); err != nil {
			return nil, err
		}
		ansList = allowList

	default:
		if ansList, err = readEmbedded(assets.Answers, opts.Length); err != nil {
			return nil, err
		}
		if allowList, err = readEmbedded(assets.Allowed, opts.Length); err != nil {
			return nil, err
		}
	}

	d := NewDictionary(opts.Length, ansList, allowList)
	if len(d.answers) == 0 {
		return nil, ErrEmptyList
	}
	return d, nil
}

func readWordFile(path string, length int) ([]Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	list, err := Parse(f, length)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return list, nil
}

func readEmbedded(open func() (io.ReadCloser, error), length int) ([]Word, error) {
	f, err := open()
	if err != nil {
		return nil, fmt.Errorf("open embedded list: %w", err)
	}
	defer f.Close()
	return Parse(f, length)
}

// Length returns the word length this dictionary was built for.
func (d *Dictionary) Length() int { return d.length }

// Answers returns the candidate secrets. Callers must not modify the slice.
func (d *Dictionary) Answers() []Word { return d.answers }

// Contains reports whether w is an accepted guess.
func (d *Dictionary) Contains(w Word) bool {
	_, ok := d.allowed[w]
	return ok
}

// Stats returns counts of loaded words: (answers, allowed).
func (d *Dictionary) Stats() (answersCount int, allowedCount int) {
	return len(d.answers), len(d.allowed)
}
