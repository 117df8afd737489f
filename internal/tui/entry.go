package tui

import (
	"unicode"

	"github.com/sstandre/tuidle/internal/words"
)

// Entry collects the letters of the row being typed.
type Entry struct {
	size    int
	letters []words.Letter
}

// NewEntry returns an empty entry that holds up to size letters.
func NewEntry(size int) *Entry {
	return &Entry{size: size, letters: make([]words.Letter, 0, size)}
}

// Type appends r if it is a letter and the row is not full.
// It reports whether the entry changed.
func (e *Entry) Type(r rune) bool {
	if len(e.letters) == e.size || r > unicode.MaxASCII {
		return false
	}
	r = unicode.ToUpper(r)
	if !words.IsLetter(r) {
		return false
	}
	e.letters = append(e.letters, words.Letter(r))
	return true
}

// Delete removes the last letter, if any.
func (e *Entry) Delete() bool {
	if len(e.letters) == 0 {
		return false
	}
	e.letters = e.letters[:len(e.letters)-1]
	return true
}

// Full reports whether every box of the row is filled.
func (e *Entry) Full() bool { return len(e.letters) == e.size }

// Len returns the number of letters typed.
func (e *Entry) Len() int { return len(e.letters) }

// At returns the letter in box i, or 0 if it is empty.
func (e *Entry) At(i int) words.Letter {
	if i < 0 || i >= len(e.letters) {
		return 0
	}
	return e.letters[i]
}

// Word returns the typed letters as a word.
func (e *Entry) Word() words.Word {
	rs := make([]rune, len(e.letters))
	for i, l := range e.letters {
		rs[i] = rune(l)
	}
	return words.Word(rs)
}

// Clear empties the entry.
func (e *Entry) Clear() { e.letters = e.letters[:0] }
