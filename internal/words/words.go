// internal/words/words.go
//
// Word and letter primitives shared by the game engine and its hosts.
//
// Responsibilities:
//   - Normalize raw input to the canonical form (trimmed, uppercase A–Z).
//   - Parse newline-delimited word lists, dropping comments, blanks,
//     duplicates, and entries of the wrong length.
//
// Constraints:
//   • Only unaccented A–Z letters are playable.
//   • Words are compared after normalization, so "crane" == "CRANE".

package words

import (
	"bufio"
	"io"
	"strings"

	"github.com/samber/lo"
)

// Letter is a single uppercase A–Z letter.
type Letter rune

// String returns the letter as a one-character string.
func (l Letter) String() string { return string(rune(l)) }

// IsLetter reports whether r is an uppercase A–Z letter.
func IsLetter(r rune) bool { return r >= 'A' && r <= 'Z' }

// Word is a normalized (uppercase) word.
type Word string

// Normalize trims whitespace and uppercases s.
func Normalize(s string) Word {
	return Word(strings.ToUpper(strings.TrimSpace(s)))
}

// Letters returns the word as a letter slice.
func (w Word) Letters() []Letter {
	out := make([]Letter, 0, len(w))
	for _, r := range w {
		out = append(out, Letter(r))
	}
	return out
}

// Len returns the number of letters in w.
func (w Word) Len() int { return len([]rune(string(w))) }

// Valid reports whether w has exactly n letters, all A–Z.
func (w Word) Valid(n int) bool {
	if w.Len() != n {
		return false
	}
	for _, r := range w {
		if !IsLetter(r) {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer.
func (w Word) String() string { return string(w) }

// Parse reads one word per line from r.
// Blank lines and lines starting with '#' are skipped; entries are normalized
// and anything that is not exactly length A–Z letters is dropped.
// The result keeps first-seen order with duplicates removed.
func Parse(r io.Reader, length int) ([]Word, error) {
	var out []Word
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if w := Normalize(line); w.Valid(length) {
			out = append(out, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lo.Uniq(out), nil
}
