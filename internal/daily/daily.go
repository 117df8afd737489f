// internal/daily/daily.go
//
// Deterministic "word of the day" selection.
// Every player gets the same secret for a given UTC date; the salt keeps the
// sequence from being predictable from the word list alone.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"io"
	"time"

	"github.com/sstandre/tuidle/internal/words"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Picker draws the word of the day. It implements words.Picker.
type Picker struct {
	Salt string
	Now  func() time.Time // defaults to time.Now
}

// Today is the date key Pick currently draws for.
func (p Picker) Today() string {
	if p.Now == nil {
		return DateKey(time.Now())
	}
	return DateKey(p.Now())
}

// Pick returns the pool entry at HMAC(salt, today) mod len(pool).
// The pool order matters, so callers pass the same list every day.
func (p Picker) Pick(pool []words.Word) (words.Word, error) {
	if len(pool) == 0 {
		return "", words.ErrNoCandidates
	}
	mac := hmac.New(sha256.New, []byte(p.Salt))
	_, _ = io.WriteString(mac, p.Today())
	slot := binary.BigEndian.Uint64(mac.Sum(nil)) % uint64(len(pool))
	return pool[slot], nil
}
