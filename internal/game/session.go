// internal/game/session.go
//
// Session state machine for a single game.
// Responsibilities:
//   - Draw a secret once per game through an injectable Picker.
//   - Validate and apply guesses (state, length, word list).
//   - Track attempts and the keyboard.
//   - Transition playing → won/lost; only Reset starts over.
//
// A Session is not safe for concurrent use; hosts serialize calls
// (see the store package for the HTTP host).

package game

import (
	"errors"
	"fmt"

	"github.com/sstandre/tuidle/internal/words"
)

const (
	DefaultWordLength  = 5
	DefaultMaxAttempts = 6
)

// Rejections: the guess is refused and nothing changes.
var (
	ErrGameAlreadyOver = errors.New("game already over")
	ErrWrongLength     = errors.New("wrong length")
	ErrNotInWordList   = errors.New("not in word list")
)

// ErrEmptyWordSource is returned by New/Reset when there is nothing to draw from.
var ErrEmptyWordSource = errors.New("game: empty word source")

// IsRejection reports whether err is a user-input rejection from SubmitGuess,
// as opposed to a programming error.
func IsRejection(err error) bool {
	return errors.Is(err, ErrGameAlreadyOver) ||
		errors.Is(err, ErrWrongLength) ||
		errors.Is(err, ErrNotInWordList)
}

// Source supplies candidate secrets and the set of accepted guesses.
// *words.Dictionary implements it.
type Source interface {
	Answers() []words.Word
	Contains(w words.Word) bool
}

// Option configures a Session.
type Option func(*Session)

// WithWordLength sets the number of letters per word.
func WithWordLength(n int) Option { return func(s *Session) { s.wordLength = n } }

// WithMaxAttempts sets the number of guesses allowed.
func WithMaxAttempts(n int) Option { return func(s *Session) { s.maxAttempts = n } }

// WithPicker sets how secrets are drawn. Defaults to words.RandomPicker.
func WithPicker(p words.Picker) Option { return func(s *Session) { s.picker = p } }

// Session holds the state of a single game.
type Session struct {
	wordLength  int
	maxAttempts int
	picker      words.Picker

	secret   words.Word
	valid    Source
	attempts []Attempt
	keyboard Keyboard
	state    State
}

// Result describes an accepted guess.
type Result struct {
	Hints   GuessResult
	State   State
	Attempt int // 1-based number of this guess
}

// New configures a session and starts its first game from src.
func New(src Source, opts ...Option) (*Session, error) {
	s := &Session{
		wordLength:  DefaultWordLength,
		maxAttempts: DefaultMaxAttempts,
		picker:      words.RandomPicker{},
	}
	for _, o := range opts {
		o(s)
	}
	if s.wordLength <= 0 || s.maxAttempts <= 0 {
		return nil, fmt.Errorf("game: word length and max attempts must be positive (got %d, %d)", s.wordLength, s.maxAttempts)
	}
	if err := s.Reset(src); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset starts a new game with a fresh secret drawn from src.
// On error the current game is left as it was.
func (s *Session) Reset(src Source) error {
	if src == nil || len(src.Answers()) == 0 {
		return ErrEmptyWordSource
	}
	secret, err := s.picker.Pick(src.Answers())
	if err != nil {
		return fmt.Errorf("game: pick secret: %w", err)
	}
	secret = words.Normalize(string(secret))
	if secret.Len() != s.wordLength {
		return fmt.Errorf("%w: secret %q is not %d letters", ErrInvalidLength, secret, s.wordLength)
	}
	if !secret.Valid(s.wordLength) {
		return fmt.Errorf("game: secret %q is not a word", secret)
	}

	*s = Session{
		wordLength:  s.wordLength,
		maxAttempts: s.maxAttempts,
		picker:      s.picker,
		secret:      secret,
		valid:       src,
		state:       InPlay,
	}
	return nil
}

// SubmitGuess validates and scores a guess. The guess is normalized first.
//
// Rejections, checked in order, leave the session untouched:
//   - ErrGameAlreadyOver: the game is won or lost.
//   - ErrWrongLength: guess is not WordLength letters.
//   - ErrNotInWordList: guess is not an accepted word.
func (s *Session) SubmitGuess(guess words.Word) (Result, error) {
	if s.state != InPlay {
		return Result{State: s.state}, ErrGameAlreadyOver
	}
	guess = words.Normalize(string(guess))
	if guess.Len() != s.wordLength {
		return Result{State: s.state}, ErrWrongLength
	}
	if !s.valid.Contains(guess) {
		return Result{State: s.state}, ErrNotInWordList
	}

	hints, err := Evaluate(s.secret, guess)
	if err != nil {
		return Result{State: s.state}, err
	}
	s.attempts = append(s.attempts, Attempt{Guess: guess, Result: hints})
	s.keyboard.Merge(Observations(guess, hints)...)

	switch {
	case guess == s.secret:
		s.state = Won
	case len(s.attempts) == s.maxAttempts:
		s.state = Lost
	}
	return Result{Hints: hints, State: s.state, Attempt: len(s.attempts)}, nil
}

// CurrentAttemptIndex returns how many guesses have been accepted,
// i.e. the 0-based index of the next row.
func (s *Session) CurrentAttemptIndex() int { return len(s.attempts) }

// State returns the current state.
func (s *Session) State() State { return s.state }

// WordLength returns the number of letters per word.
func (s *Session) WordLength() int { return s.wordLength }

// MaxAttempts returns the number of guesses allowed.
func (s *Session) MaxAttempts() int { return s.maxAttempts }

// Attempts returns a copy of the accepted guesses in order.
func (s *Session) Attempts() []Attempt {
	out := make([]Attempt, len(s.attempts))
	for i, a := range s.attempts {
		out[i] = Attempt{Guess: a.Guess, Result: append(GuessResult(nil), a.Result...)}
	}
	return out
}

// Keyboard returns a snapshot of the best hint per letter.
func (s *Session) Keyboard() map[words.Letter]Hint { return s.keyboard.Snapshot() }

// WinningAttempt returns the 1-based attempt that won the game.
func (s *Session) WinningAttempt() (int, bool) {
	if s.state != Won {
		return 0, false
	}
	return len(s.attempts), true
}

// Answer reveals the secret once the game is over.
func (s *Session) Answer() (words.Word, bool) {
	if !s.state.Over() {
		return "", false
	}
	return s.secret, true
}
