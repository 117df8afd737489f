// Package console plays the game over plain line-oriented I/O.
//
// Each turn reads one line. A word is submitted as a guess; ":new" starts a
// new game and ":quit" (or EOF) ends the loop. Hints are printed as colored
// tiles, with marks underneath ('+' correct, '?' maybe, '.' incorrect) so the
// output still reads without color.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"

	"github.com/sstandre/tuidle/internal/game"
	"github.com/sstandre/tuidle/internal/words"
)

var (
	correctTile   = color.New(color.BgGreen, color.FgBlack, color.Bold)
	maybeTile     = color.New(color.BgYellow, color.FgBlack, color.Bold)
	incorrectTile = color.New(color.BgHiBlack, color.FgWhite)
)

var keyboardRows = []string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}

// Run drives sess from in until the player quits, in reaches EOF, or ctx is done.
// Lines are read on a separate goroutine so cancellation is seen while
// waiting for input.
func Run(ctx context.Context, in io.Reader, out io.Writer, sess *game.Session, src game.Source) error {
	fmt.Fprintf(out, "Guess the %d-letter word in %d tries. Commands: :new, :quit\n", sess.WordLength(), sess.MaxAttempts())
	prompt(out, sess)

	readCtx, stopReading := context.WithCancel(ctx)
	defer stopReading()
	lines, readErr := readLines(readCtx, in)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if err := ctx.Err(); err != nil {
				return err
			}
			if !ok {
				return <-readErr
			}
			quit, err := turn(out, sess, src, strings.TrimSpace(line))
			if quit || err != nil {
				return err
			}
			prompt(out, sess)
		}
	}
}

// readLines scans in until EOF or ctx is done. The error channel receives
// the scanner's result before lines is closed, unless ctx ended the read.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- sc.Err()
	}()
	return lines, errc
}

// turn handles one input line and reports whether the player quit.
func turn(out io.Writer, sess *game.Session, src game.Source, line string) (bool, error) {
	switch line {
	case "":
		return false, nil
	case ":quit", ":q":
		return true, nil
	case ":new":
		if err := sess.Reset(src); err != nil {
			return false, fmt.Errorf("new game: %w", err)
		}
		fmt.Fprintln(out, "New game.")
		return false, nil
	}

	guess := words.Normalize(line)
	res, err := sess.SubmitGuess(guess)
	switch {
	case errors.Is(err, game.ErrGameAlreadyOver):
		fmt.Fprintln(out, "The game is over. Type :new to play again or :quit.")
	case errors.Is(err, game.ErrWrongLength):
		fmt.Fprintf(out, "Guesses must be %d letters.\n", sess.WordLength())
	case errors.Is(err, game.ErrNotInWordList):
		fmt.Fprintf(out, "%s is not in the word list.\n", guess)
	case err != nil:
		return false, err
	default:
		log.Debug().Str("guess", guess.String()).Int("attempt", res.Attempt).Msg("guess")
		fmt.Fprintln(out, Tiles(guess, res.Hints))
		fmt.Fprintln(out, Marks(res.Hints))
		fmt.Fprint(out, Keyboard(sess.Keyboard()))
		switch res.State {
		case game.Won:
			fmt.Fprintf(out, "Solved in %d/%d!\n", res.Attempt, sess.MaxAttempts())
		case game.Lost:
			ans, _ := sess.Answer()
			fmt.Fprintf(out, "Out of tries. The word was %s.\n", ans)
		}
	}
	return false, nil
}

func prompt(out io.Writer, sess *game.Session) {
	if sess.State().Over() {
		fmt.Fprint(out, "> ")
		return
	}
	fmt.Fprintf(out, "[%d/%d] > ", sess.CurrentAttemptIndex()+1, sess.MaxAttempts())
}

func tile(h game.Hint) *color.Color {
	switch h {
	case game.Correct:
		return correctTile
	case game.Maybe:
		return maybeTile
	}
	return incorrectTile
}

// Tiles renders a guess as colored letter boxes.
func Tiles(guess words.Word, hints game.GuessResult) string {
	var b strings.Builder
	for i, l := range guess.Letters() {
		if i > 0 {
			b.WriteByte(' ')
		}
		h := game.Incorrect
		if i < len(hints) {
			h = hints[i]
		}
		b.WriteString(tile(h).Sprint(" " + l.String() + " "))
	}
	return b.String()
}

// Marks renders hints as '+', '?' and '.' aligned under Tiles.
func Marks(hints game.GuessResult) string {
	var b strings.Builder
	for i, h := range hints {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch h {
		case game.Correct:
			b.WriteString(" + ")
		case game.Maybe:
			b.WriteString(" ? ")
		default:
			b.WriteString(" . ")
		}
	}
	return b.String()
}

// Keyboard renders the QWERTY rows, coloring letters with a known hint.
func Keyboard(kb map[words.Letter]game.Hint) string {
	var b strings.Builder
	for i, row := range keyboardRows {
		b.WriteString(strings.Repeat(" ", i))
		for _, r := range row {
			l := words.Letter(r)
			if h, ok := kb[l]; ok {
				b.WriteString(tile(h).Sprint(l.String()))
			} else {
				b.WriteString(l.String())
			}
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String()
}
