// internal/tui/tui.go
//
// Terminal host.
// Layout:
//   - board:    maxAttempts rows × wordLength letter boxes, active row tinted.
//   - keyboard: QWERTY rows, each indented one key further, colored by the
//     best hint seen per letter.
//   - message:  transient feedback (not in word list, win/lose banner).
//
// Keys: letters type, Backspace deletes, Enter submits a full row,
// Ctrl-N starts a new game, Esc or Ctrl-C quits.
//
// The session is only touched from tview's event goroutine.

package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"

	"github.com/sstandre/tuidle/internal/game"
	"github.com/sstandre/tuidle/internal/words"
)

// KeyboardRows is the QWERTY layout shown under the board.
var KeyboardRows = []string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}

// App is the terminal UI for one session.
type App struct {
	app   *tview.Application
	board *tview.Table
	keys  *tview.Table
	msg   *tview.TextView
	root  *tview.Flex

	sess  *game.Session
	src   game.Source
	entry *Entry
	theme Theme
}

// New builds the widgets for sess. src is used for new games.
func New(sess *game.Session, src game.Source) *App {
	a := &App{
		app:   tview.NewApplication(),
		board: tview.NewTable().SetBorders(true),
		keys:  tview.NewTable().SetBorders(false),
		msg:   tview.NewTextView().SetTextAlign(tview.AlignCenter),
		sess:  sess,
		src:   src,
		entry: NewEntry(sess.WordLength()),
		theme: DefaultTheme,
	}
	a.msg.SetTextColor(a.theme.Message)

	boardHeight := 2*sess.MaxAttempts() + 1
	a.root = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(tview.NewTextView().SetText("tuidle").SetTextAlign(tview.AlignCenter), 1, 0, false).
		AddItem(centered(a.board, 4*sess.WordLength()+1), boardHeight, 0, false).
		AddItem(a.msg, 1, 0, false).
		AddItem(centered(a.keys, 3*keyboardWidth()), len(KeyboardRows), 0, false)

	a.app.SetInputCapture(a.handleKey)
	a.render()
	return a
}

// centered places p in the middle of a row, width cells wide.
func centered(p tview.Primitive, width int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(p, width, 0, true).
		AddItem(nil, 0, 1, false)
}

// keyboardWidth is the widest row in keys, counting its indent.
func keyboardWidth() int {
	w := 0
	for i, row := range KeyboardRows {
		w = max(w, len(row)+i)
	}
	return w
}

// Run blocks until the player quits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, a.app.Stop)
	defer stop()
	return a.app.SetRoot(a.root, true).Run()
}

// handleKey routes a key press; returning nil swallows the event.
func (a *App) handleKey(ev *tcell.EventKey) *tcell.EventKey {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		a.app.Stop()
		return nil
	case tcell.KeyCtrlN:
		a.newGame()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if !a.sess.State().Over() && a.entry.Delete() {
			a.setMessage("")
		}
	case tcell.KeyEnter:
		a.submit()
	case tcell.KeyRune:
		if !a.sess.State().Over() && a.entry.Type(ev.Rune()) {
			a.setMessage("")
		}
	default:
		return ev
	}
	a.render()
	return nil
}

func (a *App) submit() {
	if a.sess.State().Over() || !a.entry.Full() {
		return
	}
	guess := a.entry.Word()
	res, err := a.sess.SubmitGuess(guess)
	switch {
	case errors.Is(err, game.ErrNotInWordList):
		a.setMessage(fmt.Sprintf("%s is not in the word list", guess))
		return
	case err != nil:
		a.setMessage(err.Error())
		log.Warn().Err(err).Str("guess", guess.String()).Msg("guess refused")
		return
	}
	a.entry.Clear()
	log.Debug().Str("guess", guess.String()).Int("attempt", res.Attempt).Str("state", res.State.String()).Msg("guess")

	switch res.State {
	case game.Won:
		a.setMessage(fmt.Sprintf("Solved in %d/%d! Ctrl-N for a new game, Esc to quit.", res.Attempt, a.sess.MaxAttempts()))
	case game.Lost:
		ans, _ := a.sess.Answer()
		a.setMessage(fmt.Sprintf("The word was %s. Ctrl-N for a new game, Esc to quit.", ans))
	}
}

func (a *App) newGame() {
	if err := a.sess.Reset(a.src); err != nil {
		log.Error().Err(err).Msg("reset")
		a.setMessage(err.Error())
		return
	}
	a.entry.Clear()
	a.setMessage("New game")
}

func (a *App) setMessage(s string) { a.msg.SetText(s) }

// render redraws the board and keyboard from the session and entry.
func (a *App) render() {
	attempts := a.sess.Attempts()
	active := a.sess.CurrentAttemptIndex()
	for row := 0; row < a.sess.MaxAttempts(); row++ {
		for col := 0; col < a.sess.WordLength(); col++ {
			text, bg := " ", a.theme.Unknown
			switch {
			case row < len(attempts):
				text = attempts[row].Guess.Letters()[col].String()
				bg = a.theme.HintColor(attempts[row].Result[col])
			case row == active && !a.sess.State().Over():
				if l := a.entry.At(col); l != 0 {
					text = l.String()
				}
				bg = a.theme.Active
			}
			a.board.SetCell(row, col, tview.NewTableCell(" "+text+" ").
				SetAlign(tview.AlignCenter).
				SetTextColor(a.theme.Text).
				SetBackgroundColor(bg).
				SetSelectable(false))
		}
	}

	kb := a.sess.Keyboard()
	for row, keys := range KeyboardRows {
		for col := 0; col < row; col++ {
			a.keys.SetCell(row, col, tview.NewTableCell("   ").SetSelectable(false))
		}
		for col, r := range keys {
			h, seen := kb[words.Letter(r)]
			a.keys.SetCell(row, col+row, tview.NewTableCell(" "+string(r)+" ").
				SetTextColor(a.theme.Text).
				SetBackgroundColor(a.theme.KeyColor(h, seen)).
				SetSelectable(false))
		}
	}
}
