package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/sstandre/tuidle/internal/game"
)

// Theme colors the board and keyboard.
// Colors are limited to the xterm 256 palette so any terminal can show them.
type Theme struct {
	Incorrect tcell.Color
	Maybe     tcell.Color
	Correct   tcell.Color
	Unknown   tcell.Color // no information yet
	Active    tcell.Color // row being typed
	Text      tcell.Color
	Message   tcell.Color
}

// DefaultTheme is green/yellow/gray on a dark background.
var DefaultTheme = Theme{
	Incorrect: tcell.ColorDimGray,
	Maybe:     tcell.ColorGoldenrod,
	Correct:   tcell.ColorForestGreen,
	Unknown:   tcell.ColorBlack,
	Active:    tcell.ColorDarkSlateGray,
	Text:      tcell.ColorWhite,
	Message:   tcell.ColorYellow,
}

// HintColor returns the background for a hint.
func (t Theme) HintColor(h game.Hint) tcell.Color {
	switch h {
	case game.Correct:
		return t.Correct
	case game.Maybe:
		return t.Maybe
	}
	return t.Incorrect
}

// KeyColor returns the background for a keyboard letter.
func (t Theme) KeyColor(h game.Hint, seen bool) tcell.Color {
	if !seen {
		return t.Unknown
	}
	return t.HintColor(h)
}
