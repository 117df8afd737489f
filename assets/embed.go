// assets/embed.go
//
// Embedded default word lists, used when no list files are configured.
//   - answers.txt: candidate secrets.
//   - allowed.txt: extra accepted guesses (answers are always accepted too).

package assets

import (
	"embed"
	"io"
)

//go:embed allowed.txt answers.txt
var FS embed.FS

// Answers opens the embedded answer list.
func Answers() (io.ReadCloser, error) {
	return FS.Open("answers.txt")
}

// Allowed opens the embedded allowed-guess list.
func Allowed() (io.ReadCloser, error) {
	return FS.Open("allowed.txt")
}
