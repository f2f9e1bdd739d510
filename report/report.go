// Package report prints errors for the user
package report

import (
	"io"
	"os"

	"github.com/pterm/pterm"
)

// Error prints err with the error prefix.
func Error(w io.Writer, err error) {
	pterm.Error.WithWriter(w).Println(err)
}

// Quit prints err and exits with a non-zero status.
func Quit(err error) {
	Error(os.Stderr, err)
	os.Exit(1)
}
