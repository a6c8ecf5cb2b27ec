// Package notify delivers error reports to the user, either as console text
// or as a modal dialog where the platform has one.
package notify

import (
	"fmt"
	"io"
)

// Notifier shows an error with a title line and a message.
type Notifier interface {
	Error(title, msg string) error
}

// Console writes reports as two lines of text.
type Console struct {
	W io.Writer
}

// Error prints title and msg on separate lines.
func (c Console) Error(title, msg string) error {
	_, err := fmt.Fprintf(c.W, "%s\n%s\n", title, msg)
	return err
}

// New returns a console notifier writing to w when console is true, and a
// dialog notifier otherwise. On platforms without dialogs the dialog
// notifier also writes to w.
func New(console bool, w io.Writer) Notifier {
	if console {
		return Console{W: w}
	}
	return newDialog(w)
}
