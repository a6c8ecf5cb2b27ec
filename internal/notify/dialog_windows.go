//go:build windows

package notify

import (
	"io"

	"golang.org/x/sys/windows"
)

type dialog struct{}

func newDialog(io.Writer) Notifier { return dialog{} }

// Error shows a warning message box and waits for it to be dismissed.
func (dialog) Error(title, msg string) error {
	t, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return err
	}
	m, err := windows.UTF16PtrFromString(msg)
	if err != nil {
		return err
	}
	_, err = windows.MessageBox(0, m, t, windows.MB_OK|windows.MB_ICONWARNING)
	return err
}
