//go:build windows

package text

import "golang.org/x/sys/windows"

// SystemCodePage returns the active ANSI code page.
func SystemCodePage() uint32 { return windows.GetACP() }

// ConsoleCodePage returns the output code page of the attached console, or
// zero when there is none.
func ConsoleCodePage() uint32 {
	cp, err := windows.GetConsoleOutputCP()
	if err != nil {
		return 0
	}
	return cp
}
