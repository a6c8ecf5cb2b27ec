//go:build !windows

package text

// SystemCodePage returns DefaultCodePage; only Windows has an ANSI code page.
func SystemCodePage() uint32 { return DefaultCodePage }

// ConsoleCodePage returns zero: consoles outside Windows are UTF-8.
func ConsoleCodePage() uint32 { return 0 }
