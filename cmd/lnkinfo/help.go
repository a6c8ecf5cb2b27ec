package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/joshuapare/lnkkit/internal/config"
	"github.com/joshuapare/lnkkit/pkg/lnk"
)

// Help text markers: \x01 starts a highlighted run, \x02 ends it.
const (
	markOn  = '\x01'
	markOff = '\x02'
)

var description = []string{
	"Please call the program with the following arguments:",
	"  \x01%s\x02 [\x01/C\x02] [\x01infoType\x02] \x01lnkFilename\x02",
	"where “\x01lnkFilename\x02” is an absolute or relative link file name (*.lnk),",
	"optionally “\x01/C\x02” to display error messages in the console instead of msg box",
	"and “\x01infoType\x02” is an optional flag that specifies what to return. Options are",
}

var helpShown bool

// printHelp writes the legacy description for the root command, followed
// by cobra's usage block.
func printHelp(cmd *cobra.Command) {
	helpShown = true
	w := io.Writer(os.Stdout)
	color := false
	if state != nil {
		w, color = state.out, state.color
	} else if !noColor {
		color = colorEnabled(config.ColorAuto, os.Stdout)
	}

	if cmd == cmd.Root() {
		fmt.Fprint(w, renderHighlights(legacyHelp(cmd.Name()), w, color))
		fmt.Fprintln(w)
	} else if cmd.Long != "" {
		fmt.Fprintln(w, cmd.Long)
		fmt.Fprintln(w)
	}
	fmt.Fprint(w, cmd.UsageString())
}

// legacyHelp returns the marked-up description and switch table.
func legacyHelp(prog string) string {
	var b strings.Builder
	for i, line := range description {
		if i == 1 {
			line = fmt.Sprintf(line, prog)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	for _, f := range lnk.Fields() {
		sw := fmt.Sprintf("  \x01/%s\x02", f.Code())
		// The column width counts the markers.
		b.WriteString(fmt.Sprintf("%-9s%s\n", sw, f.Description()))
	}
	return b.String()
}

// renderHighlights replaces marked runs with red text when color is true
// and strips the markers otherwise.
func renderHighlights(s string, w io.Writer, color bool) string {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	style := r.NewStyle().Foreground(lipgloss.Color("9"))

	var b strings.Builder
	for {
		on := strings.IndexByte(s, markOn)
		if on < 0 {
			b.WriteString(strings.ReplaceAll(s, string(markOff), ""))
			return b.String()
		}
		b.WriteString(s[:on])
		s = s[on+1:]
		off := strings.IndexByte(s, markOff)
		if off < 0 {
			off = len(s)
		}
		b.WriteString(style.Render(s[:off]))
		if off < len(s) {
			off++
		}
		s = s[off:]
	}
}

// colorEnabled resolves a color mode for f. In auto mode color needs a
// terminal, a color-capable profile and no NO_COLOR.
func colorEnabled(mode string, f *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	return termenv.EnvColorProfile() != termenv.Ascii
}
