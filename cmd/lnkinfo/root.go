package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/joshuapare/lnkkit/internal/config"
	"github.com/joshuapare/lnkkit/internal/logging"
	"github.com/joshuapare/lnkkit/internal/notify"
	"github.com/joshuapare/lnkkit/internal/printer"
	"github.com/joshuapare/lnkkit/internal/text"
	"github.com/joshuapare/lnkkit/pkg/lnk"
)

// Exit codes.
const (
	exitOK        = 0
	exitUsage     = 1
	exitLinkError = 2
)

var (
	// Global flags
	useConsole bool
	fieldType  string
	jsonOut    bool
	verbose    int
	quiet      bool
	noColor    bool
	codePage   string
	configPath string
)

// app is the state shared by every command once flags and config are
// resolved.
type app struct {
	cfg      *config.Config
	out      io.Writer
	errOut   io.Writer
	color    bool
	decoder  *text.Decoder
	notifier notify.Notifier
	log      zerolog.Logger
}

var state *app

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lnkinfo [/C] [/FLAG] file.lnk",
		Short: "Print information stored in Windows shortcut (.lnk) files",
		Long: `lnkinfo decodes a Windows shell link file and prints one field of it:
the target path by default, or the field selected with /FLAG or --type.`,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errShowHelp
			}
			return runExtract(args[0])
		},
	}

	pf := cmd.PersistentFlags()
	pf.BoolVarP(&useConsole, "console", "c", false, "Report errors on the console instead of a message box")
	pf.BoolVar(&jsonOut, "json", false, "Output in JSON format")
	pf.CountVarP(&verbose, "verbose", "v", "Increase log verbosity (repeatable)")
	pf.BoolVarP(&quiet, "quiet", "q", false, "Log errors only")
	pf.BoolVar(&noColor, "no-color", false, "Disable colored output")
	pf.StringVar(&codePage, "codepage", "", `Code page of narrow strings ("auto", "1252", "shift_jis", ...)`)
	pf.StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/lnkinfo/config.toml)")
	cmd.Flags().StringVarP(&fieldType, "type", "t", "", "Field to print (F, P, PF, PR, VL, VT, W, CL, I, N)")

	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		printHelp(c)
	})
	cmd.AddCommand(newDumpCmd(), newVersionCmd())
	return cmd
}

// setup loads the config, applies flag overrides and builds the shared state.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return usageError{err}
	}
	flags := cmd.Flags()
	if flags.Changed("console") {
		cfg.Console = useConsole
	}
	if flags.Changed("codepage") {
		cfg.CodePage = codePage
	}
	if noColor {
		cfg.Color = config.ColorNever
	}

	dec, err := text.New(cfg.CodePage)
	if err != nil {
		return usageError{err}
	}

	out := stdout()
	color := colorEnabled(cfg.Color, os.Stdout)
	logger := logging.Setup(logging.Options{
		Out:       os.Stderr,
		Verbosity: verbose,
		Quiet:     quiet,
		Level:     cfg.LogLevel,
		NoColor:   !colorEnabled(cfg.Color, os.Stderr),
	})
	lnk.SetLogger(logger)

	state = &app{
		cfg:      cfg,
		out:      out,
		errOut:   os.Stderr,
		color:    color,
		decoder:  dec,
		notifier: notify.New(cfg.Console, os.Stderr),
		log:      logging.Logger("cli"),
	}
	state.log.Debug().
		Str("command", cmd.Name()).
		Str("codepage", dec.Name()).
		Bool("console", cfg.Console).
		Msg("Configuration resolved")
	return nil
}

// stdout returns the writer for command output: ANSI-capable on Windows
// consoles and re-encoded to the console code page where that is not UTF-8.
func stdout() io.Writer {
	return text.ConsoleWriter(colorable.NewColorable(os.Stdout), text.ConsoleCodePage())
}

// printer builds the output printer. itemBytes limits item ID previews in
// dumps.
func (a *app) printer(itemBytes int) *printer.Printer {
	opts := printer.DefaultOptions()
	opts.MaxItemBytes = itemBytes
	if jsonOut {
		opts.Format = printer.FormatJSON
	}
	opts.Decoder = a.decoder
	return printer.New(a.out, opts)
}

// execute runs the CLI and returns the process exit code.
func execute(args []string) int {
	args, err := normalizeArgs(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		printHelp(rootCmd)
		return exitUsage
	}
	helpShown = false
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()

	var le *linkError
	var ue usageError
	switch {
	case err == nil && helpShown:
		return exitUsage
	case err == nil:
		return exitOK
	case errors.As(err, &le):
		return exitLinkError
	case errors.Is(err, errShowHelp):
		printHelp(rootCmd)
		return exitUsage
	case errors.As(err, &ue):
		fmt.Fprintln(os.Stderr, ue.err)
		return exitUsage
	default:
		fmt.Fprintln(os.Stderr, err)
		printHelp(rootCmd)
		return exitUsage
	}
}

var errShowHelp = errors.New("help requested")

// usageError is a problem with the command line or configuration.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }
