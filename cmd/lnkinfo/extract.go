package main

import (
	"fmt"

	"github.com/joshuapare/lnkkit/internal/logging"
	"github.com/joshuapare/lnkkit/internal/printer"
	"github.com/joshuapare/lnkkit/pkg/lnk"
	"github.com/joshuapare/lnkkit/pkg/types"
)

// linkError marks a failure to open or decode the link file. It has
// already been reported through the notifier when returned.
type linkError struct {
	path string
	err  error
}

func (e *linkError) Error() string { return fmt.Sprintf("%s: %v", e.path, e.err) }
func (e *linkError) Unwrap() error { return e.err }

// openLink opens path and reports failures through the notifier.
func openLink(path string) (*lnk.File, error) {
	f, err := lnk.Open(path, &lnk.OpenOptions{ZeroCopy: state.cfg.ZeroCopy})
	if err != nil {
		state.log.Error().Err(err).Str("path", path).Msg("Cannot read link file")
		title := fmt.Sprintf("Error reading link file “%s”", path)
		if nerr := state.notifier.Error(title, errorMessage(err)); nerr != nil {
			state.log.Warn().Err(nerr).Msg("Cannot show error")
		}
		return nil, &linkError{path: path, err: err}
	}
	return f, nil
}

// errorMessage maps a decode or load failure to the message shown to users.
func errorMessage(err error) string {
	kind, _ := types.KindOf(err)
	switch kind {
	case types.ErrKindIO:
		return "Link file doesn't exist or could not be opened!"
	case types.ErrKindHeaderMismatch:
		return "Wrong file header - not a proper .lnk file"
	default:
		return "Linkfile is broken"
	}
}

func selectedField() (lnk.Field, error) {
	if fieldType == "" {
		return state.cfg.Field(), nil
	}
	f, ok := lnk.ParseField(fieldType)
	if !ok {
		return 0, usageError{fmt.Errorf("unknown field %q", fieldType)}
	}
	return f, nil
}

func runExtract(path string) error {
	field, err := selectedField()
	if err != nil {
		return err
	}
	done := logging.LogOperationStart(state.log, "extract "+field.Code())
	defer done()

	f, err := openLink(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return state.printer(printer.DefaultMaxItemBytes).PrintField(f.Link, field)
}
