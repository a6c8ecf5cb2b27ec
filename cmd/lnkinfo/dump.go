package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/lnkkit/internal/logging"
)

var dumpItemBytes int

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file.lnk>",
		Short: "Print every decoded field of a link file",
		Long: `The dump command prints everything lnkinfo decodes from a link file:
header flags, icon index, target ID list items, link info and string data.

Example:
  lnkinfo dump app.lnk
  lnkinfo dump app.lnk --json
  lnkinfo dump app.lnk --item-bytes 0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args[0])
		},
	}
	cmd.Flags().IntVar(&dumpItemBytes, "item-bytes", 16, "Bytes of each item ID to show (0 = all)")
	return cmd
}

func runDump(path string) error {
	done := logging.LogOperationStart(state.log, "dump")
	defer done()

	f, err := openLink(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return state.printer(dumpItemBytes).PrintDump(path, f.Link)
}
