package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(state.out, "lnkinfo %s\n", version)
			fmt.Fprintf(state.out, "  commit: %s\n", commit)
			fmt.Fprintf(state.out, "  built: %s\n", date)
		},
	}
}
