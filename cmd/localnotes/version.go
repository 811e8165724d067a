package main

import (
	"fmt"

	"github.com/awsl-project/localnotes/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(current.out, "localnotes", version.Full())
		},
	}
}
