// version.go prints build metadata injected via -ldflags.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/oslab/internal/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print oslab version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Get().String())
		},
	}
}
