package cmd

import (
	"fmt"

	"github.com/sarchlab/ramsim/ram/engine"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the engine name and version.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s v%s\n",
				engine.EngineName, engine.EngineVersion)
		},
	}
}
