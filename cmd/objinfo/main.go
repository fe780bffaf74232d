// Command objinfo inspects Wavefront OBJ files the way the viewer imports them.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "objinfo",
		Short: "Inspect Wavefront OBJ files",
		Long: `objinfo parses OBJ files with the viewer's importer and reports what it sees:
record counts, skipped or malformed lines, and the flattened triangle list.`,
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newStatsCmd(), newDumpCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
