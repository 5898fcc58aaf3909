package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"dirtree/internal/version"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dirtree [path]",
		Short: "Print a directory tree with colored, indented entries",
		Long: `dirtree walks a directory depth first and prints every subdirectory
and regular file below it, one per line. Children are indented under their
parent, directories carry a [DIR] marker and files and directories get
different colors. Other entries (devices, sockets, broken links) are skipped.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		Version:       version.Version,
		RunE:          runList,
	}

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "on", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("config", "", "path to dirtree.toml (default: nearest one above the working directory)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress summary and timings")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information on stderr")
	rootCmd.PersistentFlags().String("trace", "", "trace output file (- for stderr)")
	rootCmd.PersistentFlags().String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	rootCmd.PersistentFlags().String("trace-format", "auto", "trace format (auto|text|ndjson)")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write a heap profile to file on exit")

	rootCmd.Flags().String("sort", "", "entry order (name|none|locale), overrides [layout].sort")
	rootCmd.Flags().String("indent", "", "indent unit, overrides [layout].indent")
	rootCmd.Flags().String("marker", "", "directory marker, overrides [layout].dir_marker")
	rootCmd.Flags().Bool("summary", false, "print a directories/files count after the listing")

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// main runs the root command; any error exits with status 1.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
