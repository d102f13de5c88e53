package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	dkerrors "github.com/domkit-dev/domkit/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "domkit",
		Short: "Build and preview HTML documents declaratively",
		Long: `domkit is a Go library for building HTML document nodes from
declarative parameters. The CLI wraps it with two utilities:

  • render  - parse a markup file and re-serialize it
  • preview - serve a live-reloading showcase page`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		renderCmd(),
		previewCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		var structured *dkerrors.Error
		if errors.As(err, &structured) {
			fmt.Fprint(os.Stderr, structured.Format())
		} else {
			fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		}
		os.Exit(1)
	}
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}
