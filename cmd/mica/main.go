package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagNoColor bool
	flagNoCache bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "mica",
	Short:         "The mica language toolchain",
	SilenceErrors: true,
	SilenceUsage:  true,
	// No Run: prints help by default.
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")
	rootCmd.AddCommand(checkCmd)
}
