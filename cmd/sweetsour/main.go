package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sweetsour",
		Short: "A streaming CSS-in-JS to ISTF parser",
	}

	rootCmd.AddCommand(newParseCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
