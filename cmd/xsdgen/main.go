package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "xsdgen",
		Short: "Generate sample XML documents from XSD schemas",
		Long: `xsdgen synthesizes sample XML documents that conform to an XSD schema,
honoring structural constraints (sequences, choices, occurrence bounds) and
value facets (patterns, lengths, enumerations, numeric ranges).`,
	}

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(inspectCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
