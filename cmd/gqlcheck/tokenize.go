package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gqlcheck/internal/driver"
	"gqlcheck/internal/reportfmt"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.graphql",
	Short: "Tokenize a GraphQL query document",
	Long:  `Tokenize breaks a query document into its constituent tokens, showing spans and leading trivia`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, err := driver.Tokenize(filePath, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		for _, d := range result.Bag.Items() {
			start, _ := result.FileSet.Resolve(d.Primary)
			fmt.Fprintf(os.Stderr, "%s:%d:%d: %s %s: %s\n",
				result.File.Path, start.Line, start.Col, d.Severity, d.Code, d.Message)
		}
	}

	switch format {
	case "pretty":
		return reportfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet)
	case "json":
		return reportfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
