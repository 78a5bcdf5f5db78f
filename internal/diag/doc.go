// Package diag provides structured diagnostics for the gqlcheck pipeline.
// Every stage (lexer, parser, validator, analysis) reports into a Bag via
// the Reporter contract; output formatting lives in reportfmt.
package diag
