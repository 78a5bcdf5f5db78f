// Package analyzers provides the built-in analysis passes: structural
// depth and complexity metrics with optional limits, alias counting, and
// batch-wide field usage accumulation.
package analyzers
