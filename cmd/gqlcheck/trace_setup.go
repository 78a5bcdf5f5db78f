package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gqlcheck/internal/trace"
)

// setupTracing builds a tracer from the trace flags. The cleanup function
// flushes and closes the tracer (dumping ring contents to stderr).
func setupTracing(cmd *cobra.Command) (trace.Tracer, func(), error) {
	root := cmd.Root()

	output, err := root.PersistentFlags().GetString("trace")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := root.PersistentFlags().GetString("trace-level")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	modeStr, err := root.PersistentFlags().GetString("trace-mode")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get trace-mode flag: %w", err)
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid trace level: %w", err)
	}
	if level == trace.LevelOff {
		return trace.Nop, func() {}, nil
	}

	mode, err := trace.ParseMode(modeStr)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid trace mode: %w", err)
	}

	tracer, err := trace.New(trace.Config{
		Level:      level,
		Mode:       mode,
		OutputPath: output,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create tracer: %w", err)
	}

	cleanup := func() {
		if ring, ok := tracer.(*trace.RingTracer); ok {
			_ = ring.Dump(os.Stderr, trace.FormatText)
		}
		_ = tracer.Close()
	}
	return tracer, cleanup, nil
}
