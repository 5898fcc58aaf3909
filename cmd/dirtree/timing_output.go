package main

import (
	"fmt"
	"io"

	"dirtree/internal/observ"
)

func printTimings(out io.Writer, timer *observ.Timer) error {
	if out == nil || timer == nil {
		return nil
	}
	if _, err := timer.WriteTo(out); err != nil {
		return fmt.Errorf("failed to write timings: %w", err)
	}
	return nil
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
