// Package aggregate implements the promptpack core: walking a directory
// tree, selecting source-like files, and concatenating their contents into a
// single fenced-block document suitable for use as LLM prompt context.
package aggregate

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Run executes one aggregation pass: collect, render, write, in that order.
// The output file is not opened until collection and rendering have
// succeeded, so a failed run never leaves a partial document behind.
func Run(args Arguments, logger *zap.Logger) error {
	start := time.Now()
	logger.Info("Starting aggregation",
		zap.String("root", args.Root),
		zap.String("output", args.Output))

	info, err := os.Stat(args.Root)
	if err != nil {
		return fmt.Errorf("stat root folder: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("root %s is not a directory", args.Root)
	}

	filter := NewFilter(args.Extensions, args.Excludes)
	records, err := Collect(args.Root, filter, args.SkipInvalid, logger)
	if err != nil {
		return fmt.Errorf("collect files: %w", err)
	}

	doc := Render(records)

	if err := WriteDocument(args.Output, doc, logger); err != nil {
		return fmt.Errorf("write document: %w", err)
	}

	logger.Info("Prompt file created",
		zap.String("output", args.Output),
		zap.Int("files", len(records)),
		zap.Int("bytes", len(doc)),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

// WriteDocument overwrites path with doc, creating the file if absent and
// truncating it otherwise. The handle is released on every exit path; a
// failure to close is folded into the returned error.
func WriteDocument(path, doc string, logger *zap.Logger) (err error) {
	logger.Debug("Writing aggregated document", zap.String("path", path))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	w := bufio.NewWriter(f)
	if _, err := w.WriteString(doc); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush output file: %w", err)
	}
	return nil
}
