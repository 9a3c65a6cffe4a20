// File: pkg/aggregate/collect.go
package aggregate

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"go.uber.org/zap"
)

// ErrNotUTF8 marks a selected file whose bytes are not valid UTF-8 text.
var ErrNotUTF8 = errors.New("file content is not valid UTF-8")

// Collect walks the tree under root and returns a FileRecord for every file
// the filter accepts, in directory-walk order (lexical per directory). Any
// traversal or read error aborts the walk and is returned. A selected file
// that fails UTF-8 validation aborts too, unless skipInvalid is set, in which
// case it is logged and left out.
//
// Symbolic links are never followed; non-regular entries are skipped.
func Collect(root string, filter *Filter, skipInvalid bool, logger *zap.Logger) ([]FileRecord, error) {
	logger.Debug("Starting file collection", zap.String("root", root))

	var records []FileRecord
	scanned := 0

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			// Every path below an excluded directory is itself excluded, so
			// the subtree can be skipped outright.
			if filter.Excluded(path) {
				logger.Debug("Skipping excluded directory", zap.String("path", path))
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			logger.Debug("Skipping non-regular entry", zap.String("path", path))
			return nil
		}

		scanned++
		if !filter.Matches(path) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read file %s: %w", path, err)
		}
		if !utf8.Valid(data) {
			if skipInvalid {
				logger.Warn("Skipping file with invalid encoding", zap.String("path", path))
				return nil
			}
			return fmt.Errorf("%s: %w", path, ErrNotUTF8)
		}

		records = append(records, FileRecord{Path: path, Content: string(data)})
		logger.Info("Extracted file", zap.String("path", path), zap.Int("sizeBytes", len(data)))
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Collection complete", zap.Int("scanned", scanned), zap.Int("included", len(records)))
	return records, nil
}
