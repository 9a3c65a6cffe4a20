// Package logging configures the process-wide zap logger.
package logging

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Setup builds the application logger: production JSON on stderr with the
// application identity and a per-run correlation ID attached to every entry.
// The returned AtomicLevel allows raising verbosity after flag parsing without
// rebuilding the logger.
func Setup(appName, appVersion string) (*zap.Logger, zap.AtomicLevel, error) {
	cfg := zap.NewProductionConfig()

	// Add default fields
	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
		"runID":      uuid.NewString(),
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, cfg.Level, err
	}

	zap.ReplaceGlobals(logger)
	return logger, cfg.Level, nil
}
