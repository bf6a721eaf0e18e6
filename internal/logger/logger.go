// =============================================================================
// Sales Analytics - Logger Construction
// =============================================================================
//
// Small wrapper around zap so that every command builds its logger the same
// way. The CLI is a batch tool, so logs go to stderr and the report/step
// output keeps stdout to itself.
//
// =============================================================================

package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the application logger.
//
// PARAMETERS:
//   - level:   one of "debug", "info", "warn", "error"
//   - verbose: forces debug level with the human-readable console encoder
//
// RETURNS:
//   - A configured *zap.Logger writing to stderr.
//   - An error if the level string is not recognized.
func New(level string, verbose bool) (*zap.Logger, error) {
	if verbose {
		cfg := zap.NewDevelopmentConfig()
		cfg.OutputPaths = []string{"stderr"}
		return cfg.Build()
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info", "":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("unknown log level %q", level)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
