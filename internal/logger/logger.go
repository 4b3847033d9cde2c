// Package logger builds the zap logger shared by the CLI and generator.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Standard field names for structured logging.
const (
	FieldUnit     = "unit"
	FieldFile     = "file"
	FieldFields   = "fields"
	FieldMethods  = "methods"
	FieldMembers  = "members"
	FieldCount    = "count"
	FieldProblems = "problems"
)

// Nop returns a logger that discards everything. Packages default to it so
// that logging is optional for library callers.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// New creates a logger. JSON output uses the production encoder; otherwise a
// console encoder writes to stderr so that generated source on stdout stays
// clean. verbose lowers the level to debug.
func New(verbose, jsonOutput bool) (*zap.SugaredLogger, error) {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}

	if jsonOutput {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(level)
		config.OutputPaths = []string{"stderr"}
		config.ErrorOutputPaths = []string{"stderr"}
		zapLogger, err := config.Build()
		if err != nil {
			return nil, err
		}
		return zapLogger.Sugar(), nil
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	encoderConfig.CallerKey = ""
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	zapLogger := zap.New(
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.AddSync(os.Stderr),
			level,
		),
	)
	return zapLogger.Sugar(), nil
}
