// Package logging builds the application's zap logger.
//
// The terminal belongs to the TUI, so logs only ever go to a file, and only
// when debug logging is enabled.
package logging

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	appName     = "carousel"
	logFileName = "carousel.log"
)

// Options selects whether and where to log.
type Options struct {
	Debug bool
	File  string // empty for $XDG_STATE_HOME/carousel/carousel.log
}

// New returns a file logger when debug is enabled, otherwise a no-op logger.
func New(opts Options) (*zap.Logger, error) {
	if !opts.Debug {
		return zap.NewNop(), nil
	}

	path := opts.File
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.OutputPaths = []string{path}
	config.ErrorOutputPaths = []string{path}
	config.Sampling = nil

	return config.Build()
}

// DefaultPath returns the default log file location.
func DefaultPath() (string, error) {
	return xdg.StateFile(filepath.Join(appName, logFileName))
}
