// Package logging provides the shared structured logger. The logger defaults
// to a no-op so library consumers get silence unless the CLI (or a test)
// initializes it.
package logging

import (
	"go.uber.org/zap"
)

var logger = zap.NewNop().Sugar()

// Init builds the real logger. Debug mode enables the development config
// with debug-level output; otherwise only warnings and errors are emitted.
func Init(debug bool) error {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	cfg.Encoding = "console"

	built, err := cfg.Build()
	if err != nil {
		return err
	}
	logger = built.Sugar()
	return nil
}

// L returns the shared sugared logger
func L() *zap.SugaredLogger {
	return logger
}

// SetLogger replaces the shared logger (used by tests)
func SetLogger(l *zap.SugaredLogger) {
	if l != nil {
		logger = l
	}
}
