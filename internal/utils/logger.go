package utils

import (
	"go.uber.org/zap"
)

var logger *zap.SugaredLogger

// InitLogger builds the process-wide sugared logger. dev switches to the
// human-readable development encoder.
func InitLogger(dev bool) error {
	var z *zap.Logger
	var err error
	if dev {
		z, err = zap.NewDevelopment()
	} else {
		z, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	logger = z.Sugar()
	return nil
}

// Log returns the global logger, lazily falling back to the production
// config so packages can log before main finishes wiring.
func Log() *zap.SugaredLogger {
	if logger == nil {
		z, _ := zap.NewProduction()
		logger = z.Sugar()
	}
	return logger
}
