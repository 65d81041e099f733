// Package logger builds the zap loggers used by the CLI and server.
package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// New returns a production logger, or a human-readable development
// logger when debug is set.
func New(debug bool) (*zap.Logger, error) {
	var (
		log *zap.Logger
		err error
	)
	if debug {
		log, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.DisableStacktrace = true
		log, err = cfg.Build()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return log, nil
}
