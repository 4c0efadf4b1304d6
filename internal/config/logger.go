package config

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Logger builds a production zap logger writing to the configured file.
// The terminal belongs to the game screen, so nothing is logged to stdout.
func (c LogConfig) Logger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.Level)
	if err != nil {
		return nil, errors.WithMessagef(err, "parse log level '%s'", c.Level)
	}
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = level
	zapCfg.OutputPaths = []string{c.File}
	zapCfg.ErrorOutputPaths = []string{c.File}
	logger, err := zapCfg.Build()
	if err != nil {
		return nil, errors.WithMessage(err, "build zap logger")
	}
	return logger, nil
}
