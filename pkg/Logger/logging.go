package Logger

import (
	"go.uber.org/zap"
)

// Logger wraps a sugared zap logger so call sites stay free of zap imports.
type Logger struct {
	*zap.SugaredLogger
}

func New(debug bool) *Logger {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.TimeKey = "time"
		cfg.EncoderConfig.LevelKey = "level"
		cfg.EncoderConfig.MessageKey = "msg"
		cfg.EncoderConfig.CallerKey = "caller"
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.LevelKey = "level"
		cfg.EncoderConfig.MessageKey = "msg"
		cfg.EncoderConfig.CallerKey = "caller"
		cfg.Encoding = "json"
	}

	logger, _ := cfg.Build(zap.AddCaller())
	return &Logger{logger.Sugar()}
}

// NewNop returns a logger that discards everything. Handy in tests where a
// service requires a logger but output is noise.
func NewNop() *Logger {
	return &Logger{zap.NewNop().Sugar()}
}
