package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/blinklabs-io/gouplc/internal/config"
)

var globalLogger *zap.SugaredLogger

func Configure() {
	cfg := config.GetConfig()

	var level zapcore.Level
	switch cfg.Logging.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.EncoderConfig.TimeKey = "timestamp"
	zapCfg.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder

	logger, err := zapCfg.Build()
	if err != nil {
		// Config-time failure (a bad encoder/level combination); there is
		// no logger yet to report it through, so fall back to zap's own
		// safe default rather than leaving globalLogger nil.
		logger = zap.NewExample()
	}
	globalLogger = logger.Sugar().With("component", "main")
}

func GetLogger() *zap.SugaredLogger {
	if globalLogger == nil {
		Configure()
	}
	return globalLogger
}
