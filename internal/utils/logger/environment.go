package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newProductionLoggerConfig() zap.Config {
	return zap.Config{
		Level:            zap.NewAtomicLevelAt(zap.InfoLevel),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
}

func newStagingLoggerConfig() zap.Config {
	cfg := newProductionLoggerConfig()
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	return cfg
}

func newDevelopmentLoggerConfig() zap.Config {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	return zap.Config{
		Level:            zap.NewAtomicLevelAt(zap.DebugLevel),
		Development:      true,
		Encoding:         "console",
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
}

func newTestLoggerConfig() zap.Config {
	cfg := newDevelopmentLoggerConfig()
	cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	return cfg
}
