package logger

import (
	"go.uber.org/zap"

	"github.com/poolwatch/dex-backend/internal/types/environments"
)

type Logger struct {
	wrappedLogger *zap.Logger
}

func New(env environments.Environment) *Logger {
	var cfg zap.Config

	switch env {
	case environments.Development:
		cfg = newDevelopmentLoggerConfig()
	case environments.Test:
		cfg = newTestLoggerConfig()
	case environments.Staging:
		cfg = newStagingLoggerConfig()
	case environments.Production:
		cfg = newProductionLoggerConfig()
	default:
		cfg = newProductionLoggerConfig()
	}

	zapLogger, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	return &Logger{
		wrappedLogger: zapLogger,
	}
}

func (l *Logger) Debug(msg string, inputFields ...map[string]string) {
	l.wrappedLogger.Debug(msg, mergeFields(inputFields)...)
}

func (l *Logger) Info(msg string, inputFields ...map[string]string) {
	l.wrappedLogger.Info(msg, mergeFields(inputFields)...)
}

func (l *Logger) Error(msg string, inputFields ...map[string]string) {
	l.wrappedLogger.Error(msg, mergeFields(inputFields)...)
}

func (l *Logger) Fatal(msg string, inputFields ...map[string]string) {
	l.wrappedLogger.Fatal(msg, mergeFields(inputFields)...)
}

// mergeFields flattens every supplied map into zap fields.
func mergeFields(inputFields []map[string]string) []zap.Field {
	fields := []zap.Field{}
	for _, strMap := range inputFields {
		for k, v := range strMap {
			fields = append(fields, zap.String(k, v))
		}
	}
	return fields
}
