package logger

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/poolwatch/dex-backend/internal/types/environments"
)

var _ = Describe("Logger", func() {
	var logger *Logger

	Describe("#New", func() {
		It("should create a new logger with production config when environment is production", func() {
			logger = New(environments.Production)
			Expect(logger).NotTo(BeNil())
			Expect(logger.wrappedLogger).NotTo(BeNil())
		})

		It("should create a new logger with development config when environment is development", func() {
			logger = New(environments.Development)
			Expect(logger).NotTo(BeNil())
			Expect(logger.wrappedLogger).NotTo(BeNil())
		})

		It("should create a new logger with staging config when environment is staging", func() {
			logger = New(environments.Staging)
			Expect(logger).NotTo(BeNil())
			Expect(logger.wrappedLogger).NotTo(BeNil())
		})

		It("should create a new logger with test config when environment is test", func() {
			logger = New(environments.Test)
			Expect(logger).NotTo(BeNil())
			Expect(logger.wrappedLogger).NotTo(BeNil())
		})

		It("should create a new logger with production config when environment is unknown", func() {
			unknownEnv := environments.Environment("unknown")
			logger = New(unknownEnv)
			Expect(logger).NotTo(BeNil())
			Expect(logger.wrappedLogger).NotTo(BeNil())

			core := logger.wrappedLogger.WithOptions(zap.AddCaller()).Core()
			Expect(core.Enabled(zapcore.InfoLevel)).To(BeTrue())
			Expect(core.Enabled(zapcore.DebugLevel)).To(BeFalse())
		})
	})

	Describe("#Info", func() {
		BeforeEach(func() {
			logger = New(environments.Test)
		})

		It("should log info messages with fields", func() {
			Expect(func() {
				logger.Info("info message", map[string]string{"key": "value"})
			}).NotTo(Panic())
		})

		It("should log info messages without fields", func() {
			Expect(func() {
				logger.Info("info message")
			}).NotTo(Panic())
		})

		It("should merge all supplied field maps", func() {
			Expect(func() {
				logger.Info("info message",
					map[string]string{"key": "value"},
					map[string]string{"other": "value"},
				)
			}).NotTo(Panic())
		})
	})

	Describe("#mergeFields", func() {
		It("should flatten every map into fields", func() {
			fields := mergeFields([]map[string]string{
				{"a": "1"},
				{"b": "2", "c": "3"},
			})
			Expect(fields).To(HaveLen(3))
		})

		It("should return no fields for empty input", func() {
			Expect(mergeFields(nil)).To(BeEmpty())
		})
	})

	Describe("#Debug", func() {
		BeforeEach(func() {
			logger = New(environments.Test)
		})

		It("should log debug messages", func() {
			Expect(func() {
				logger.Debug("debug message", map[string]string{"key": "value"})
			}).NotTo(Panic())
		})
	})

	Describe("#Error", func() {
		BeforeEach(func() {
			logger = New(environments.Test)
		})

		It("should log error messages", func() {
			Expect(func() {
				logger.Error("error message", map[string]string{"key": "value"})
			}).NotTo(Panic())
		})
	})
})

var _ = Describe("Logger Environment", func() {
	Describe("#newProductionLoggerConfig", func() {
		It("should return the correct production logger configuration", func() {
			cfg := newProductionLoggerConfig()

			Expect(cfg.Level.Level()).To(Equal(zap.InfoLevel))
			Expect(cfg.Development).To(BeFalse())
			Expect(cfg.Encoding).To(Equal("json"))
			Expect(cfg.OutputPaths).To(Equal([]string{"stdout"}))
			Expect(cfg.ErrorOutputPaths).To(Equal([]string{"stderr"}))
		})
	})

	Describe("#newStagingLoggerConfig", func() {
		It("should return the correct staging logger configuration", func() {
			cfg := newStagingLoggerConfig()

			Expect(cfg.Level.Level()).To(Equal(zap.InfoLevel))
			Expect(cfg.DisableCaller).To(BeTrue())
			Expect(cfg.DisableStacktrace).To(BeTrue())
			Expect(cfg.Encoding).To(Equal("json"))
		})
	})

	Describe("#newDevelopmentLoggerConfig", func() {
		It("should return the correct development logger configuration", func() {
			cfg := newDevelopmentLoggerConfig()

			Expect(cfg.Level.Level()).To(Equal(zap.DebugLevel))
			Expect(cfg.Development).To(BeTrue())
			Expect(cfg.Encoding).To(Equal("console"))
		})
	})

	Describe("#newTestLoggerConfig", func() {
		It("should return the correct test logger configuration", func() {
			cfg := newTestLoggerConfig()

			Expect(cfg.Level.Level()).To(Equal(zap.DebugLevel))
			Expect(cfg.DisableCaller).To(BeTrue())
			Expect(cfg.DisableStacktrace).To(BeTrue())
		})
	})
})
