package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide sugared logger. Init replaces it; the default
// keeps early callers (and tests) from hitting a nil logger.
var Log = zap.NewNop().Sugar()

// Init builds the structured logger for the service.
func Init(serviceName string) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.InitialFields = map[string]interface{}{
		"service": serviceName,
	}

	l, err := config.Build()
	if err != nil {
		panic(err)
	}
	Log = l.Sugar()
}

// Sync flushes buffered log entries. Call on shutdown.
func Sync() {
	_ = Log.Sync()
}
