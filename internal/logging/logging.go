package logging

import (
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the application logger. Every line is a single JSON object with
// ts, level and msg keys; ts is RFC3339Nano in loc.
func New(debug bool, loc *time.Location) *zap.Logger {
	return NewWithWriter(os.Stdout, debug, loc)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, debug bool, loc *time.Location) *zap.Logger {
	if loc == nil {
		loc = time.UTC
	}

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig(loc)),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(level),
	)
	return zap.New(core)
}

func encoderConfig(loc *time.Location) zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	cfg.LevelKey = "level"
	cfg.MessageKey = "msg"
	cfg.CallerKey = zapcore.OmitKey
	cfg.StacktraceKey = zapcore.OmitKey
	cfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	cfg.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.In(loc).Format(time.RFC3339Nano))
	}
	cfg.EncodeDuration = zapcore.MillisDurationEncoder
	return cfg
}
