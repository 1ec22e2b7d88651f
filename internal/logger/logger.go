package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ServiceName is attached to every log entry.
const ServiceName = "gw-job-tracker"

// Log is the global SugaredLogger instance.
// Initialized with a no-op logger until Initialize is called.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

// Initialize sets up the global logger with the given log level, writing
// JSON entries to stderr.
func Initialize(level string) error {
	l, err := build(level, zapcore.Lock(os.Stderr))
	if err != nil {
		return err
	}

	Log = l
	return nil
}

// build returns a JSON logger at level writing to out. Entries carry the
// service name and an ISO8601 timestamp.
func build(level string, out zapcore.WriteSyncer) (*zap.SugaredLogger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), out, lvl)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)).
		With(zap.String("service", ServiceName)).
		Sugar(), nil
}

// Sync flushes any buffered log entries of the global logger.
func Sync() {
	_ = Log.Sync()
}
