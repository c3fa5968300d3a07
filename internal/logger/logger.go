package logger

import (
	"errors"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the global SugaredLogger instance.
// Initialized with a no-op logger until Initialize is called.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

// fileSink describes an optional rotated log file.
type fileSink struct {
	path       string
	maxSizeMB  int
	maxBackups int
	maxAgeDays int
}

// Option configures Initialize.
type Option func(*fileSink)

// WithFile additionally writes JSON logs to a size-rotated file.
func WithFile(path string, maxSizeMB, maxBackups, maxAgeDays int) Option {
	return func(s *fileSink) {
		s.path = path
		s.maxSizeMB = maxSizeMB
		s.maxBackups = maxBackups
		s.maxAgeDays = maxAgeDays
	}
}

// Initialize sets up the global logger with the given log level.
func Initialize(level string, opts ...Option) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	sink := &fileSink{}
	for _, opt := range opts {
		opt(sink)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := cfg.Build()
	if err != nil {
		return err
	}

	if sink.path != "" {
		rotator := &lumberjack.Logger{
			Filename:   sink.path,
			MaxSize:    sink.maxSizeMB,
			MaxBackups: sink.maxBackups,
			MaxAge:     sink.maxAgeDays,
			Compress:   true,
		}
		fileCore := zapcore.NewCore(
			zapcore.NewJSONEncoder(cfg.EncoderConfig),
			zapcore.AddSync(rotator),
			cfg.Level,
		)
		logger = logger.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewTee(core, fileCore)
		}))
	}

	Log = logger.Sugar()
	return nil
}

// Sync flushes buffered log entries. Errors from syncing a terminal are ignored.
func Sync() {
	if err := Log.Sync(); err != nil && !isStdStream(err) {
		_, _ = os.Stderr.WriteString("logger sync failed: " + err.Error() + "\n")
	}
}

func isStdStream(err error) bool {
	var pathErr *os.PathError
	return errors.As(err, &pathErr) && (pathErr.Path == "/dev/stdout" || pathErr.Path == "/dev/stderr")
}
