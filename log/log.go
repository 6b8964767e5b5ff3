package log

import (
	"os"
	"strconv"
	"sync"

	"github.com/alpacahq/goplaid/env"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	once      sync.Once
	mu        sync.RWMutex
	appLogger AppLogger
)

type AppLogger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Fatal(msg string, keysAndValues ...interface{})
}

// NewLogger builds a console logger writing to stdout. The
// level is debug when DEBUG is true, info otherwise.
func NewLogger() AppLogger {
	return NewLoggerWithCore(newCore(zapcore.Lock(os.Stdout)))
}

// NewLoggerWithCore wraps an arbitrary zap core, which lets
// tests observe what gets logged.
func NewLoggerWithCore(core zapcore.Core) AppLogger {
	zl := zap.New(core,
		zap.AddStacktrace(zapcore.ErrorLevel),
		zap.AddCaller(),
		zap.AddCallerSkip(2),
	)
	return &logger{zap: zl.Sugar()}
}

func newCore(ws zapcore.WriteSyncer) zapcore.Core {
	atom := zap.NewAtomicLevel()
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.StacktraceKey = "stack"
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	debug, _ := strconv.ParseBool(env.GetVar("DEBUG"))
	if debug {
		atom.SetLevel(zap.DebugLevel)
	} else {
		atom.SetLevel(zap.InfoLevel)
	}
	return zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), ws, atom)
}

type logger struct {
	zap *zap.SugaredLogger
}

func (l *logger) Debug(msg string, keysAndValues ...interface{}) {
	l.zap.Debugw(msg, keysAndValues...)
	l.zap.Sync()
}

func (l *logger) Info(msg string, keysAndValues ...interface{}) {
	l.zap.Infow(msg, keysAndValues...)
	l.zap.Sync()
}

func (l *logger) Warn(msg string, keysAndValues ...interface{}) {
	l.zap.Warnw(msg, keysAndValues...)
	l.zap.Sync()
}

func (l *logger) Error(msg string, keysAndValues ...interface{}) {
	l.zap.Errorw(msg, keysAndValues...)
	l.zap.Sync()
}

func (l *logger) Fatal(msg string, keysAndValues ...interface{}) {
	l.zap.Fatalw(msg, keysAndValues...)
}

// Logger returns the singleton logger to be used for the duration
// of the application's runtime
func Logger() AppLogger {
	once.Do(func() {
		mu.Lock()
		if appLogger == nil {
			appLogger = NewLogger()
		}
		mu.Unlock()
	})
	mu.RLock()
	defer mu.RUnlock()
	return appLogger
}

// SetLogger swaps the singleton and returns the previous one.
func SetLogger(l AppLogger) AppLogger {
	Logger()
	mu.Lock()
	defer mu.Unlock()
	prev := appLogger
	appLogger = l
	return prev
}

// Debug logs a debug message followed by a set of key value pairs.
func Debug(msg string, keysAndValues ...interface{}) {
	Logger().Debug(msg, keysAndValues...)
}

// Info logs an info message followed by a set of key value pairs.
func Info(msg string, keysAndValues ...interface{}) {
	Logger().Info(msg, keysAndValues...)
}

// Warn logs a warning message followed by a set of key value pairs.
func Warn(msg string, keysAndValues ...interface{}) {
	Logger().Warn(msg, keysAndValues...)
}

// Error logs an error message followed by a set of key
// value pairs, including a stack trace denoted by the
// key "stack".
func Error(msg string, keysAndValues ...interface{}) {
	Logger().Error(msg, keysAndValues...)
}

// Fatal logs a fatal error message followed by a set of key
// value pairs, then calls os.Exit(1).
func Fatal(msg string, keysAndValues ...interface{}) {
	Logger().Fatal(msg, keysAndValues...)
}
