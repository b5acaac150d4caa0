package log

import (
	"github.com/bournejson/bourne/options"
	"go.uber.org/zap"
)

func Log() *zap.SugaredLogger {
	return sugar
}

// Init set the log options for debugging.
func Init(opt *options.LogOption) error {
	sinkType, err := GetSinkType(opt.Sink)
	if err != nil {
		return err
	}
	switch sinkType {
	case SinkFile:
		return InitFileLog(opt.Mode, opt.Level, opt.Filename)
	case SinkMulti:
		return InitMultiLog(opt.Mode, opt.Level, opt.Filename)
	default:
		return InitConsoleLog(opt.Mode, opt.Level)
	}
}

// Debugf uses fmt.Sprintf to log a templated message.
func Debugf(format string, args ...any) {
	sugar.Debugf(format, args...)
}

// Infof uses fmt.Sprintf to log a templated message.
func Infof(format string, args ...any) {
	sugar.Infof(format, args...)
}

// Warnf uses fmt.Sprintf to log a templated message.
func Warnf(format string, args ...any) {
	sugar.Warnf(format, args...)
}

// Errorf uses fmt.Sprintf to log a templated message.
func Errorf(format string, args ...any) {
	sugar.Errorf(format, args...)
}

// DPanicf uses fmt.Sprintf to log a templated message. In development,
// the logger then panics.
func DPanicf(format string, args ...any) {
	sugar.DPanicf(format, args...)
}

// Panicf uses fmt.Sprintf to log a templated message, then panics.
func Panicf(format string, args ...any) {
	sugar.Panicf(format, args...)
}
