// Package log provides the structured logger shared by all packages.
package log

import (
	"fmt"

	"github.com/zxhio/j4on/options"
	"go.uber.org/zap"
)

// Init initializes the logger from the given log option.
func Init(opt *options.LogOption) error {
	sinkType, err := GetSinkType(opt.Sink)
	if err != nil {
		return err
	}
	switch sinkType {
	case SinkConsole:
		return InitConsoleLog(opt.Mode, opt.Level)
	case SinkFile:
		if opt.Filename == "" {
			return fmt.Errorf("log filename not specified for sink: %s", opt.Sink)
		}
		return InitFileLog(opt.Mode, opt.Level, opt.Filename)
	case SinkMulti:
		if opt.Filename == "" {
			return fmt.Errorf("log filename not specified for sink: %s", opt.Sink)
		}
		return InitMultiLog(opt.Mode, opt.Level, opt.Filename)
	default:
		return fmt.Errorf("unknown sink type: %d", sinkType)
	}
}

// Log returns the current sugared logger.
func Log() *zap.SugaredLogger {
	return sugar
}

func Debug(args ...interface{}) {
	sugar.Debug(args...)
}

func Debugf(format string, args ...interface{}) {
	sugar.Debugf(format, args...)
}

func Info(args ...interface{}) {
	sugar.Info(args...)
}

func Infof(format string, args ...interface{}) {
	sugar.Infof(format, args...)
}

func Warn(args ...interface{}) {
	sugar.Warn(args...)
}

func Warnf(format string, args ...interface{}) {
	sugar.Warnf(format, args...)
}

func Error(args ...interface{}) {
	sugar.Error(args...)
}

func Errorf(format string, args ...interface{}) {
	sugar.Errorf(format, args...)
}

func Panicf(format string, args ...interface{}) {
	sugar.Panicf(format, args...)
}
