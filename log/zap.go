package log

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var zaplogger *zap.Logger
var sugar *zap.SugaredLogger

// skipUntilTrueCaller is the skip level which prints out the actual caller
// instead of the package-level wrappers below.
const skipUntilTrueCaller = 1

func init() {
	if err := InitConsoleLog("FULL", "INFO"); err != nil {
		panic(err)
	}
}

var levelMap = map[string]zapcore.Level{
	"DEBUG": zapcore.DebugLevel,
	"INFO":  zapcore.InfoLevel,
	"WARN":  zapcore.WarnLevel,
	"ERROR": zapcore.ErrorLevel,
	"FATAL": zapcore.FatalLevel,
}

type ModeEncoder func() zapcore.Encoder

var modeMap = map[string]ModeEncoder{
	"SIMPLE": getSimpleEncoder,
	"FULL":   getFullEncoder,
}

type SinkType int

const (
	SinkConsole SinkType = iota // default
	SinkFile
	SinkMulti
)

var sinkMap = map[string]SinkType{
	"":        SinkConsole,
	"CONSOLE": SinkConsole,
	"FILE":    SinkFile,
	"MULTI":   SinkMulti,
}

func GetSinkType(sink string) (SinkType, error) {
	sinkType, ok := sinkMap[strings.ToUpper(sink)]
	if !ok {
		return SinkConsole, fmt.Errorf("illegal sink: %s", sink)
	}
	return sinkType, nil
}

func updateLogger(logger *zap.Logger) {
	zaplogger = logger
	sugar = logger.Sugar()
}

// InitConsoleLog sets the console log mode and level.
func InitConsoleLog(mode, level string) error {
	modeEncoder, zapLevel, err := getEncoderAndLevel(mode, level)
	if err != nil {
		return err
	}
	core := zapcore.NewCore(modeEncoder(), createConsoleWriter(), zapLevel)
	updateLogger(zap.New(core, zap.AddCaller(), zap.AddCallerSkip(skipUntilTrueCaller)))
	return nil
}

// InitFileLog sets the file log mode, level, and filename.
func InitFileLog(mode, level, filename string) error {
	modeEncoder, zapLevel, err := getEncoderAndLevel(mode, level)
	if err != nil {
		return err
	}
	ws := createFileWriter(filename)
	core := zapcore.NewCore(modeEncoder(), ws, zapLevel)
	updateLogger(zap.New(core, zap.AddCaller(), zap.AddCallerSkip(skipUntilTrueCaller)))
	return nil
}

// InitMultiLog sets the log mode, level, and filename. The logger will print
// both to the console and to files.
func InitMultiLog(mode, level, filename string) error {
	modeEncoder, zapLevel, err := getEncoderAndLevel(mode, level)
	if err != nil {
		return err
	}
	core := zapcore.NewCore(
		modeEncoder(),
		zapcore.NewMultiWriteSyncer(
			createConsoleWriter(),
			createFileWriter(filename),
		),
		zapLevel,
	)
	updateLogger(zap.New(core, zap.AddCaller(), zap.AddCallerSkip(skipUntilTrueCaller)))
	return nil
}

func getEncoderAndLevel(mode, level string) (ModeEncoder, zapcore.Level, error) {
	modeEncoder, ok := modeMap[strings.ToUpper(mode)]
	if !ok {
		return nil, zapcore.DebugLevel, fmt.Errorf("illegal log mode: %s", mode)
	}
	zapLevel, ok := levelMap[strings.ToUpper(level)]
	if !ok {
		return nil, zapcore.DebugLevel, fmt.Errorf("illegal log level: %s", level)
	}
	return modeEncoder, zapLevel, nil
}

// NewSugar returns a named sugared logger derived from the current logger.
func NewSugar(name string) *zap.SugaredLogger {
	return zaplogger.Named(name).Sugar()
}

func createConsoleWriter() zapcore.WriteSyncer {
	return zapcore.AddSync(os.Stdout)
}

func createFileWriter(filename string) zapcore.WriteSyncer {
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   filename,
		MaxSize:    10, // megabytes
		MaxAge:     30, // days
		MaxBackups: 7,
		LocalTime:  true,
	})
}

func getSimpleEncoder() zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.CallerKey = ""
	encoderConfig.FunctionKey = ""
	encoderConfig.EncodeTime = nil
	encoderConfig.EncodeLevel = nil
	encoderConfig.ConsoleSeparator = "|"
	return zapcore.NewConsoleEncoder(encoderConfig)
}

func getFullEncoder() zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.ConsoleSeparator = "|"
	return zapcore.NewConsoleEncoder(encoderConfig)
}
