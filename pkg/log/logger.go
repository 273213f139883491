package log

import (
	"Inkwell/config"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var L *zap.Logger

func init() {
	L = newLogger(zap.InfoLevel, os.Stdout)
}

// Setup 根据配置重建全局日志
func Setup(conf *config.Log) {
	if conf == nil {
		return
	}
	level := zap.InfoLevel
	if conf.Level != "" {
		if lv, err := zapcore.ParseLevel(conf.Level); err == nil {
			level = lv
		}
	}

	var out io.Writer = os.Stdout
	if conf.File != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   conf.File,
			MaxSize:    conf.MaxSizeMB,
			MaxBackups: conf.MaxBackups,
			MaxAge:     conf.MaxAgeDays,
			Compress:   true,
		})
	}
	L = newLogger(level, out)
}

func newLogger(level zapcore.Level, out io.Writer) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeCaller = func(caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
		projectName := "Inkwell"

		index := strings.Index(caller.File, projectName)
		if index != -1 {
			enc.AppendString(caller.File[index:] + ":" + strconv.Itoa(caller.Line))
		} else {
			enc.AppendString(caller.TrimmedPath())
		}
	}
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	core := zapcore.NewCore(
		encoder,
		zapcore.AddSync(out),
		level,
	)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
}
