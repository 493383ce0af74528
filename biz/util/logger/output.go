package logger

import (
	"io"
	"os"
	"path/filepath"

	"gymweb/biz/config"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultDir        = "./log"
	defaultFileName   = "gymweb.log"
	defaultMaxSizeMB  = 512
	defaultMaxBackups = 10
	defaultMaxAgeDays = 14
)

var levels = map[string]hlog.Level{
	"trace":  hlog.LevelTrace,
	"debug":  hlog.LevelDebug,
	"info":   hlog.LevelInfo,
	"notice": hlog.LevelNotice,
	"warn":   hlog.LevelWarn,
	"error":  hlog.LevelError,
	"fatal":  hlog.LevelFatal,
}

func orDefault[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

// newOutput writes to a rotated file, mirrored to stdout when logger.stdout is set.
func newOutput() io.Writer {
	conf := config.GetLoggerConf()

	file := &lumberjack.Logger{
		Filename:   filepath.Join(orDefault(conf.Dir, defaultDir), orDefault(conf.FileName, defaultFileName)),
		MaxSize:    orDefault(conf.MaxSize, defaultMaxSizeMB),
		MaxAge:     orDefault(conf.MaxAge, defaultMaxAgeDays),
		MaxBackups: orDefault(conf.MaxBackups, defaultMaxBackups),
		LocalTime:  true,
	}
	if conf.Stdout {
		return io.MultiWriter(file, os.Stdout)
	}
	return file
}

func newLevel() hlog.Level {
	if level, ok := levels[config.GetLoggerConf().Level]; ok {
		return level
	}
	return hlog.LevelInfo
}
