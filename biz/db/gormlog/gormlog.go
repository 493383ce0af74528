package gormlog

import (
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"gorm.io/gorm/logger"
)

type hlogWriter struct{}

func (hlogWriter) Printf(format string, v ...interface{}) {
	hlog.Infof(format, v...)
}

// New routes gorm statement logs into hlog.
func New() logger.Interface {
	return logger.New(hlogWriter{}, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
