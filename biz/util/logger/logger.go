package logger

import (
	"context"

	"gymweb/biz/util/trace_info"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func Init() {
	if _, ok := hlog.DefaultLogger().(*traceLogger); !ok {
		hlog.SetLogger(&traceLogger{FullLogger: hlog.DefaultLogger()})
	}
	hlog.SetOutput(newOutput())
	hlog.SetLevel(newLevel())
}

// traceLogger prefixes every Ctx* line with the request log id and client ip.
type traceLogger struct {
	hlog.FullLogger
}

func withLogID(ctx context.Context, format string) string {
	info, ok := trace_info.GetInfo(ctx)
	if !ok || info.LogID == "" {
		return format
	}
	if info.ClientIP == "" {
		return "[" + info.LogID + "] " + format
	}
	return "[" + info.LogID + " " + info.ClientIP + "] " + format
}

func (l *traceLogger) CtxTracef(ctx context.Context, format string, v ...interface{}) {
	l.FullLogger.CtxTracef(ctx, withLogID(ctx, format), v...)
}

func (l *traceLogger) CtxDebugf(ctx context.Context, format string, v ...interface{}) {
	l.FullLogger.CtxDebugf(ctx, withLogID(ctx, format), v...)
}

func (l *traceLogger) CtxInfof(ctx context.Context, format string, v ...interface{}) {
	l.FullLogger.CtxInfof(ctx, withLogID(ctx, format), v...)
}

func (l *traceLogger) CtxNoticef(ctx context.Context, format string, v ...interface{}) {
	l.FullLogger.CtxNoticef(ctx, withLogID(ctx, format), v...)
}

func (l *traceLogger) CtxWarnf(ctx context.Context, format string, v ...interface{}) {
	l.FullLogger.CtxWarnf(ctx, withLogID(ctx, format), v...)
}

func (l *traceLogger) CtxErrorf(ctx context.Context, format string, v ...interface{}) {
	l.FullLogger.CtxErrorf(ctx, withLogID(ctx, format), v...)
}

func (l *traceLogger) CtxFatalf(ctx context.Context, format string, v ...interface{}) {
	l.FullLogger.CtxFatalf(ctx, withLogID(ctx, format), v...)
}
