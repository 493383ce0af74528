package trace_info

import (
	"context"
)

// Info is the per-request data carried in the context for log lines.
type Info struct {
	LogID    string
	ClientIP string
}

type infoKey struct{}

func WithInfo(ctx context.Context, info Info) context.Context {
	return context.WithValue(ctx, infoKey{}, info)
}

func GetInfo(ctx context.Context) (Info, bool) {
	info, ok := ctx.Value(infoKey{}).(Info)
	return info, ok
}

func WithLogId(ctx context.Context, logId string) context.Context {
	info, _ := GetInfo(ctx)
	info.LogID = logId
	return WithInfo(ctx, info)
}

func GetLogId(ctx context.Context) string {
	info, _ := GetInfo(ctx)
	return info.LogID
}
