package accesslog

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/hertz-contrib/logger/accesslog"
)

const format = "${status} ${latency} ${method} ${path} ${queryParams} in=${bytesReceived} out=${bytesSent}"

// probe paths are scraped too often to be worth an access line each
var skipPaths = map[string]struct{}{
	"/ping":    {},
	"/metrics": {},
}

func New() app.HandlerFunc {
	logAccess := accesslog.New(
		accesslog.WithAccessLogFunc(hlog.CtxInfof),
		accesslog.WithFormat(format),
	)

	return func(ctx context.Context, c *app.RequestContext) {
		if _, skip := skipPaths[string(c.Path())]; skip {
			c.Next(ctx)
			return
		}
		logAccess(ctx, c)
	}
}
