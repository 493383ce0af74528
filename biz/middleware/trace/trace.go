package trace

import (
	"context"

	"gymweb/biz/util/id_gen"
	"gymweb/biz/util/trace_info"

	"github.com/cloudwego/hertz/pkg/app"
)

const (
	HeaderKeyLogId     = "X-Log-ID"
	headerKeyRequestId = "X-Request-ID"
)

// New puts the caller's log id (or a fresh one) and client ip into the
// context and echoes the log id back in the response.
func New() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		logID := c.Request.Header.Get(HeaderKeyLogId)
		if logID == "" {
			logID = c.Request.Header.Get(headerKeyRequestId)
		}
		if logID == "" {
			logID = id_gen.NewID()
		}

		ctx = trace_info.WithInfo(ctx, trace_info.Info{
			LogID:    logID,
			ClientIP: c.ClientIP(),
		})
		c.Header(HeaderKeyLogId, logID)
		c.Next(ctx)
	}
}
