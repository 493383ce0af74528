package metrics

import (
	"bytes"
	"context"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Handler writes the default registry in the text exposition format.
func Handler(ctx context.Context, c *app.RequestContext) {
	serve(ctx, c, prometheus.DefaultGatherer)
}

func serve(ctx context.Context, c *app.RequestContext, gatherer prometheus.Gatherer) {
	mfs, err := gatherer.Gather()
	if err != nil {
		hlog.CtxErrorf(ctx, "gather metrics err: %v", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	format := expfmt.NewFormat(expfmt.TypeTextPlain)
	var buf bytes.Buffer
	enc := expfmt.NewEncoder(&buf, format)
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			hlog.CtxErrorf(ctx, "encode metric family %s err: %v", mf.GetName(), err)
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
	}
	c.Data(http.StatusOK, string(format), buf.Bytes())
}
