package metrics

import (
	"context"
	"strconv"
	"time"

	"gymweb/biz/metrics"

	"github.com/cloudwego/hertz/pkg/app"
)

const unmatchedPath = "unmatched"

func New() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		start := time.Now()
		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		c.Next(ctx)

		// route templates keep label cardinality bounded
		path := c.FullPath()
		if path == "" {
			path = unmatchedPath
		}
		method := string(c.Method())
		metrics.HTTPRequestsTotal.
			WithLabelValues(method, path, strconv.Itoa(c.Response.StatusCode())).Inc()
		metrics.HTTPRequestDurationSeconds.
			WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}
