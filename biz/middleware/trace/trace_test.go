package trace

import (
	"context"
	"net/http"
	"testing"

	"gymweb/biz/util/trace_info"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/config"
	"github.com/cloudwego/hertz/pkg/common/test/assert"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/cloudwego/hertz/pkg/route"
)

func newEngine(seen *string) *route.Engine {
	engine := route.NewEngine(config.NewOptions([]config.Option{}))
	engine.Use(New())
	engine.GET("/echo", func(ctx context.Context, c *app.RequestContext) {
		*seen = trace_info.GetLogId(ctx)
		c.String(http.StatusOK, "ok")
	})
	return engine
}

func TestTrace_KeepsCallerLogID(t *testing.T) {
	var seen string
	engine := newEngine(&seen)

	w := ut.PerformRequest(engine, http.MethodGet, "/echo", nil, ut.Header{Key: HeaderKeyLogId, Value: "caller-id"})
	resp := w.Result()
	assert.DeepEqual(t, "caller-id", seen)
	assert.DeepEqual(t, "caller-id", string(resp.Header.Peek(HeaderKeyLogId)))
}

func TestTrace_FallsBackToRequestID(t *testing.T) {
	var seen string
	engine := newEngine(&seen)

	ut.PerformRequest(engine, http.MethodGet, "/echo", nil, ut.Header{Key: headerKeyRequestId, Value: "req-id"})
	assert.DeepEqual(t, "req-id", seen)
}

func TestTrace_GeneratesLogID(t *testing.T) {
	var seen string
	engine := newEngine(&seen)

	w := ut.PerformRequest(engine, http.MethodGet, "/echo", nil)
	resp := w.Result()
	assert.True(t, seen != "")
	assert.DeepEqual(t, seen, string(resp.Header.Peek(HeaderKeyLogId)))
}
