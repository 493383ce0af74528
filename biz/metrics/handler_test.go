package metrics

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/config"
	"github.com/cloudwego/hertz/pkg/common/test/assert"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/cloudwego/hertz/pkg/route"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

type failingGatherer struct{}

func (failingGatherer) Gather() ([]*dto.MetricFamily, error) {
	return nil, errors.New("collect failed")
}

func newEngine(h app.HandlerFunc) *route.Engine {
	engine := route.NewEngine(config.NewOptions([]config.Option{}))
	engine.GET("/metrics", h)
	return engine
}

func TestHandler_ServesDefaultRegistry(t *testing.T) {
	UserOpsTotal.WithLabelValues("find_all", ResultOK).Inc()

	w := ut.PerformRequest(newEngine(Handler), http.MethodGet, "/metrics", nil)
	resp := w.Result()
	assert.DeepEqual(t, http.StatusOK, resp.StatusCode())
	assert.True(t, strings.HasPrefix(string(resp.Header.ContentType()), "text/plain"))
	assert.True(t, strings.Contains(string(resp.Body()), `gymweb_user_ops_total{op="find_all",result="ok"}`))
}

func TestHandler_CustomRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "only_here_total", Help: "test counter"})
	reg.MustRegister(counter)
	counter.Add(3)

	w := ut.PerformRequest(newEngine(func(ctx context.Context, c *app.RequestContext) {
		serve(ctx, c, reg)
	}), http.MethodGet, "/metrics", nil)
	resp := w.Result()
	assert.DeepEqual(t, http.StatusOK, resp.StatusCode())
	assert.True(t, strings.Contains(string(resp.Body()), "only_here_total 3"))
	assert.False(t, strings.Contains(string(resp.Body()), "gymweb_user_ops_total"))
}

func TestHandler_GatherError(t *testing.T) {
	w := ut.PerformRequest(newEngine(func(ctx context.Context, c *app.RequestContext) {
		serve(ctx, c, failingGatherer{})
	}), http.MethodGet, "/metrics", nil)
	assert.DeepEqual(t, http.StatusInternalServerError, w.Result().StatusCode())
}
