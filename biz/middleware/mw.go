package middleware

import (
	"gymweb/biz/middleware/accesslog"
	"gymweb/biz/middleware/cors"
	"gymweb/biz/middleware/metrics"
	"gymweb/biz/middleware/recovery"
	"gymweb/biz/middleware/trace"

	"github.com/cloudwego/hertz/pkg/app"
)

func Suite() []app.HandlerFunc {
	return []app.HandlerFunc{
		recovery.New(),  // panic handler
		trace.New(),     // 链路ID
		accesslog.New(), // 接口日志
		cors.New(),      // 跨域请求
		metrics.New(),   // 请求指标
	}
}
