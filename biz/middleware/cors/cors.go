package cors

import (
	"slices"
	"time"

	"gymweb/biz/config"
	"gymweb/biz/middleware/trace"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/hertz-contrib/cors"
)

var (
	// the user api only routes GET and POST
	defaultMethods = []string{"GET", "POST", "OPTIONS"}
	defaultHeaders = []string{"Origin", "Content-Length", "Content-Type", trace.HeaderKeyLogId}
)

const defaultMaxAge = 12 * time.Hour

func New() app.HandlerFunc {
	return cors.New(newConfig(config.GetCORSConf()))
}

func newConfig(conf config.CORSConf) cors.Config {
	cfg := cors.Config{
		AllowMethods:     defaultIfEmpty(conf.AllowMethods, defaultMethods),
		AllowHeaders:     defaultIfEmpty(conf.AllowHeaders, defaultHeaders),
		ExposeHeaders:    []string{trace.HeaderKeyLogId},
		AllowCredentials: conf.AllowCredentials,
		MaxAge:           time.Duration(conf.MaxAge) * time.Second,
	}
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = defaultMaxAge
	}

	switch {
	case len(conf.AllowOrigins) == 0, slices.Contains(conf.AllowOrigins, "*") && conf.AllowCredentials:
		// a literal "*" is rejected by browsers for credentialed requests, so reflect the origin
		cfg.AllowOriginFunc = func(string) bool { return true }
	case slices.Contains(conf.AllowOrigins, "*"):
		cfg.AllowAllOrigins = true
	default:
		cfg.AllowOrigins = conf.AllowOrigins
	}
	return cfg
}

func defaultIfEmpty(v, def []string) []string {
	if len(v) == 0 {
		return def
	}
	return v
}
