package cors

import (
	"testing"
	"time"

	"gymweb/biz/config"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := newConfig(config.CORSConf{})
	assert.Equal(t, defaultMethods, cfg.AllowMethods)
	assert.Equal(t, defaultHeaders, cfg.AllowHeaders)
	assert.Equal(t, defaultMaxAge, cfg.MaxAge)
	assert.NotNil(t, cfg.AllowOriginFunc)
	assert.False(t, cfg.AllowAllOrigins)
}

func TestNewConfig_Origins(t *testing.T) {
	cfg := newConfig(config.CORSConf{AllowOrigins: []string{"*"}, MaxAge: 600})
	assert.True(t, cfg.AllowAllOrigins)
	assert.Equal(t, 600*time.Second, cfg.MaxAge)

	cfg = newConfig(config.CORSConf{AllowOrigins: []string{"*"}, AllowCredentials: true})
	assert.False(t, cfg.AllowAllOrigins)
	if assert.NotNil(t, cfg.AllowOriginFunc) {
		assert.True(t, cfg.AllowOriginFunc("https://any.example"))
	}

	cfg = newConfig(config.CORSConf{AllowOrigins: []string{"https://a.example"}})
	assert.Equal(t, []string{"https://a.example"}, cfg.AllowOrigins)
	assert.Nil(t, cfg.AllowOriginFunc)
}
