// @title			gymweb user service
// @version		1.0
// @description	User records CRUD service.
// @BasePath		/
package main

import (
	"os"

	"gymweb/biz/config"
	"gymweb/biz/db"
	"gymweb/biz/middleware"
	"gymweb/biz/util/logger"

	"github.com/cloudwego/hertz/pkg/app/server"
)

const (
	defaultConfPath = "conf/deploy.yml"
	defaultAddr     = ":8888"
)

func main() {
	confPath := os.Getenv("CONF_PATH")
	if confPath == "" {
		confPath = defaultConfPath
	}
	config.Init(confPath)
	logger.Init()
	db.Init()

	h := NewEngine()
	h.Spin()
}

func NewEngine() *server.Hertz {
	addr := config.GetServerConf().Addr
	if addr == "" {
		addr = defaultAddr
	}

	h := server.New(server.WithHostPorts(addr))
	h.Use(middleware.Suite()...)
	register(h)
	return h
}
