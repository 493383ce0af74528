package main

import (
	"context"
	"net/http"

	"gymweb/biz/handler"
	"gymweb/biz/metrics"
	_ "gymweb/docs"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/hertz-contrib/swagger"
	swaggerFiles "github.com/swaggo/files"
)

func register(r *server.Hertz) {
	r.GET("/ping", func(ctx context.Context, c *app.RequestContext) {
		c.JSON(http.StatusOK, utils.H{"message": "pong"})
	})
	r.GET("/metrics", metrics.Handler)
	r.GET("/swagger/*any", swagger.WrapHandler(swaggerFiles.Handler, swagger.URL("/swagger/doc.json")))

	v1 := r.Group("/api/v1")
	{
		userGroup := v1.Group("/user")
		userGroup.POST("/create", handler.CreateUser)
		userGroup.GET("/list", handler.ListUsers)
		userGroup.GET("/get", handler.GetUser)
		userGroup.GET("/get_by_username", handler.GetUserByUsername)
		userGroup.GET("/get_by_email", handler.GetUserByEmail)
		userGroup.POST("/update", handler.UpdateUser)
		userGroup.POST("/delete", handler.DeleteUser)
	}
}
