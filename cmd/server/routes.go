package main

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/bookshelf-api/internal/docs"
	"github.com/snnyvrz/bookshelf-api/internal/handler"
	"github.com/snnyvrz/bookshelf-api/internal/middleware"
	"github.com/snnyvrz/bookshelf-api/internal/repository"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type routerDeps struct {
	repo      repository.BookRepository
	driver    string
	limiter   *middleware.RateLimiter // nil disables rate limiting
	log       *slog.Logger
	startTime time.Time
}

func newRouter(d routerDeps) *gin.Engine {
	e := gin.New()
	e.HandleMethodNotAllowed = true

	e.Use(gin.Recovery(), middleware.RequestLogger(d.log))

	e.SetTrustedProxies([]string{
		"127.0.0.1",
		"::1",
	})

	e.NoRoute(handler.NotFound)
	e.NoMethod(handler.MethodNotAllowed)

	docs.SwaggerInfo.BasePath = "/"

	healthHandler := handler.NewHealthHandler(d.repo, d.driver, d.startTime, appVersion)
	healthHandler.RegisterRoutes(e)

	api := e.Group("")
	if d.limiter != nil {
		api.Use(d.limiter.Middleware())
	}
	{
		bookHandler := handler.NewBookHandler(d.repo, d.log)
		bookHandler.RegisterRoutes(api)
	}

	e.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return e
}
