package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	middleware "annotation-registry.com/annotation-registry/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, prefix string, rateLimitPerMinute int) {
	// The limiter keys on the peer address; forwarding headers are client controlled.
	e.IPExtractor = echo.ExtractIPDirect()

	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLogger())
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.GET("/health", h.Health)

	tasks := e.Group(prefix)
	tasks.POST("/annotation", h.CreateAnnotation)
	tasks.GET("/pending", h.ListPending)
	tasks.GET("/:id", h.GetTask)
}
