package rest

import (
	"net/http"

	"github.com/Gunvolt24/orderlines/internal/ports"
	"github.com/Gunvolt24/orderlines/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// newEngine — общий конвейер обоих процессов: recovery, request id, трассировка,
// лог запросов и служебные /ping, /metrics.
func newEngine(log ports.Logger, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestLogger(log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.NoRoute(func(c *gin.Context) { c.JSON(http.StatusNotFound, gin.H{"error": "not found"}) })
	r.NoMethod(func(c *gin.Context) { c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"}) })

	return r
}

// NewBrowserRouter — веб-обозреватель строк заказов.
func NewBrowserRouter(h *BrowserHandler, otelServiceName string) *gin.Engine {
	r := newEngine(h.log, otelServiceName)
	r.SetHTMLTemplate(pageTemplate)

	s := r.Group("/", sessionMiddleware(h.secureCookie))
	s.GET("/", h.index)
	s.GET("/view", h.view)
	s.POST("/filter", h.filter)
	s.POST("/package", h.selectPackage)
	s.POST("/page", h.changePage)
	s.POST("/reload", h.reload)

	return r
}

// NewAPIRouter — сервис строк заказов (GET /api/orderlines).
func NewAPIRouter(h *APIHandler, otelServiceName string) *gin.Engine {
	r := newEngine(h.log, otelServiceName)
	r.GET("/api/orderlines", h.listOrderLines)
	return r
}
