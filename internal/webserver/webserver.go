package webserver

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/devservices/devshop/config"
)

// WebServer hosts the JSON API under /api and the pre-built SPA assets
// everywhere else.
type WebServer struct {
	appConfig *config.AppConfig
	root      *echo.Echo
	api       *echo.Group
}

var server *WebServer

// Init builds the package web server instance.
func Init(cfg *config.AppConfig) *WebServer {
	server = New(cfg)
	return server
}

// New assembles an echo server with the standard middleware chain, the
// /api group and the static/SPA routes.
func New(cfg *config.AppConfig) *WebServer {
	ws := &WebServer{appConfig: cfg}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = jsonSerializer{}

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			zap.L().Info("http request", fields...)
			return nil
		},
	}))

	ws.root = e
	ws.api = e.Group("/api")

	// A path under the API prefix that matched no API route must 404
	// and never fall through to the SPA shell.
	ws.api.Any("/*", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, echo.Map{"detail": "API endpoint not found"})
	})

	ws.registerStatic()
	return ws
}

// Echo exposes the underlying server, mainly for tests.
func (ws *WebServer) Echo() *echo.Echo {
	return ws.root
}

// ApiGET registers a GET handler under the /api prefix.
func (ws *WebServer) ApiGET(path string, h echo.HandlerFunc) {
	ws.api.GET(path, h)
}

// ApiPOST registers a POST handler under the /api prefix.
func (ws *WebServer) ApiPOST(path string, h echo.HandlerFunc) {
	ws.api.POST(path, h)
}

// Listen starts serving on the configured address and blocks.
func Listen() error {
	addr := fmt.Sprintf("%s:%d", server.appConfig.Web.Host, server.appConfig.Web.Port)
	zap.L().Info("starting web server", zap.String("addr", addr))
	return server.root.Start(addr)
}

// Shutdown stops the package web server gracefully.
func Shutdown(ctx context.Context) error {
	if server == nil {
		return nil
	}
	return server.root.Shutdown(ctx)
}
