package webserver

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// registerStatic wires the non-API routes. Resolution priority for any
// path outside /api:
//
//  1. an existing regular file under the asset root is served as-is
//  2. everything else gets the SPA entry document with status 200, so
//     client-side routes resolve to the app shell
//
// When the asset root is missing (frontend not built), every non-API
// path returns a diagnostic JSON payload instead.
func (ws *WebServer) registerStatic() {
	dir := ws.appConfig.Web.StaticDir

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		zap.L().Warn("static directory not found, serving diagnostics only",
			zap.String("dir", dir))
		ws.root.GET("/*", ws.noStaticFallback)
		return
	}
	zap.L().Info("serving static files", zap.String("dir", dir))

	// React builds nest their hashed assets under a second static/
	// level; mount it directly when present.
	nested := filepath.Join(dir, "static")
	if st, err := os.Stat(nested); err == nil && st.IsDir() {
		ws.root.Static("/static", nested)
	}

	ws.root.GET("/favicon.ico", ws.topLevelFile("favicon.ico", false))
	ws.root.GET("/manifest.json", ws.topLevelFile("manifest.json", false))
	// robots.txt degrades to the SPA entry document rather than a 404.
	ws.root.GET("/robots.txt", ws.topLevelFile("robots.txt", true))

	ws.root.GET("/*", ws.serveSPA)
}

// topLevelFile serves one special-cased file from the asset root.
func (ws *WebServer) topLevelFile(name string, indexFallback bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		path := filepath.Join(ws.appConfig.Web.StaticDir, name)
		if st, err := os.Stat(path); err == nil && st.Mode().IsRegular() {
			return c.File(path)
		}
		if indexFallback {
			return ws.serveIndex(c)
		}
		return c.JSON(http.StatusNotFound, echo.Map{"detail": name + " not found"})
	}
}

func (ws *WebServer) serveSPA(c echo.Context) error {
	p := c.Param("*")
	if strings.HasPrefix(p, "api/") {
		return c.JSON(http.StatusNotFound, echo.Map{"detail": "API endpoint not found"})
	}

	// Clean against the root so ../ segments cannot escape it.
	path := filepath.Join(ws.appConfig.Web.StaticDir, filepath.Clean("/"+p))
	if st, err := os.Stat(path); err == nil && st.Mode().IsRegular() {
		return c.File(path)
	}

	return ws.serveIndex(c)
}

func (ws *WebServer) serveIndex(c echo.Context) error {
	index := filepath.Join(ws.appConfig.Web.StaticDir, "index.html")
	if st, err := os.Stat(index); err == nil && st.Mode().IsRegular() {
		return c.File(index)
	}
	return c.JSON(http.StatusNotFound, echo.Map{"detail": "Application not found"})
}

func (ws *WebServer) noStaticFallback(c echo.Context) error {
	p := c.Param("*")
	if strings.HasPrefix(p, "api/") {
		return c.JSON(http.StatusNotFound, echo.Map{"detail": "API endpoint not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"error": "Static files not found. Please build the frontend first.",
	})
}
