// Package httpapi serves the color tools over HTTP.
//
// It is an alternative transport to the stdio MCP server. Tool calls go
// through the same server.ExecuteTool dispatch, so both transports behave
// identically.
//
// Routes:
//
//	GET  /healthz               liveness probe
//	GET  /tools                 tool definitions
//	POST /tools/:name           run a tool; the request body is its arguments
//	GET  /colors/:hex           describe a color ("2bd9d9", no leading '#')
//	GET  /colors/:hex/:scheme   harmony palette for a color
package httpapi

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ironsheep/color-harmony-mcp/internal/harmony"
	"github.com/ironsheep/color-harmony-mcp/internal/palette"
	"github.com/ironsheep/color-harmony-mcp/internal/server"
)

// maxBodyBytes matches the stdio server's line limit.
const maxBodyBytes = 1024 * 1024

// New builds the router. Gin's mode is left to the caller.
func New(srv *server.Server) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if srv.Config().Debug() {
		r.Use(gin.Logger())
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": server.Version})
	})

	r.GET("/tools", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"tools": server.GetToolDefinitions()})
	})

	r.POST("/tools/:name", func(c *gin.Context) {
		body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
		if err != nil {
			errorOut(c, http.StatusBadRequest, err)
			return
		}
		if len(body) == 0 {
			body = []byte("{}")
		}
		result, err := srv.ExecuteTool(c.Param("name"), body)
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, server.ErrUnknownTool) {
				status = http.StatusNotFound
			}
			errorOut(c, status, err)
			return
		}
		c.JSON(http.StatusOK, result)
	})

	colors := r.Group("/colors")
	colors.GET("/:hex", func(c *gin.Context) {
		result, err := palette.Describe(hexParam(c))
		if err != nil {
			errorOut(c, http.StatusBadRequest, err)
			return
		}
		c.JSON(http.StatusOK, result)
	})
	colors.GET("/:hex/:scheme", func(c *gin.Context) {
		base, err := harmony.ParseHex(hexParam(c))
		if err != nil {
			errorOut(c, http.StatusBadRequest, err)
			return
		}

		cfg := srv.Config()
		opts := palette.Options{
			Step:           cfg.Defaults.Step,
			AnalogousCount: cfg.Defaults.AnalogousCount,
		}
		if n, err := strconv.Atoi(c.Query("count")); err == nil {
			opts.AnalogousCount = n
		}
		if step, err := strconv.ParseFloat(c.Query("step"), 64); err == nil {
			opts.Step = step
		}
		if second := c.Query("second"); second != "" {
			s, err := harmony.ParseHex(normalizeHex(second))
			if err != nil {
				errorOut(c, http.StatusBadRequest, err)
				return
			}
			opts.Second = &s
		}

		p, err := palette.Build(palette.Scheme(c.Param("scheme")), base, opts)
		if err != nil {
			errorOut(c, http.StatusBadRequest, err)
			return
		}
		c.JSON(http.StatusOK, p)
	})

	return r
}

// hexParam reads the :hex path parameter.
func hexParam(c *gin.Context) string {
	return normalizeHex(c.Param("hex"))
}

// normalizeHex adds the leading '#' that URLs leave out.
func normalizeHex(s string) string {
	if strings.HasPrefix(s, "#") {
		return s
	}
	return "#" + s
}

func errorOut(c *gin.Context, status int, err error) {
	body := gin.H{"error": err.Error()}
	if errors.Is(err, harmony.ErrInvalidFormat) {
		body["expected"] = "#rrggbb"
	}
	c.AbortWithStatusJSON(status, body)
}
