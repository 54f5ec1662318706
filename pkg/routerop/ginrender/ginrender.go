package ginrender

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ib-77/routerop/pkg/routerop"
	"github.com/ib-77/routerop/pkg/routerop/render"
)

// loggerKey is the gin context key middleware conventionally stores the
// request-scoped logger under.
const loggerKey = "logger"

// Respond encodes o and writes it to the response. Failure statuses abort
// the gin handler chain, matching gin's error helpers.
func Respond[T any](c *gin.Context, o routerop.Outcome[T]) {
	resp := render.Encode(o, loggerFrom(c))
	render.Apply(c.Writer, resp)
	if resp.Status >= http.StatusBadRequest {
		c.Abort()
	}
}

// Wrap adapts an outcome-returning handler body.
func Wrap[T any](h func(*gin.Context) routerop.Outcome[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		Respond(c, h(c))
	}
}

func loggerFrom(c *gin.Context) zerolog.Logger {
	if v, ok := c.Get(loggerKey); ok {
		if lg, ok := v.(*zerolog.Logger); ok {
			return *lg
		}
	}
	if c.Request != nil {
		return *zerolog.Ctx(c.Request.Context())
	}
	return zerolog.Nop()
}
