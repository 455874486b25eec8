package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"uniformes/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ErrorHandler answers errors pushed with c.Error that no handler has already
// answered. The client only sees a generic message chosen by the error kind;
// the cause stays in the log.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		kind, status, detail := clasificarError(err)

		ev := log.Error()
		if kind == "cancelled" {
			ev = log.Warn()
		}
		ev.Str("request_id", c.GetString(RequestIDKey)).
			Str("route", c.FullPath()).
			Str("method", c.Request.Method).
			Str("kind", kind).
			Int("errors", len(c.Errors)).
			Err(err).
			Msg("unhandled error")

		if c.Writer.Written() {
			return
		}
		c.AbortWithStatusJSON(status, apierror.New(detail))
	}
}

// clasificarError maps an unexpected error to a log kind and the answer the
// client gets. Context errors come from a slow database or a gone client.
func clasificarError(err error) (kind string, status int, detail string) {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout", http.StatusGatewayTimeout, "La operación excedió el tiempo de espera"
	case errors.Is(err, context.Canceled):
		return "cancelled", http.StatusServiceUnavailable, "Solicitud cancelada"
	default:
		return "internal", http.StatusInternalServerError, "Error interno del servidor"
	}
}

// Recovery handles panics and converts them into 500 responses.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Str("request_id", c.GetString(RequestIDKey)).
					Interface("panic", r).
					Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
			}
		}()
		c.Next()
	}
}

// Logger logs each request with method, path, status, latency, and request_id.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("request_id", c.GetString(RequestIDKey)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("route", c.FullPath()).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
