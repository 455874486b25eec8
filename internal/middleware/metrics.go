package middleware

import (
	"strconv"

	"uniformes/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics counts every request by method, matched route and status. Unmatched
// paths share one label so scanners cannot blow up the cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestsTotal.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Inc()
	}
}
