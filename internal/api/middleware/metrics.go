package middleware

import (
	"strconv"
	"time"

	"job-board-api/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics instruments requests with Prometheus metrics, labelled by the
// matched route template to keep cardinality bounded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveHTTPRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
