package middleware

import (
	"time"

	"sweet-shop/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/atomic"
)

const requestIdHeader = "X-Request-Id"

var requestCount atomic.Int64

// RequestIdMiddleware tags every request with a UUID, counts it, and logs
// its completion.
func RequestIdMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIdHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIdHeader, id)
		requestCount.Inc()

		start := time.Now()
		c.Next()

		logger.Debugf("%s %s %d %s (%s)",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(),
			time.Since(start), id)
	}
}

// RequestsServed returns the number of requests handled since startup.
func RequestsServed() int64 {
	return requestCount.Load()
}
