// Package middleware provides Gin middleware shared by all storefront
// routes: request ids, structured request logging and panic recovery.
package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const headerRequestID = "X-Request-Id"

// RequestID returns a middleware that assigns each request an id, reusing
// the caller's X-Request-Id header when present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(headerRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set("request_id", reqID)
		c.Header(headerRequestID, reqID)
		c.Next()
	}
}

// RequestLogger returns a middleware that logs one structured line per
// request with method, path, status, latency and request id.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		slog.Info("http_request",
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"bytes", c.Writer.Size(),
			"latency_ms", float64(time.Since(start).Microseconds())/1000.0,
			"client_ip", c.ClientIP(),
			"request_id", c.GetString("request_id"),
		)
	}
}

// Recovery returns a middleware that converts panics into 500 responses
// and logs them instead of killing the connection.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, err any) {
		slog.Error("http_panic",
			"path", c.Request.URL.Path,
			"request_id", c.GetString("request_id"),
			"panic", err,
		)
		c.AbortWithStatusJSON(500, gin.H{"error": "internal error"})
	})
}
