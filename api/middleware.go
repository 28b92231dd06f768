package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The marketplace web UI is served from a different origin than this
// API, so every response carries a permissive CORS policy. The surface
// is unauthenticated search and catalog management; there is nothing
// origin-scoped to protect.
const (
	corsAllowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
	corsAllowedHeaders = "Content-Type, Authorization"
)

// RequestSizeLimitMiddleware caps request bodies. Search queries and
// listing payloads are small JSON documents; anything larger fails to
// bind and the handler rejects it.
func RequestSizeLimitMiddleware(maxSize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)
		c.Next()
	}
}

// CORSMiddleware answers browser preflight requests and stamps the
// CORS headers on every response.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", corsAllowedMethods)
		c.Header("Access-Control-Allow-Headers", corsAllowedHeaders)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
