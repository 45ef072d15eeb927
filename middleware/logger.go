package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger prints one line per request. Image and export bodies are never
// logged.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		marker := "⬅️"
		if status >= http.StatusInternalServerError {
			marker = "❌"
		} else if status >= http.StatusBadRequest {
			marker = "⚠️"
		}
		log.Printf("%s %s %s %s %d %s", marker, c.Request.Method, c.Request.URL.Path, c.ClientIP(), status, time.Since(start))
	}
}

