package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"backend/internal/config"
	"backend/internal/middleware"
)

func handlePanic(c *gin.Context, route string) {
	if r := recover(); r != nil {
		log.Printf("[%s] panic recovered: %v", route, r)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func respondWithError(c *gin.Context, status int, route string, message string) {
	log.Printf("[%s] returning error %d: %s", route, status, message)
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// requestContext bounds store calls with the configured request timeout.
func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	timeout := config.AppEnv.RequestTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return context.WithTimeout(c.Request.Context(), timeout)
}

func callerID(c *gin.Context) string {
	return c.GetString(middleware.CtxUserID)
}
