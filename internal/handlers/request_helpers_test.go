package handlers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"backend/internal/config"
)

func testGinContext(t *testing.T) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	return c
}

func TestRequestContextUsesConfiguredTimeout(t *testing.T) {
	previous := config.AppEnv.RequestTimeout
	config.AppEnv.RequestTimeout = 30 * time.Second
	defer func() { config.AppEnv.RequestTimeout = previous }()

	ctx, cancel := requestContext(testGinContext(t))
	defer cancel()

	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatal("no deadline set")
	}
	if remaining := time.Until(deadline); remaining <= 10*time.Second {
		t.Fatalf("configured timeout not applied, %v remaining", remaining)
	}
}

func TestRequestContextFallsBackWhenUnconfigured(t *testing.T) {
	previous := config.AppEnv.RequestTimeout
	config.AppEnv.RequestTimeout = 0
	defer func() { config.AppEnv.RequestTimeout = previous }()

	ctx, cancel := requestContext(testGinContext(t))
	defer cancel()

	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatal("no deadline set")
	}
	if remaining := time.Until(deadline); remaining <= 0 || remaining > 5*time.Second {
		t.Fatalf("fallback timeout out of range, %v remaining", remaining)
	}
}
