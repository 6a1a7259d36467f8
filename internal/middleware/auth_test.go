package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	return signed
}

func runGuard(t *testing.T, guard gin.HandlerFunc, authHeader string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	r := gin.New()
	reached := false
	r.GET("/probe", guard, func(c *gin.Context) {
		reached = true
		c.JSON(http.StatusOK, gin.H{"userId": c.GetString(CtxUserID), "role": c.GetString(CtxRole)})
	})

	req := httptest.NewRequest("GET", "/probe", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)
	return w, reached
}

func TestAuthGuardMissingToken(t *testing.T) {
	w, reached := runGuard(t, AuthGuard(testSecret, RoleVendor), "")
	if w.Code != http.StatusUnauthorized || reached {
		t.Fatalf("status = %d reached=%v, want 401 and no handler", w.Code, reached)
	}
}

func TestAuthGuardWrongRole(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"sub": "u1", "role": RoleCustomer})
	w, reached := runGuard(t, AuthGuard(testSecret, RoleVendor), "Bearer "+token)
	if w.Code != http.StatusForbidden || reached {
		t.Fatalf("status = %d reached=%v, want 403 and no handler", w.Code, reached)
	}
}

func TestAuthGuardAcceptsMatchingRole(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"sub": "u1", "role": RoleVendor, "email": "v@example.com"})
	w, reached := runGuard(t, AuthGuard(testSecret, RoleVendor), "Bearer "+token)
	if w.Code != http.StatusOK || !reached {
		t.Fatalf("status = %d reached=%v, want 200", w.Code, reached)
	}
}

func TestAuthGuardRejectsBadSignature(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u1", "role": RoleVendor})
	signed, _ := token.SignedString([]byte("other-secret"))
	w, reached := runGuard(t, AuthGuard(testSecret, RoleVendor), "Bearer "+signed)
	if w.Code != http.StatusUnauthorized || reached {
		t.Fatalf("status = %d reached=%v, want 401", w.Code, reached)
	}
}

func TestAuthGuardRequiresSubject(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"role": RoleVendor})
	w, reached := runGuard(t, AuthGuard(testSecret, RoleVendor), "Bearer "+token)
	if w.Code != http.StatusUnauthorized || reached {
		t.Fatalf("status = %d reached=%v, want 401", w.Code, reached)
	}
}

func TestAdminAuthChecksAllowList(t *testing.T) {
	allowList := map[string]bool{"ops@example.com": true}
	isAdmin := func(email string) bool { return allowList[email] }

	token := signToken(t, jwt.MapClaims{"sub": "u9", "email": "ops@example.com", "role": RoleCustomer})
	w, reached := runGuard(t, AdminAuth(testSecret, isAdmin), "Bearer "+token)
	if w.Code != http.StatusOK || !reached {
		t.Fatalf("allow-listed email rejected: status = %d", w.Code)
	}

	token = signToken(t, jwt.MapClaims{"sub": "u9", "email": "someone@example.com", "role": RoleAdmin})
	w, reached = runGuard(t, AdminAuth(testSecret, isAdmin), "Bearer "+token)
	if w.Code != http.StatusForbidden || reached {
		t.Fatalf("role claim must not grant admin: status = %d reached=%v", w.Code, reached)
	}
}
