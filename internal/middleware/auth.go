package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys populated by the guards.
const (
	CtxUserID = "userId"
	CtxEmail  = "email"
	CtxRole   = "role"
)

const (
	RoleAdmin    = "admin"
	RoleVendor   = "vendor"
	RoleCustomer = "customer"
	RoleSalesman = "salesman"
)

func parseBearer(c *gin.Context, secret string) (jwt.MapClaims, bool) {
	raw := strings.TrimSpace(c.GetHeader("Authorization"))
	if raw == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return nil, false
	}

	parts := strings.Split(raw, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return nil, false
	}

	token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return nil, false
	}
	return claims, true
}

func setIdentity(c *gin.Context, claims jwt.MapClaims) bool {
	userID, _ := claims["sub"].(string)
	if strings.TrimSpace(userID) == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return false
	}
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	c.Set(CtxUserID, userID)
	c.Set(CtxEmail, email)
	c.Set(CtxRole, role)
	return true
}

// AuthGuard validates the bearer token issued by the identity provider and,
// when roles are given, requires the role claim to match one of them.
func AuthGuard(secret string, allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearer(c, secret)
		if !ok {
			return
		}

		role, _ := claims["role"].(string)
		if len(allowedRoles) > 0 {
			match := false
			for _, r := range allowedRoles {
				if role == r {
					match = true
					break
				}
			}
			if !match {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
				return
			}
		}

		if !setIdentity(c, claims) {
			return
		}
		c.Next()
	}
}

func VendorAuth(secret string) gin.HandlerFunc {
	return AuthGuard(secret, RoleVendor)
}

func CustomerAuth(secret string) gin.HandlerFunc {
	return AuthGuard(secret, RoleCustomer)
}

func SalesmanAuth(secret string) gin.HandlerFunc {
	return AuthGuard(secret, RoleSalesman)
}

// AdminAuth resolves admin identity from the email claim against the injected
// allow-list. There is no stored admin role flag.
func AdminAuth(secret string, isAdminEmail func(string) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearer(c, secret)
		if !ok {
			return
		}

		email, _ := claims["email"].(string)
		if !isAdminEmail(email) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}

		if !setIdentity(c, claims) {
			return
		}
		c.Set(CtxRole, RoleAdmin)
		c.Next()
	}
}
