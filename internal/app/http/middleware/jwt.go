package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ctxAdminID = "admin_id"
	ctxRole    = "role"
	ctxEmail   = "email"
	ctxToken   = "token"
)

// AuthMiddleware verifies the admin's bearer token and keeps the raw token so
// it can be forwarded to the Ruangobat API.
func AuthMiddleware(secret string) gin.HandlerFunc {
	jwtKey := []byte(secret)
	return func(c *gin.Context) {
		if len(jwtKey) == 0 {
			abort(c, http.StatusInternalServerError, "InternalServerError", "JWT secret not configured")
			return
		}
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, http.StatusUnauthorized, "Unauthorized", "Authorization header missing")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			abort(c, http.StatusUnauthorized, "Unauthorized", "Bearer token malformed")
			return
		}
		tokenString = strings.TrimSpace(tokenString)

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return jwtKey, nil
		})
		if err != nil || !token.Valid {
			abort(c, http.StatusUnauthorized, "Unauthorized", "Invalid or expired token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abort(c, http.StatusUnauthorized, "Unauthorized", "Invalid token claims")
			return
		}

		if email, ok := claims["email"].(string); ok {
			c.Set(ctxEmail, email)
		}
		if role, ok := claims["role"].(string); ok {
			c.Set(ctxRole, role)
		}
		// user_id is a string on Ruangobat tokens, a number on older ones.
		switch id := claims["user_id"].(type) {
		case string:
			c.Set(ctxAdminID, id)
		case float64:
			c.Set(ctxAdminID, strconv.FormatInt(int64(id), 10))
		}
		if c.GetString(ctxAdminID) == "" {
			abort(c, http.StatusUnauthorized, "Unauthorized", "Token carries no user id")
			return
		}
		c.Set(ctxToken, tokenString)
		c.Next()
	}
}

func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(ctxRole)
		if !exists {
			abort(c, http.StatusUnauthorized, "Unauthorized", "Role not found in token")
			return
		}
		if value != role {
			abort(c, http.StatusForbidden, "Forbidden", "Access denied")
			return
		}
		c.Next()
	}
}

// CurrentAdmin returns the admin id and raw bearer token set by AuthMiddleware.
func CurrentAdmin(c *gin.Context) (adminID, token string) {
	return c.GetString(ctxAdminID), c.GetString(ctxToken)
}

func abort(c *gin.Context, status int, name, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"status_code": status,
		"error":       gin.H{"name": name, "message": message},
	})
}
