package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"go-careerpath-backend/internal/delivery/http/response"
	"go-careerpath-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates the bearer token and loads the user identity
// into both the gin context and the request context.
func AuthMiddleware(jwtSecret string, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		var tokenString string

		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else {
			cookie, err := c.Cookie("auth_token")
			if err == nil && cookie != "" {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Invalid claims", nil)
			c.Abort()
			return
		}
		sub, _ := claims["sub"].(string)

		// Confirm the subject still exists rather than trusting the token
		// alone; deleted accounts keep valid tokens until expiry otherwise.
		user, err := authUC.GetCurrentUser(c.Request.Context(), sub)
		if err != nil || user == nil {
			response.Error(c, http.StatusUnauthorized, "User not found", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUsername), user.Username)

		ctx := context.WithValue(c.Request.Context(), domain.KeyUserID, user.ID)
		ctx = context.WithValue(ctx, domain.KeyUsername, user.Username)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
