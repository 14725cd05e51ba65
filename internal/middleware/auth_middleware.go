package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/apperror"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var (
	errTokenMissing = apperror.New(apperror.CodeUnauthorized, "Token not found", http.StatusUnauthorized)
	errTokenInvalid = apperror.New(apperror.CodeUnauthorized, "Invalid token", http.StatusUnauthorized)
	errTokenExpired = apperror.New(apperror.CodeUnauthorized, "Token expired", http.StatusUnauthorized)
	errNoSubject    = apperror.New(apperror.CodeUnauthorized, "User ID not found in token", http.StatusUnauthorized)
)

// AuthMiddleware validates the access token from the Authorization header
// or the access_token cookie and stores the auth id and role claims.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := authenticate(c, secret); err != nil {
			response.FromError(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}

// FlatAuthMiddleware is AuthMiddleware for endpoints that answer {error}.
func FlatAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := authenticate(c, secret); err != nil {
			response.Fail(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}
		c.Next()
	}
}

func authenticate(c *gin.Context, secret string) error {
	tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if !found {
		tokenString = ""
	}
	if tokenString == "" {
		if cookie, err := c.Cookie("access_token"); err == nil {
			tokenString = cookie
		}
	}
	if tokenString == "" {
		return errTokenMissing
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return errTokenExpired
		}
		return errTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return errTokenInvalid
	}
	// refresh tokens are only good at /auth/refresh
	if typ, _ := claims["typ"].(string); typ == "refresh" {
		return errTokenInvalid
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return errNoSubject
	}
	role, _ := claims["role"].(string)

	c.Set("user_id", userID)
	c.Set("role", role)
	return nil
}
