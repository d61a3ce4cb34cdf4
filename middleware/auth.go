package middleware

import (
	"strings"

	"github.com/NabeelAltarteer/GetEmpStatusBE/response"
	"github.com/NabeelAltarteer/GetEmpStatusBE/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards ops endpoints with a bearer token
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		email, err := services.ParseOpsToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("opsEmail", email)
		c.Next()
	}
}
