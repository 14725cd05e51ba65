package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const CallbackSecretHeader = "X-Webhook-Secret"

// CallbackSecret guards the automation endpoints with a shared secret.
// An empty secret leaves them open.
func CallbackSecret(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}

		got := c.GetHeader(CallbackSecretHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
			response.Fail(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}
		c.Next()
	}
}
