package response

import (
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

// The n8n, upload and provisioning endpoints answer with flat bodies
// ({success, ...} or {error}) instead of the envelope, since external
// callers parse them directly.

func Ack(c *gin.Context, status int, body gin.H) {
	if body == nil {
		body = gin.H{}
	}
	body["success"] = true
	c.JSON(status, body)
}

func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func FailFromError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	c.JSON(httpErr.Status, gin.H{
		"error": httpErr.Message,
		"code":  httpErr.Code,
	})
}
