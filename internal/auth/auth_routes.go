package auth

import (
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, mw middleware.Stack) {
	g := r.Group("/auth")

	g.POST("/login", middleware.RateLimitByIP(0.08, 5), handler.Login)
	g.POST("/refresh", middleware.RateLimitByIP(0.5, 5), handler.RefreshToken)
	g.POST("/logout", handler.Logout)

	me := append(mw.Protected(), middleware.RateLimitByUser(2, 5), handler.Me)
	g.GET("/me", me...)
}
