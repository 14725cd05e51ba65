package user

import (
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, mw middleware.Stack) {
	admin := r.Group("/admin/users")
	admin.POST("", append(mw.AdminOnly(), middleware.RateLimitByUser(0.2, 3), handler.Provision)...)
	admin.GET("", handler.MethodNotAllowed)

	users := r.Group("/usuarios")
	users.Use(mw.Protected()...)
	users.Use(middleware.RequireAdmin())
	{
		users.GET("", middleware.RateLimitByUser(3, 10), handler.List)
		users.PATCH("/:id/status", middleware.RateLimitByUser(0.5, 2), handler.SetStatus)
	}
}
