package rbac

import (
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/domain"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, mw middleware.Stack) {
	g := r.Group("/rbac")
	g.Use(mw.Protected()...)

	g.POST("/enforce", middleware.RateLimitByUser(5, 20), handler.Enforce)
	g.POST("/reload",
		middleware.RateLimitByUser(0.1, 1),
		mw.Can(domain.ResourceRBAC, domain.ActionManage),
		handler.Reload,
	)
}
