package company

import (
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/domain"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, mw middleware.Stack) {
	companies := r.Group("/empresas")
	companies.Use(mw.Protected()...)
	{
		companies.GET("",
			middleware.RateLimitByUser(3, 10),
			mw.Can(domain.ResourceCompany, domain.ActionRead),
			handler.List,
		)
		companies.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			mw.Can(domain.ResourceCompany, domain.ActionRead),
			handler.GetByID,
		)
		companies.POST("",
			middleware.RateLimitByUser(1, 5),
			mw.Can(domain.ResourceCompany, domain.ActionCreate),
			handler.Create,
		)
		companies.PATCH("/:id",
			middleware.RateLimitByUser(1, 5),
			mw.Can(domain.ResourceCompany, domain.ActionUpdate),
			handler.Update,
		)
		companies.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			mw.Can(domain.ResourceCompany, domain.ActionDelete),
			handler.Deactivate,
		)
	}
}
