package contact

import (
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/domain"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, mw middleware.Stack) {
	byCompany := r.Group("/empresas/:id/contatos")
	byCompany.Use(mw.Protected()...)
	{
		byCompany.GET("", mw.Can(domain.ResourceContact, domain.ActionRead), handler.ListByCompany)
		byCompany.POST("",
			middleware.RateLimitByUser(1, 5),
			mw.Can(domain.ResourceContact, domain.ActionCreate),
			handler.Create,
		)
	}

	contacts := r.Group("/contatos")
	contacts.Use(mw.Protected()...)
	{
		contacts.PATCH("/:id",
			middleware.RateLimitByUser(1, 5),
			mw.Can(domain.ResourceContact, domain.ActionUpdate),
			handler.Update,
		)
		contacts.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			mw.Can(domain.ResourceContact, domain.ActionDelete),
			handler.Delete,
		)
	}
}
