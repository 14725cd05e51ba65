package campaign

import (
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/domain"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, mw middleware.Stack) {
	g := r.Group("/listas-cobranca")
	g.Use(mw.Protected()...)

	read := mw.Can(domain.ResourceCampaign, domain.ActionRead)
	write := mw.Can(domain.ResourceCampaign, domain.ActionUpdate)

	g.GET("", middleware.RateLimitByUser(3, 10), read, handler.List)
	g.GET("/ativa", middleware.RateLimitByUser(3, 10), read, handler.Active)
	g.GET("/:id", middleware.RateLimitByUser(3, 10), read, handler.Get)
	g.POST("",
		middleware.RateLimitByUser(0.5, 2),
		mw.Can(domain.ResourceCampaign, domain.ActionCreate),
		handler.Create,
	)
	g.POST("/:id/finalizar", middleware.RateLimitByUser(1, 5), write, handler.Finalize)
	g.POST("/fechar-mes",
		middleware.RateLimitByUser(0.2, 1),
		mw.Can(domain.ResourceCampaign, domain.ActionManage),
		handler.CloseMonth,
	)

	items := r.Group("/cobrancas")
	items.Use(mw.Protected()...)
	items.PATCH("/:id/status-envio", middleware.RateLimitByUser(5, 20), write, handler.UpdateItemStatus)
	items.PATCH("/:id/status-resposta", middleware.RateLimitByUser(5, 20), write, handler.UpdateItemResponse)
	items.PATCH("/status-envio", middleware.RateLimitByUser(1, 5), write, handler.BulkUpdateItemStatus)
}
