package roster

import (
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/domain"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, mw middleware.Stack) {
	g := r.Group("/cobranca-ponto")
	g.Use(mw.Protected()...)

	read := mw.Can(domain.ResourceRoster, domain.ActionRead)
	write := mw.Can(domain.ResourceRoster, domain.ActionUpdate)

	g.GET("/empresas", middleware.RateLimitByUser(3, 10), read, handler.ListActive)
	g.GET("/empresas/disponiveis", middleware.RateLimitByUser(3, 10), read, handler.ListAvailableCompanies)
	g.GET("/stats", middleware.RateLimitByUser(5, 20), read, handler.Stats)

	g.POST("/empresas",
		middleware.RateLimitByUser(1, 5),
		mw.Can(domain.ResourceRoster, domain.ActionCreate),
		handler.Add,
	)
	g.DELETE("/empresas/:id",
		middleware.RateLimitByUser(0.5, 2),
		mw.Can(domain.ResourceRoster, domain.ActionDelete),
		handler.Remove,
	)
	g.PATCH("/empresas/:id/status", middleware.RateLimitByUser(2, 10), write, handler.UpdateStatus)
	g.PATCH("/empresas/:id/observacoes", middleware.RateLimitByUser(2, 10), write, handler.UpdateNotes)
	g.PATCH("/empresas/:id/telefone", middleware.RateLimitByUser(2, 10), write, handler.UpdatePhone)

	g.POST("/reset",
		middleware.RateLimitByUser(0.2, 1),
		mw.Can(domain.ResourceRoster, domain.ActionManage),
		handler.Reset,
	)
}
