package monitor

import (
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/domain"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, mw middleware.Stack) {
	g := r.Group("/cobranca-ponto")
	g.Use(mw.Protected()...)
	g.GET("/monitor",
		middleware.RateLimitByUser(0.2, 2),
		mw.Can(domain.ResourceOutreach, domain.ActionRead),
		handler.Stream,
	)
}
