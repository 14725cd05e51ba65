package outreach

import (
	"time"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/domain"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const dispatchIdempotencyTTL = 24 * time.Hour

type RouteOptions struct {
	Redis          *redis.Client
	CallbackSecret string
}

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, mw middleware.Stack, opts RouteOptions) {
	g := r.Group("/cobranca-ponto")
	g.Use(mw.Protected()...)
	{
		dispatch := []gin.HandlerFunc{
			middleware.RateLimitByUser(0.5, 3),
			mw.Can(domain.ResourceOutreach, domain.ActionCreate),
		}
		if opts.Redis != nil {
			dispatch = append(dispatch, middleware.Idempotency(opts.Redis, dispatchIdempotencyTTL))
		}
		g.POST("/disparar", append(dispatch, handler.Dispatch)...)

		g.POST("/enviar",
			middleware.RateLimitByUser(2, 10),
			mw.Can(domain.ResourceOutreach, domain.ActionCreate),
			handler.Send,
		)

		read := mw.Can(domain.ResourceOutreach, domain.ActionRead)
		g.GET("/logs", middleware.RateLimitByUser(5, 20), read, handler.ListByPeriod)
		g.GET("/logs/stats", middleware.RateLimitByUser(5, 20), read, handler.Stats)
		g.GET("/empresas/:id/logs", middleware.RateLimitByUser(5, 20), read, handler.ListByEntry)
	}

	n8n := r.Group("/n8n")
	n8n.Use(middleware.CallbackSecret(opts.CallbackSecret), middleware.RateLimitByIP(20, 50))
	{
		n8n.POST("/atualizar-status", handler.UpdateStatus)
		n8n.GET("/cobrancas-pendentes", handler.Pending)
	}
}
