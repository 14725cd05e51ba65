package audio

import (
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/domain"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, mw middleware.Stack) {
	g := r.Group("/cobranca-ponto")
	g.Use(mw.Protected()...)

	g.POST("/upload-audio",
		middleware.RateLimitByUser(0.5, 3),
		mw.Can(domain.ResourceOutreach, domain.ActionCreate),
		handler.Upload,
	)
}

// RegisterMedia serves the local backend's directory. It is a no-op for
// remote backends.
func RegisterMedia(r gin.IRoutes, storage Storage) {
	if local, ok := storage.(*LocalStorage); ok {
		r.Static(MediaPath, local.Dir())
	}
}
