package rbac

import (
	"net/http"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/domain"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/apperror"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/contextutil"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("rbac.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Enforce(c *gin.Context) {
	var req domain.EnforceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	allowed, err := h.service.Enforce(req)
	if err != nil {
		response.FromError(c, apperror.WithCause(apperror.ErrInternal, err))
		return
	}
	response.Success(c, http.StatusOK, domain.EnforceResponse{Allowed: allowed}, nil)
}

func (h *Handler) Reload(c *gin.Context) {
	log := contextutil.GetLogger(c.Request.Context(), h.logger)
	if err := h.service.Reload(c.Request.Context()); err != nil {
		log.Error("rbac reload failed", zap.Error(err))
		response.FromError(c, apperror.WithCause(apperror.ErrUpstream, err))
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reloaded": true}, nil)
}
