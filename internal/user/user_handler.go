package user

import (
	"net/http"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/apperror"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("user.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.handler")
	}
	return &Handler{service: service, logger: l}
}

// Provision answers with flat bodies; the admin UI reads error and code
// directly.
func (h *Handler) Provision(c *gin.Context) {
	var req ProvisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Missing fields")
		return
	}

	user, err := h.service.Provision(c.Request.Context(), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("provisioning failed", zap.Int("status", httpErr.Status), zap.Error(err))
		if httpErr.Code == apperror.CodePartialFailure {
			response.FailFromError(c, err)
			return
		}
		response.Fail(c, httpErr.Status, httpErr.Message)
		return
	}

	response.Ack(c, http.StatusCreated, gin.H{"user": user})
}

func (h *Handler) MethodNotAllowed(c *gin.Context) {
	response.Fail(c, http.StatusMethodNotAllowed, "Method not allowed")
}

func (h *Handler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, users, nil)
}

func (h *Handler) SetStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	user, err := h.service.SetStatus(c.Request.Context(), c.Param("id"), *req.Active)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, user, nil)
}
