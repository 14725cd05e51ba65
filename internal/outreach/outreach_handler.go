package outreach

import (
	"context"
	"errors"
	"net/http"

	outreacherrors "github.com/lFelipelalves/Crm-Wsc-Clean/internal/outreach/errors"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/apperror"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DispatchService interface {
	Dispatch(ctx context.Context, req DispatchRequest) (DispatchResult, error)
}

type DeliveryService interface {
	Send(ctx context.Context, logID string) (SendResult, error)
}

type QueryService interface {
	ListByPeriod(ctx context.Context, period string) ([]LogResponse, error)
	ListByEntry(ctx context.Context, entryID string) ([]LogResponse, error)
	StatsByPeriod(ctx context.Context, period string) (PeriodStats, error)
	Pending(ctx context.Context) ([]PendingCharge, error)
}

type Handler struct {
	dispatcher DispatchService
	sender     DeliveryService
	recorder   OutcomeRecorder
	queries    QueryService
	logger     *zap.Logger
}

func NewHandler(dispatcher DispatchService, sender DeliveryService, recorder OutcomeRecorder, queries QueryService, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("outreach.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("outreach.handler")
	}
	return &Handler{dispatcher: dispatcher, sender: sender, recorder: recorder, queries: queries, logger: l}
}

// writeFlatError answers with the {error} body the automation side parses.
func (h *Handler) writeFlatError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("outreach request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Fail(c, httpErr.Status, httpErr.Message)
}

func (h *Handler) Dispatch(c *gin.Context) {
	var req DispatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "JSON inválido")
		return
	}

	res, err := h.dispatcher.Dispatch(c.Request.Context(), req)
	if err != nil {
		h.writeFlatError(c, err)
		return
	}

	response.Ack(c, http.StatusOK, gin.H{
		"logs_criados": res.LogsCreated,
		"message":      res.Message,
		"agendado":     res.Scheduled,
	})
}

func (h *Handler) Send(c *gin.Context) {
	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "JSON inválido")
		return
	}

	res, err := h.sender.Send(c.Request.Context(), req.LogID)
	if errors.Is(err, outreacherrors.ErrDeliveryFailed) {
		h.logger.Warn("delivery failed", zap.String("log_id", req.LogID), zap.String("reason", res.Error))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": res.Error})
		return
	}
	if err != nil {
		h.writeFlatError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req OutcomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, outreacherrors.ErrOutcomeFieldsRequired.Message)
		return
	}

	err := h.recorder.ApplyOutcome(c.Request.Context(), Outcome{
		LogID:        req.LogID,
		Status:       req.Status,
		Response:     req.WebhookResponse,
		ErrorMessage: req.ErrorMessage,
	})
	if err != nil {
		h.writeFlatError(c, err)
		return
	}

	response.Ack(c, http.StatusOK, gin.H{"message": "Status atualizado com sucesso"})
}

func (h *Handler) Pending(c *gin.Context) {
	rows, err := h.queries.Pending(c.Request.Context())
	if err != nil {
		h.writeFlatError(c, err)
		return
	}
	response.Ack(c, http.StatusOK, gin.H{"total": len(rows), "cobrancas": rows})
}

func (h *Handler) ListByPeriod(c *gin.Context) {
	rows, err := h.queries.ListByPeriod(c.Request.Context(), c.Query("competencia"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, rows, nil)
}

func (h *Handler) ListByEntry(c *gin.Context) {
	rows, err := h.queries.ListByEntry(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, rows, nil)
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.queries.StatsByPeriod(c.Request.Context(), c.Query("competencia"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, stats, nil)
}
