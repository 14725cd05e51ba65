package monitor

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/outreach"
	outreacherrors "github.com/lFelipelalves/Crm-Wsc-Clean/internal/outreach/errors"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/poller"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/contextutil"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const writeWait = 10 * time.Second

type Handler struct {
	service  Service
	poll     poller.Config
	upgrader websocket.Upgrader
	logger   *zap.Logger
}

// NewHandler keeps gorilla's default origin check, so only pages served
// from the API's own host can open the stream with cookies.
func NewHandler(service Service, poll poller.Config, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("monitor.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("monitor.handler")
	}
	return &Handler{
		service: service,
		poll:    poll,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		logger: l,
	}
}

// Stream pushes a snapshot on every poll until the period has nothing in
// flight, the window closes or the client goes away.
func (h *Handler) Stream(c *gin.Context) {
	period := strings.TrimSpace(c.Query("competencia"))
	if period != "" && !outreach.IsValidPeriod(period) {
		response.FromError(c, outreacherrors.ErrInvalidPeriod)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already answered the client.
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	log := contextutil.GetLogger(c.Request.Context(), h.logger)
	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	// The read side only exists to notice the client closing.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	err = poller.New(h.poll, h.logger).Run(ctx, func(ctx context.Context) (bool, error) {
		snap, err := h.service.Snapshot(ctx, period)
		if err != nil {
			return false, err
		}
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(snap); err != nil {
			cancel()
			return true, err
		}
		return snap.Done(), nil
	})

	reason := "done"
	switch {
	case err == nil:
	case errors.Is(err, poller.ErrWindowElapsed):
		reason = "window elapsed"
	default:
		log.Debug("monitor stream ended", zap.Error(err))
		return
	}

	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, reason)
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
}
