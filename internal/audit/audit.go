// Package audit records security- and data-relevant events on a dedicated
// zap logger so they can be routed separately from application logs.
package audit

import (
	"context"
	"time"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/contextutil"

	"go.uber.org/zap"
)

const (
	ActionServerShutdown       = "SERVER_SHUTDOWN"
	ActionRosterReset          = "ROSTER_RESET"
	ActionUserProvisioned      = "USER_PROVISIONED"
	ActionUserProvisionPartial = "USER_PROVISION_PARTIAL_FAILURE"
	ActionUserStatusChanged    = "USER_STATUS_CHANGED"
	ActionCampaignMonthClosed  = "CAMPAIGN_MONTH_CLOSED"
)

type Entry struct {
	Action  string
	Message string
	Meta    map[string]any
}

//go:generate mockgen -source=audit.go -destination=mock/audit_mock.go -package=mock
type Logger interface {
	Log(ctx context.Context, entry Entry)
}

type zapLogger struct {
	logger *zap.Logger
}

func NewLogger(logger ...*zap.Logger) Logger {
	l := zap.L().Named("audit")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit")
	}
	return &zapLogger{logger: l}
}

func (l *zapLogger) Log(ctx context.Context, entry Entry) {
	fields := []zap.Field{
		zap.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.Any("meta", entry.Meta),
	}
	fields = append(fields, contextutil.ExtractMetadata(ctx).Fields()...)

	l.logger.Info("audit event", fields...)
}

// Nop discards every entry.
type Nop struct{}

func (Nop) Log(context.Context, Entry) {}
