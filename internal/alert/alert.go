// Package alert notifies operators when an outreach delivery fails.
package alert

import (
	"context"
	"time"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/config"

	"go.uber.org/zap"
)

type DeliveryFailure struct {
	LogID       string
	CompanyCode string
	CompanyName string
	Phone       string
	Period      string
	Reason      string
	At          time.Time
}

type Notifier interface {
	DeliveryFailed(ctx context.Context, failure DeliveryFailure) error
}

// New picks the Telegram backend when both the token and the chat are
// configured and falls back to a no-op otherwise.
func New(cfg config.TelegramConfig, logger ...*zap.Logger) (Notifier, error) {
	l := zap.L().Named("alert")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("alert")
	}

	if cfg.BotToken == "" || cfg.ChatID == 0 {
		l.Info("telegram alerts disabled")
		return Nop{}, nil
	}

	n, err := NewTelegram(cfg.BotToken, cfg.ChatID, l)
	if err != nil {
		return nil, err
	}
	l.Info("telegram alerts enabled", zap.Int64("chat_id", cfg.ChatID))
	return n, nil
}

type Nop struct{}

func (Nop) DeliveryFailed(context.Context, DeliveryFailure) error { return nil }
