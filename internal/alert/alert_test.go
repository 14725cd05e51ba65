package alert_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/alert"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/config"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeSender struct {
	params []*bot.SendMessageParams
	err    error
}

func (f *fakeSender) SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error) {
	f.params = append(f.params, params)
	if f.err != nil {
		return nil, f.err
	}
	return &models.Message{ID: 1}, nil
}

func TestNew_NopWithoutCredentials(t *testing.T) {
	n, err := alert.New(config.TelegramConfig{BotToken: "token"})
	assert.NoError(t, err)
	assert.IsType(t, alert.Nop{}, n)
	assert.NoError(t, n.DeliveryFailed(context.Background(), alert.DeliveryFailure{}))
}

func TestTelegramNotifier_DeliveryFailed(t *testing.T) {
	sender := &fakeSender{}
	n := alert.NewTelegramWithSender(sender, 42, zap.NewNop())

	err := n.DeliveryFailed(context.Background(), alert.DeliveryFailure{
		LogID:       "log-1",
		CompanyCode: "0007",
		CompanyName: "Padaria_Central",
		Reason:      "HTTP 502",
		At:          time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
	})

	assert.NoError(t, err)
	if assert.Len(t, sender.params, 1) {
		p := sender.params[0]
		assert.Equal(t, int64(42), p.ChatID)
		text := p.Text
		assert.Contains(t, text, "HTTP 502")
		assert.Contains(t, text, `Padaria\_Central`)
		assert.Contains(t, text, "02/03/2026 10:00:00")
	}
}

func TestTelegramNotifier_SendError(t *testing.T) {
	sender := &fakeSender{err: errors.New("chat not found")}
	n := alert.NewTelegramWithSender(sender, 42, zap.NewNop())

	err := n.DeliveryFailed(context.Background(), alert.DeliveryFailure{LogID: "x", Reason: "timeout"})
	assert.ErrorContains(t, err, "chat not found")
}
