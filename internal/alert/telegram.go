package alert

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// MessageSender is the slice of *bot.Bot used for alerts.
type MessageSender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

type TelegramNotifier struct {
	sender  MessageSender
	chatID  int64
	limiter *rate.Limiter
	logger  *zap.Logger
}

func NewTelegram(token string, chatID int64, logger *zap.Logger) (*TelegramNotifier, error) {
	b, err := bot.New(token, bot.WithSkipGetMe())
	if err != nil {
		return nil, fmt.Errorf("init telegram bot: %w", err)
	}
	return NewTelegramWithSender(b, chatID, logger), nil
}

func NewTelegramWithSender(sender MessageSender, chatID int64, logger *zap.Logger) *TelegramNotifier {
	if logger == nil {
		logger = zap.L().Named("alert")
	}
	return &TelegramNotifier{
		sender: sender,
		chatID: chatID,
		// Telegram allows roughly one message per second per chat.
		limiter: rate.NewLimiter(rate.Limit(1), 3),
		logger:  logger,
	}
}

func (n *TelegramNotifier) DeliveryFailed(ctx context.Context, f DeliveryFailure) error {
	if err := n.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("telegram rate limit: %w", err)
	}

	_, err := n.sender.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    n.chatID,
		Text:      formatFailure(f),
		ParseMode: models.ParseModeMarkdownV1,
	})
	if err != nil {
		n.logger.Warn("telegram alert failed", zap.String("log_id", f.LogID), zap.Error(err))
		return fmt.Errorf("send telegram alert to chat %d: %w", n.chatID, err)
	}
	return nil
}

func formatFailure(f DeliveryFailure) string {
	var b strings.Builder
	b.WriteString("*Falha no envio de cobrança*\n")
	if f.CompanyCode != "" || f.CompanyName != "" {
		fmt.Fprintf(&b, "*Empresa:* %s %s\n", f.CompanyCode, escapeMarkdown(f.CompanyName))
	}
	if f.Phone != "" {
		fmt.Fprintf(&b, "*Telefone:* %s\n", f.Phone)
	}
	if f.Period != "" {
		fmt.Fprintf(&b, "*Competência:* %s\n", f.Period)
	}
	fmt.Fprintf(&b, "*Log:* `%s`\n", f.LogID)
	fmt.Fprintf(&b, "*Erro:* %s", escapeMarkdown(f.Reason))
	if !f.At.IsZero() {
		fmt.Fprintf(&b, "\n*Quando:* %s", f.At.Format("02/01/2006 15:04:05"))
	}
	return b.String()
}

var markdownEscaper = strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[")

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
