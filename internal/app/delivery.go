package app

import (
	"net/http"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/alert"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/config"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/outreach"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/roster"

	"go.uber.org/zap"
)

// delivery is the outreach delivery path shared by the api and the
// consumer.
type delivery struct {
	repo    outreach.Repository
	entries roster.Repository
	stats   *roster.StatsCache
	tracker *outreach.Tracker
	sender  *outreach.Sender
}

func buildDelivery(cfg *config.Config, infra *Infra, logger *zap.Logger) (*delivery, error) {
	notifier, err := alert.New(cfg.Telegram, logger)
	if err != nil {
		return nil, err
	}

	repo := outreach.NewRepository(infra.GormDB)
	entries := roster.NewRepository(infra.GormDB)
	stats := roster.NewStatsCache(infra.Redis, logger)
	tracker := outreach.NewTracker(infra.SQLDB, repo, entries, stats, notifier, logger)
	infra.onClose(tracker.Wait)

	var client outreach.WebhookClient
	if cfg.Webhook.URL != "" {
		client = outreach.NewHTTPWebhookClient(cfg.Webhook.URL, &http.Client{})
	} else {
		logger.Warn("N8N_WEBHOOK_URL not set, deliveries are simulated")
	}

	sender := outreach.NewSender(repo, tracker, client, outreach.SenderConfig{
		Timeout:        cfg.Webhook.Timeout,
		SimulatedDelay: cfg.Webhook.SimulatedDelay,
	}, logger)

	return &delivery{repo: repo, entries: entries, stats: stats, tracker: tracker, sender: sender}, nil
}
