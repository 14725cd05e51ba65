package outreach

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	outreacherrors "github.com/lFelipelalves/Crm-Wsc-Clean/internal/outreach/errors"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/apperror"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultWebhookTimeout = 30 * time.Second
	DefaultSimulatedDelay = time.Second

	simulatedMessage = "Webhook simulado (WEBHOOK_URL não configurado)"
)

var simulatedResponse = json.RawMessage(`{"simulated":true,"success":true}`)

type SenderConfig struct {
	Timeout        time.Duration
	SimulatedDelay time.Duration
}

type Sender struct {
	repo     Repository
	recorder DeliveryRecorder
	client   WebhookClient
	cfg      SenderConfig
	now      func() time.Time
	logger   *zap.Logger
}

// NewSender builds a sender. A nil client runs the development stub that
// records a simulated success after SimulatedDelay.
func NewSender(repo Repository, recorder DeliveryRecorder, client WebhookClient, cfg SenderConfig, logger ...*zap.Logger) *Sender {
	l := zap.L().Named("outreach.sender")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("outreach.sender")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultWebhookTimeout
	}
	if cfg.SimulatedDelay < 0 {
		cfg.SimulatedDelay = 0
	}
	return &Sender{repo: repo, recorder: recorder, client: client, cfg: cfg, now: time.Now, logger: l}
}

func (s *Sender) Send(ctx context.Context, logID string) (SendResult, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	logID = strings.TrimSpace(logID)
	if logID == "" {
		return SendResult{}, outreacherrors.ErrLogIDRequired
	}
	if _, err := uuid.Parse(logID); err != nil {
		return SendResult{}, outreacherrors.ErrLogNotFound
	}

	detail, err := s.repo.FindDetailByID(ctx, logID)
	if err != nil {
		return SendResult{}, mapRepositoryError(err)
	}
	if detail.Status == StatusSent {
		return SendResult{}, outreacherrors.ErrAlreadySent
	}

	// The delivery call and its bookkeeping outlive the caller.
	ctx = context.WithoutCancel(ctx)

	if err := s.recorder.Claim(ctx, logID); err != nil {
		log.Info("delivery not claimed", zap.String("log_id", logID), zap.Error(err))
		return SendResult{}, err
	}

	if s.client == nil {
		time.Sleep(s.cfg.SimulatedDelay)
		if err := s.recorder.ApplyOutcome(ctx, Outcome{LogID: logID, Status: StatusSent, Response: simulatedResponse}); err != nil {
			return SendResult{}, err
		}
		log.Info("simulated delivery recorded", zap.String("log_id", logID))
		return SendResult{Success: true, Simulated: true, Message: simulatedMessage}, nil
	}

	payload := s.buildPayload(detail)

	callCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	status, body, err := s.client.Post(callCtx, payload)
	cancel()

	if err != nil {
		return s.fail(ctx, log, logID, err.Error(), nil, err)
	}

	resp := normalizeResponse(body)
	if status < 200 || status >= 300 {
		reason := fmt.Sprintf("HTTP %d", status)
		return s.fail(ctx, log, logID, reason, resp, errors.New(reason))
	}

	if err := s.recorder.ApplyOutcome(ctx, Outcome{LogID: logID, Status: StatusSent, Response: resp}); err != nil {
		return SendResult{}, err
	}
	log.Info("delivery succeeded", zap.String("log_id", logID), zap.Int("http_status", status))
	return SendResult{Success: true, Data: resp}, nil
}

func (s *Sender) fail(ctx context.Context, log *zap.Logger, logID, reason string, resp json.RawMessage, cause error) (SendResult, error) {
	log.Warn("delivery failed", zap.String("log_id", logID), zap.String("reason", reason))

	if err := s.recorder.ApplyOutcome(ctx, Outcome{
		LogID:        logID,
		Status:       StatusError,
		Response:     resp,
		ErrorMessage: reason,
	}); err != nil {
		return SendResult{}, err
	}
	return SendResult{Success: false, Error: reason}, apperror.WithCause(outreacherrors.ErrDeliveryFailed, cause)
}

func (s *Sender) buildPayload(d *LogDetail) WebhookPayload {
	p := WebhookPayload{
		LogID:       d.ID.String(),
		CompanyCode: d.CompanyCode,
		CompanyName: d.CompanyName,
		Responsible: d.CompanyResponsible,
		Phone:       d.Phone,
		Kind:        d.Kind,
		Timestamp:   s.now().UTC().Format(time.RFC3339),
	}
	if d.Kind == KindText && d.Message != nil {
		p.Message = *d.Message
	}
	if d.Kind == KindAudio && d.FileURL != nil {
		p.AudioURL = *d.FileURL
	}
	return p
}

// normalizeResponse keeps a JSON body and replaces anything else with {}.
func normalizeResponse(body []byte) json.RawMessage {
	if len(body) == 0 || !json.Valid(body) {
		return json.RawMessage(`{}`)
	}
	return json.RawMessage(body)
}
