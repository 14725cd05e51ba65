package consumer

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/events"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/outreach"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/apperror"

	"go.uber.org/zap"
)

type OutreachSender interface {
	Send(ctx context.Context, logID string) (outreach.SendResult, error)
}

// ConsumeOutreachDispatch delivers one outreach log per event. Messages are
// committed once retrying cannot change the outcome: delivered, undecodable,
// unknown log, already sent or in flight, or a delivery failure already
// recorded as ERRO.
func ConsumeOutreachDispatch(
	ctx context.Context,
	reader MessageReader,
	sender OutreachSender,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.outreach_dispatch")
	log.Info("outreach dispatch consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("outreach dispatch consumer stopped")
				return
			}
			log.Error("fetch outreach dispatch message failed", zap.Error(err))
			continue
		}

		var event events.OutreachDispatchRequested
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode outreach dispatch event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		fields := []zap.Field{
			zap.String("log_id", event.LogID),
			zap.String("request_id", event.RequestID),
			zap.String("competencia", event.Period),
		}

		_, sendErr := sender.Send(ctx, event.LogID)
		if sendErr != nil && !isFinal(sendErr) {
			log.Error("outreach delivery failed, leaving uncommitted", append(fields, zap.Error(sendErr))...)
			continue
		}
		if sendErr != nil {
			log.Warn("outreach delivery settled without success", append(fields, zap.Error(sendErr))...)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit outreach dispatch message failed", zap.Error(err))
			continue
		}

		if sendErr == nil {
			log.Info("outreach delivered from dispatch event", fields...)
		}
	}
}

func isFinal(err error) bool {
	httpErr := apperror.ToHTTP(err)
	switch {
	case httpErr.Status == http.StatusNotFound, httpErr.Status == http.StatusConflict:
		return true
	case httpErr.Code == apperror.CodeDeliveryFailed:
		return true
	}
	return false
}
