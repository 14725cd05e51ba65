package outreach_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/outreach"
	outreacherrors "github.com/lFelipelalves/Crm-Wsc-Clean/internal/outreach/errors"
	outreachMock "github.com/lFelipelalves/Crm-Wsc-Clean/internal/outreach/mock"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeRecorder struct {
	outcomes []outreach.Outcome
	err      error
	claimErr error
}

func (f *fakeRecorder) ApplyOutcome(ctx context.Context, o outreach.Outcome) error {
	f.outcomes = append(f.outcomes, o)
	return f.err
}

func (f *fakeRecorder) Claim(ctx context.Context, logID string) error {
	if f.claimErr != nil {
		return f.claimErr
	}
	f.outcomes = append(f.outcomes, outreach.Outcome{LogID: logID, Status: outreach.StatusSending})
	return nil
}

type fakeWebhook struct {
	status  int
	body    []byte
	err     error
	payload outreach.WebhookPayload
	ctxErr  error
}

func (f *fakeWebhook) Post(ctx context.Context, payload outreach.WebhookPayload) (int, []byte, error) {
	f.payload = payload
	f.ctxErr = ctx.Err()
	return f.status, f.body, f.err
}

func pendingDetail(kind string) *outreach.LogDetail {
	msg := "Olá, envie o ponto"
	url := "https://cdn/audio.mp3"
	return &outreach.LogDetail{
		Log: outreach.Log{
			ID:      uuid.New(),
			EntryID: uuid.New(),
			Phone:   "5511911111111",
			Kind:    kind,
			Message: &msg,
			FileURL: &url,
			Status:  outreach.StatusPending,
		},
		CompanyCode:        "0007",
		CompanyName:        "Padaria",
		CompanyResponsible: "João",
	}
}

func TestSender_Send(t *testing.T) {
	ctx := context.Background()

	t.Run("2xx records success with the body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := outreachMock.NewMockRepository(ctrl)
		rec := &fakeRecorder{}
		hook := &fakeWebhook{status: 200, body: []byte(`{"ok":true}`)}
		detail := pendingDetail(outreach.KindText)

		repo.EXPECT().FindDetailByID(ctx, detail.ID.String()).Return(detail, nil)

		s := outreach.NewSender(repo, rec, hook, outreach.SenderConfig{})
		res, err := s.Send(ctx, detail.ID.String())

		assert.NoError(t, err)
		assert.True(t, res.Success)
		assert.JSONEq(t, `{"ok":true}`, string(res.Data))

		assert.Equal(t, "Olá, envie o ponto", hook.payload.Message)
		assert.Empty(t, hook.payload.AudioURL)
		assert.Equal(t, "0007", hook.payload.CompanyCode)
		assert.Equal(t, "João", hook.payload.Responsible)

		if assert.Len(t, rec.outcomes, 2) {
			assert.Equal(t, outreach.StatusSending, rec.outcomes[0].Status)
			assert.Equal(t, outreach.StatusSent, rec.outcomes[1].Status)
		}
	})

	t.Run("non-2xx records HTTP status as failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := outreachMock.NewMockRepository(ctrl)
		rec := &fakeRecorder{}
		hook := &fakeWebhook{status: 502, body: []byte("bad gateway")}
		detail := pendingDetail(outreach.KindAudio)

		repo.EXPECT().FindDetailByID(ctx, detail.ID.String()).Return(detail, nil)

		s := outreach.NewSender(repo, rec, hook, outreach.SenderConfig{})
		res, err := s.Send(ctx, detail.ID.String())

		assert.ErrorIs(t, err, outreacherrors.ErrDeliveryFailed)
		assert.False(t, res.Success)
		assert.Equal(t, "HTTP 502", res.Error)
		assert.Equal(t, "https://cdn/audio.mp3", hook.payload.AudioURL)
		assert.Empty(t, hook.payload.Message)

		last := rec.outcomes[len(rec.outcomes)-1]
		assert.Equal(t, outreach.StatusError, last.Status)
		assert.Equal(t, "HTTP 502", last.ErrorMessage)
		assert.JSONEq(t, `{}`, string(last.Response))
	})

	t.Run("network error records the error text", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := outreachMock.NewMockRepository(ctrl)
		rec := &fakeRecorder{}
		hook := &fakeWebhook{err: errors.New("dial tcp: connection refused")}
		detail := pendingDetail(outreach.KindText)

		repo.EXPECT().FindDetailByID(ctx, detail.ID.String()).Return(detail, nil)

		s := outreach.NewSender(repo, rec, hook, outreach.SenderConfig{})
		res, err := s.Send(ctx, detail.ID.String())

		assert.ErrorIs(t, err, outreacherrors.ErrDeliveryFailed)
		assert.Equal(t, "dial tcp: connection refused", res.Error)
	})

	t.Run("caller cancellation does not reach the webhook call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := outreachMock.NewMockRepository(ctrl)
		rec := &fakeRecorder{}
		hook := &fakeWebhook{status: 200}
		detail := pendingDetail(outreach.KindText)

		cctx, cancel := context.WithCancel(ctx)
		repo.EXPECT().FindDetailByID(cctx, detail.ID.String()).
			DoAndReturn(func(ctx context.Context, id string) (*outreach.LogDetail, error) {
				cancel()
				return detail, nil
			})

		s := outreach.NewSender(repo, rec, hook, outreach.SenderConfig{})
		_, err := s.Send(cctx, detail.ID.String())

		assert.NoError(t, err)
		assert.NoError(t, hook.ctxErr)
	})

	t.Run("already sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := outreachMock.NewMockRepository(ctrl)
		detail := pendingDetail(outreach.KindText)
		detail.Status = outreach.StatusSent

		repo.EXPECT().FindDetailByID(ctx, detail.ID.String()).Return(detail, nil)

		s := outreach.NewSender(repo, &fakeRecorder{}, &fakeWebhook{}, outreach.SenderConfig{})
		_, err := s.Send(ctx, detail.ID.String())
		assert.ErrorIs(t, err, outreacherrors.ErrAlreadySent)
	})

	t.Run("log claimed by another sender is not posted again", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := outreachMock.NewMockRepository(ctrl)
		rec := &fakeRecorder{claimErr: outreacherrors.ErrAlreadyInFlight}
		hook := &fakeWebhook{status: 200}
		detail := pendingDetail(outreach.KindText)
		detail.Status = outreach.StatusSending

		repo.EXPECT().FindDetailByID(ctx, detail.ID.String()).Return(detail, nil)

		s := outreach.NewSender(repo, rec, hook, outreach.SenderConfig{})
		_, err := s.Send(ctx, detail.ID.String())

		assert.ErrorIs(t, err, outreacherrors.ErrAlreadyInFlight)
		assert.Empty(t, hook.payload.LogID)
		assert.Empty(t, rec.outcomes)
	})

	t.Run("failure is logged with request fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := outreachMock.NewMockRepository(ctrl)
		hook := &fakeWebhook{status: 500}
		detail := pendingDetail(outreach.KindText)

		core, logs := observer.New(zap.WarnLevel)
		rctx := contextutil.WithLogger(ctx, zap.New(core).With(zap.String("request_id", "req-42")))

		repo.EXPECT().FindDetailByID(rctx, detail.ID.String()).Return(detail, nil)

		s := outreach.NewSender(repo, &fakeRecorder{}, hook, outreach.SenderConfig{}, zap.NewNop())
		_, err := s.Send(rctx, detail.ID.String())

		assert.ErrorIs(t, err, outreacherrors.ErrDeliveryFailed)
		entries := logs.FilterMessage("delivery failed").All()
		if assert.Len(t, entries, 1) {
			assert.Equal(t, "req-42", entries[0].ContextMap()["request_id"])
		}
	})

	t.Run("simulated without webhook", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := outreachMock.NewMockRepository(ctrl)
		rec := &fakeRecorder{}
		detail := pendingDetail(outreach.KindText)

		repo.EXPECT().FindDetailByID(ctx, detail.ID.String()).Return(detail, nil)

		s := outreach.NewSender(repo, rec, nil, outreach.SenderConfig{SimulatedDelay: time.Millisecond})
		res, err := s.Send(ctx, detail.ID.String())

		assert.NoError(t, err)
		assert.True(t, res.Simulated)
		last := rec.outcomes[len(rec.outcomes)-1]
		assert.Equal(t, outreach.StatusSent, last.Status)
		assert.JSONEq(t, `{"simulated":true,"success":true}`, string(last.Response))
	})
}

func TestHTTPWebhookClient_Post(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		data, _ := io.ReadAll(r.Body)
		var p outreach.WebhookPayload
		assert.NoError(t, json.Unmarshal(data, &p))
		assert.Equal(t, "log-1", p.LogID)

		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"queued":true}`))
	}))
	defer srv.Close()

	c := outreach.NewHTTPWebhookClient(srv.URL, srv.Client())
	status, body, err := c.Post(context.Background(), outreach.WebhookPayload{LogID: "log-1", Kind: outreach.KindText})

	assert.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, status)
	assert.JSONEq(t, `{"queued":true}`, string(body))
}
