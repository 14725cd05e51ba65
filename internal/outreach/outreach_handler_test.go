package outreach_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/outreach"
	outreacherrors "github.com/lFelipelalves/Crm-Wsc-Clean/internal/outreach/errors"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeDispatchService struct {
	DispatchFn func(ctx context.Context, req outreach.DispatchRequest) (outreach.DispatchResult, error)
}

func (f *fakeDispatchService) Dispatch(ctx context.Context, req outreach.DispatchRequest) (outreach.DispatchResult, error) {
	return f.DispatchFn(ctx, req)
}

type fakeDeliveryService struct {
	SendFn func(ctx context.Context, logID string) (outreach.SendResult, error)
}

func (f *fakeDeliveryService) Send(ctx context.Context, logID string) (outreach.SendResult, error) {
	return f.SendFn(ctx, logID)
}

type fakeQueryService struct {
	ListByPeriodFn  func(ctx context.Context, period string) ([]outreach.LogResponse, error)
	ListByEntryFn   func(ctx context.Context, entryID string) ([]outreach.LogResponse, error)
	StatsByPeriodFn func(ctx context.Context, period string) (outreach.PeriodStats, error)
	PendingFn       func(ctx context.Context) ([]outreach.PendingCharge, error)
}

func (f *fakeQueryService) ListByPeriod(ctx context.Context, period string) ([]outreach.LogResponse, error) {
	return f.ListByPeriodFn(ctx, period)
}
func (f *fakeQueryService) ListByEntry(ctx context.Context, entryID string) ([]outreach.LogResponse, error) {
	return f.ListByEntryFn(ctx, entryID)
}
func (f *fakeQueryService) StatsByPeriod(ctx context.Context, period string) (outreach.PeriodStats, error) {
	return f.StatsByPeriodFn(ctx, period)
}
func (f *fakeQueryService) Pending(ctx context.Context) ([]outreach.PendingCharge, error) {
	return f.PendingFn(ctx)
}

type handlerFakes struct {
	dispatch *fakeDispatchService
	delivery *fakeDeliveryService
	recorder *fakeRecorder
	queries  *fakeQueryService
}

func setupHandlerRouter(f handlerFakes) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	h := outreach.NewHandler(f.dispatch, f.delivery, f.recorder, f.queries)

	r := gin.New()
	r.POST("/api/cobranca-ponto/disparar", h.Dispatch)
	r.POST("/api/cobranca-ponto/enviar", h.Send)
	r.POST("/api/n8n/atualizar-status", h.UpdateStatus)
	r.GET("/api/n8n/cobrancas-pendentes", h.Pending)
	r.GET("/api/cobranca-ponto/logs", h.ListByPeriod)
	return r
}

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_Dispatch(t *testing.T) {
	t.Run("two entries", func(t *testing.T) {
		r := setupHandlerRouter(handlerFakes{dispatch: &fakeDispatchService{
			DispatchFn: func(ctx context.Context, req outreach.DispatchRequest) (outreach.DispatchResult, error) {
				assert.Equal(t, []string{"A", "B"}, req.EntryIDs)
				assert.Equal(t, "Olá", req.Message)
				return outreach.DispatchResult{LogsCreated: 2, Message: "2 cobranças criadas. O n8n processará os envios."}, nil
			},
		}})

		w := postJSON(r, "/api/cobranca-ponto/disparar", `{"empresas_ids":["A","B"],"tipo_mensagem":"TEXTO","mensagem":"Olá"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"success":true`)
		assert.Contains(t, w.Body.String(), `"logs_criados":2`)
	})

	t.Run("validation error is flat", func(t *testing.T) {
		r := setupHandlerRouter(handlerFakes{dispatch: &fakeDispatchService{
			DispatchFn: func(ctx context.Context, req outreach.DispatchRequest) (outreach.DispatchResult, error) {
				return outreach.DispatchResult{}, outreacherrors.ErrEntryIDsRequired
			},
		}})

		w := postJSON(r, "/api/cobranca-ponto/disparar", `{"empresas_ids":[]}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"empresas_ids é obrigatório"}`, w.Body.String())
	})

	t.Run("roster fetch failure", func(t *testing.T) {
		r := setupHandlerRouter(handlerFakes{dispatch: &fakeDispatchService{
			DispatchFn: func(ctx context.Context, req outreach.DispatchRequest) (outreach.DispatchResult, error) {
				return outreach.DispatchResult{}, apperror.WithCause(outreacherrors.ErrFetchEntries, errors.New("boom"))
			},
		}})

		w := postJSON(r, "/api/cobranca-ponto/disparar", `{"empresas_ids":["A"],"mensagem":"x"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Erro ao buscar empresas"}`, w.Body.String())
	})
}

func TestHandler_Send(t *testing.T) {
	t.Run("delivery failure", func(t *testing.T) {
		r := setupHandlerRouter(handlerFakes{delivery: &fakeDeliveryService{
			SendFn: func(ctx context.Context, logID string) (outreach.SendResult, error) {
				return outreach.SendResult{Error: "HTTP 500"}, apperror.WithCause(outreacherrors.ErrDeliveryFailed, errors.New("HTTP 500"))
			},
		}})

		w := postJSON(r, "/api/cobranca-ponto/enviar", `{"log_id":"x"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"success":false,"error":"HTTP 500"}`, w.Body.String())
	})

	t.Run("already sent", func(t *testing.T) {
		r := setupHandlerRouter(handlerFakes{delivery: &fakeDeliveryService{
			SendFn: func(ctx context.Context, logID string) (outreach.SendResult, error) {
				return outreach.SendResult{}, outreacherrors.ErrAlreadySent
			},
		}})

		w := postJSON(r, "/api/cobranca-ponto/enviar", `{"log_id":"x"}`)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestHandler_UpdateStatus(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		rec := &fakeRecorder{}
		r := setupHandlerRouter(handlerFakes{recorder: rec})

		w := postJSON(r, "/api/n8n/atualizar-status", `{"log_id":"l1","status_envio":"ERRO","erro_mensagem":"timeout"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"message":"Status atualizado com sucesso"}`, w.Body.String())
		if assert.Len(t, rec.outcomes, 1) {
			assert.Equal(t, "timeout", rec.outcomes[0].ErrorMessage)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		rec := &fakeRecorder{err: outreacherrors.ErrOutcomeFieldsRequired}
		r := setupHandlerRouter(handlerFakes{recorder: rec})

		w := postJSON(r, "/api/n8n/atualizar-status", `{"log_id":"l1"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"log_id e status_envio são obrigatórios"}`, w.Body.String())
	})

	t.Run("unknown log", func(t *testing.T) {
		rec := &fakeRecorder{err: outreacherrors.ErrLogNotFound}
		r := setupHandlerRouter(handlerFakes{recorder: rec})

		w := postJSON(r, "/api/n8n/atualizar-status", `{"log_id":"l1","status_envio":"ENVIADO"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_Pending(t *testing.T) {
	r := setupHandlerRouter(handlerFakes{queries: &fakeQueryService{
		PendingFn: func(ctx context.Context) ([]outreach.PendingCharge, error) {
			return []outreach.PendingCharge{{LogID: "l1", Kind: outreach.KindText}}, nil
		},
	}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/n8n/cobrancas-pendentes", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)
	assert.Contains(t, w.Body.String(), `"log_id":"l1"`)
}
