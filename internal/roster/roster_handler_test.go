package roster_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/roster"
	rostererrors "github.com/lFelipelalves/Crm-Wsc-Clean/internal/roster/errors"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeRosterService struct {
	ListActiveFn             func(ctx context.Context, filter roster.ListFilter) ([]roster.EntryResponse, error)
	ListAvailableCompaniesFn func(ctx context.Context) ([]roster.AvailableCompanyResponse, error)
	AddFn                    func(ctx context.Context, req roster.AddEntryRequest) (roster.EntryResponse, error)
	RemoveFn                 func(ctx context.Context, id string) error
	UpdateStatusFn           func(ctx context.Context, id, status string) error
	UpdateNotesFn            func(ctx context.Context, id, notes string) error
	UpdatePhoneFn            func(ctx context.Context, id, phone string) error
	ResetFn                  func(ctx context.Context, confirmation string) (roster.ResetResponse, error)
	StatsFn                  func(ctx context.Context) (roster.StatsResponse, error)
}

func (f *fakeRosterService) ListActive(ctx context.Context, filter roster.ListFilter) ([]roster.EntryResponse, error) {
	return f.ListActiveFn(ctx, filter)
}
func (f *fakeRosterService) ListAvailableCompanies(ctx context.Context) ([]roster.AvailableCompanyResponse, error) {
	return f.ListAvailableCompaniesFn(ctx)
}
func (f *fakeRosterService) Add(ctx context.Context, req roster.AddEntryRequest) (roster.EntryResponse, error) {
	return f.AddFn(ctx, req)
}
func (f *fakeRosterService) Remove(ctx context.Context, id string) error {
	return f.RemoveFn(ctx, id)
}
func (f *fakeRosterService) UpdateStatus(ctx context.Context, id, status string) error {
	return f.UpdateStatusFn(ctx, id, status)
}
func (f *fakeRosterService) UpdateNotes(ctx context.Context, id, notes string) error {
	return f.UpdateNotesFn(ctx, id, notes)
}
func (f *fakeRosterService) UpdatePhone(ctx context.Context, id, phone string) error {
	return f.UpdatePhoneFn(ctx, id, phone)
}
func (f *fakeRosterService) Reset(ctx context.Context, confirmation string) (roster.ResetResponse, error) {
	return f.ResetFn(ctx, confirmation)
}
func (f *fakeRosterService) Stats(ctx context.Context) (roster.StatsResponse, error) {
	return f.StatsFn(ctx)
}

func setupRouter(h *roster.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	r := gin.New()
	r.GET("/cobranca-ponto/empresas", h.ListActive)
	r.POST("/cobranca-ponto/empresas", h.Add)
	r.PATCH("/cobranca-ponto/empresas/:id/status", h.UpdateStatus)
	r.POST("/cobranca-ponto/reset", h.Reset)
	return r
}

func TestRosterHandler_ListActive_DayFilter(t *testing.T) {
	svc := &fakeRosterService{
		ListActiveFn: func(ctx context.Context, filter roster.ListFilter) ([]roster.EntryResponse, error) {
			if assert.NotNil(t, filter.Day) {
				assert.Equal(t, 25, *filter.Day)
			}
			return []roster.EntryResponse{}, nil
		},
	}
	r := setupRouter(roster.NewHandler(svc))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cobranca-ponto/empresas?dia=25", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRosterHandler_Add_Conflict(t *testing.T) {
	svc := &fakeRosterService{
		AddFn: func(ctx context.Context, req roster.AddEntryRequest) (roster.EntryResponse, error) {
			return roster.EntryResponse{}, rostererrors.ErrAlreadyEnrolled
		},
	}
	r := setupRouter(roster.NewHandler(svc))

	w := httptest.NewRecorder()
	body := `{"empresa_id":"6c1f1f4e-2c1b-4d8b-9f3a-0a2b3c4d5e6f","dia_cobranca":1}`
	req := httptest.NewRequest(http.MethodPost, "/cobranca-ponto/empresas", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "CONFLICT")
}

func TestRosterHandler_Reset(t *testing.T) {
	svc := &fakeRosterService{
		ResetFn: func(ctx context.Context, confirmation string) (roster.ResetResponse, error) {
			if confirmation != "CONFIRMAR" {
				return roster.ResetResponse{}, rostererrors.ErrConfirmationRequired
			}
			return roster.ResetResponse{Reset: 4}, nil
		},
	}
	r := setupRouter(roster.NewHandler(svc))

	t.Run("confirmed", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/cobranca-ponto/reset", strings.NewReader(`{"confirmacao":"CONFIRMAR"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"resetadas":4`)
	})

	t.Run("not confirmed", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/cobranca-ponto/reset", strings.NewReader(`{"confirmacao":"ok"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "CONFIRMATION_REQUIRED")
	})
}
