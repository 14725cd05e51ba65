package user_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/audit"
	auditMock "github.com/lFelipelalves/Crm-Wsc-Clean/internal/audit/mock"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/apperror"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/contextutil"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/user"
	usererrors "github.com/lFelipelalves/Crm-Wsc-Clean/internal/user/errors"
	userMock "github.com/lFelipelalves/Crm-Wsc-Clean/internal/user/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type fakeIdentities struct {
	CreateIdentityFn func(ctx context.Context, email, password string) (string, error)
	calls            int
}

func (f *fakeIdentities) CreateIdentity(ctx context.Context, email, password string) (string, error) {
	f.calls++
	return f.CreateIdentityFn(ctx, email, password)
}

type auditAction string

func (a auditAction) Matches(x any) bool {
	e, ok := x.(audit.Entry)
	return ok && e.Action == string(a)
}

func (a auditAction) String() string { return "audit entry " + string(a) }

func TestService_Provision(t *testing.T) {
	ctx := context.Background()
	authID := uuid.New().String()
	valid := user.ProvisionRequest{Email: "novo@wsc.com.br", Password: "segredo123", Name: "Novo", Role: "user"}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := userMock.NewMockRepository(ctrl)
		auditLog := auditMock.NewMockLogger(ctrl)
		ids := &fakeIdentities{CreateIdentityFn: func(context.Context, string, string) (string, error) { return authID, nil }}
		svc := user.NewService(repo, ids, auditLog)

		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *user.User) error {
			assert.Equal(t, authID, u.AuthID.String())
			assert.True(t, u.Active)
			return nil
		})
		auditLog.EXPECT().Log(ctx, auditAction(audit.ActionUserProvisioned))

		resp, err := svc.Provision(ctx, valid)

		assert.NoError(t, err)
		assert.Equal(t, "Novo", resp.Name)
		assert.Equal(t, "user", resp.Role)
	})

	t.Run("missing fields stop before the identity is created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ids := &fakeIdentities{}
		svc := user.NewService(userMock.NewMockRepository(ctrl), ids, audit.Nop{})

		req := valid
		req.Name = "  "
		_, err := svc.Provision(ctx, req)

		assert.ErrorIs(t, err, usererrors.ErrMissingFields)
		assert.Zero(t, ids.calls)
	})

	t.Run("invalid role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ids := &fakeIdentities{}
		svc := user.NewService(userMock.NewMockRepository(ctrl), ids, audit.Nop{})

		req := valid
		req.Role = "superuser"
		_, err := svc.Provision(ctx, req)

		assert.ErrorIs(t, err, usererrors.ErrInvalidRole)
		assert.Zero(t, ids.calls)
	})

	t.Run("identity failure becomes 400 with its message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ids := &fakeIdentities{CreateIdentityFn: func(context.Context, string, string) (string, error) {
			return "", apperror.New(apperror.CodeConflict, "A user with this email address has already been registered", http.StatusConflict)
		}}
		svc := user.NewService(userMock.NewMockRepository(ctrl), ids, audit.Nop{})

		_, err := svc.Provision(ctx, valid)

		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, "A user with this email address has already been registered", httpErr.Message)
	})

	t.Run("profile failure is a partial failure and is audited", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := userMock.NewMockRepository(ctrl)
		auditLog := auditMock.NewMockLogger(ctrl)
		ids := &fakeIdentities{CreateIdentityFn: func(context.Context, string, string) (string, error) { return authID, nil }}
		svc := user.NewService(repo, ids, auditLog)

		repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("insert failed"))
		auditLog.EXPECT().Log(ctx, auditAction(audit.ActionUserProvisionPartial))

		_, err := svc.Provision(ctx, valid)

		assert.ErrorIs(t, err, usererrors.ErrPartialFailure)
		assert.Equal(t, 1, ids.calls)
	})
}

func TestService_SetStatus(t *testing.T) {
	id := uuid.New()

	t.Run("toggles and audits", func(t *testing.T) {
		ctx := context.Background()
		ctrl := gomock.NewController(t)
		repo := userMock.NewMockRepository(ctrl)
		auditLog := auditMock.NewMockLogger(ctrl)
		svc := user.NewService(repo, nil, auditLog)

		repo.EXPECT().UpdateActive(ctx, id.String(), false).Return(nil)
		repo.EXPECT().FindByID(ctx, id.String()).Return(&user.User{ID: id, Name: "Ana", Active: false}, nil)
		auditLog.EXPECT().Log(ctx, auditAction(audit.ActionUserStatusChanged))

		resp, err := svc.SetStatus(ctx, id.String(), false)

		assert.NoError(t, err)
		assert.False(t, resp.Active)
	})

	t.Run("unknown user", func(t *testing.T) {
		ctx := context.Background()
		ctrl := gomock.NewController(t)
		repo := userMock.NewMockRepository(ctrl)
		svc := user.NewService(repo, nil, audit.Nop{})

		repo.EXPECT().UpdateActive(ctx, id.String(), true).Return(gorm.ErrRecordNotFound)

		_, err := svc.SetStatus(ctx, id.String(), true)
		assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
	})

	t.Run("cannot deactivate self", func(t *testing.T) {
		ctx := contextutil.WithActor(context.Background(), contextutil.Actor{UserID: id.String(), Role: "admin", Active: true})
		svc := user.NewService(userMock.NewMockRepository(gomock.NewController(t)), nil, audit.Nop{})

		_, err := svc.SetStatus(ctx, id.String(), false)
		assert.ErrorIs(t, err, usererrors.ErrSelfDeactivation)
	})

	t.Run("invalid id", func(t *testing.T) {
		svc := user.NewService(userMock.NewMockRepository(gomock.NewController(t)), nil, audit.Nop{})
		_, err := svc.SetStatus(context.Background(), "abc", true)
		assert.ErrorIs(t, err, usererrors.ErrInvalidUserID)
	})
}

func TestActorResolver(t *testing.T) {
	ctx := context.Background()
	authID := uuid.New()
	userID := uuid.New()

	t.Run("maps the profile", func(t *testing.T) {
		repo := userMock.NewMockRepository(gomock.NewController(t))
		repo.EXPECT().FindByAuthID(ctx, authID.String()).
			Return(&user.User{ID: userID, AuthID: authID, Email: "a@b.com", Name: "Ana", Role: "admin", Active: true}, nil)

		actor, err := user.NewActorResolver(repo).ResolveActor(ctx, authID.String())

		assert.NoError(t, err)
		assert.Equal(t, userID.String(), actor.UserID)
		assert.True(t, actor.IsAdmin())
	})

	t.Run("missing profile", func(t *testing.T) {
		repo := userMock.NewMockRepository(gomock.NewController(t))
		repo.EXPECT().FindByAuthID(ctx, authID.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := user.NewActorResolver(repo).ResolveActor(ctx, authID.String())
		assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
	})

	t.Run("malformed auth id never reaches the repository", func(t *testing.T) {
		repo := userMock.NewMockRepository(gomock.NewController(t))
		_, err := user.NewActorResolver(repo).ResolveActor(ctx, "nope")
		assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
	})
}
