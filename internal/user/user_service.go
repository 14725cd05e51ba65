package user

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/audit"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/apperror"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/contextutil"
	usererrors "github.com/lFelipelalves/Crm-Wsc-Clean/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IdentityCreator registers login credentials and returns the auth id.
type IdentityCreator interface {
	CreateIdentity(ctx context.Context, email, password string) (string, error)
}

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	Provision(ctx context.Context, req ProvisionRequest) (UserResponse, error)
	List(ctx context.Context) ([]UserResponse, error)
	SetStatus(ctx context.Context, id string, active bool) (UserResponse, error)
}

type service struct {
	repo        Repository
	identities  IdentityCreator
	auditLogger audit.Logger
	logger      *zap.Logger
}

func NewService(repo Repository, identities IdentityCreator, auditLogger audit.Logger, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	if auditLogger == nil {
		auditLogger = audit.Nop{}
	}
	return &service{repo: repo, identities: identities, auditLogger: auditLogger, logger: l}
}

// Provision creates the identity first and the profile second. A failed
// profile insert leaves the identity behind and is audited.
func (s *service) Provision(ctx context.Context, req ProvisionRequest) (UserResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	req.Email = strings.TrimSpace(req.Email)
	req.Name = strings.TrimSpace(req.Name)
	req.Role = strings.TrimSpace(req.Role)
	if req.Email == "" || req.Password == "" || req.Name == "" || req.Role == "" {
		return UserResponse{}, usererrors.ErrMissingFields
	}
	if req.Role != contextutil.RoleAdmin && req.Role != contextutil.RoleUser {
		return UserResponse{}, usererrors.ErrInvalidRole
	}

	authID, err := s.identities.CreateIdentity(ctx, req.Email, req.Password)
	if err != nil {
		log.Warn("identity creation failed", zap.String("email", req.Email), zap.Error(err))
		return UserResponse{}, identityError(err)
	}

	authUUID, err := uuid.Parse(authID)
	if err != nil {
		return UserResponse{}, apperror.WithCause(apperror.ErrInternal, err)
	}

	u := &User{
		ID:     uuid.New(),
		AuthID: authUUID,
		Email:  strings.ToLower(req.Email),
		Name:   req.Name,
		Role:   req.Role,
		Active: true,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		log.Error("profile insert failed after identity creation",
			zap.String("auth_id", authID),
			zap.Error(err),
		)
		s.auditLogger.Log(ctx, audit.Entry{
			Action:  audit.ActionUserProvisionPartial,
			Message: "identity created without profile",
			Meta:    map[string]any{"auth_id": authID, "email": u.Email},
		})
		return UserResponse{}, apperror.WithCause(usererrors.ErrPartialFailure, err)
	}

	s.auditLogger.Log(ctx, audit.Entry{
		Action:  audit.ActionUserProvisioned,
		Message: "user provisioned",
		Meta:    map[string]any{"user_id": u.ID.String(), "email": u.Email, "role": u.Role},
	})
	log.Info("user provisioned", zap.String("user_id", u.ID.String()), zap.String("role", u.Role))
	return mapToResponse(*u), nil
}

func identityError(err error) error {
	var appErr *apperror.AppError
	msg := err.Error()
	if errors.As(err, &appErr) {
		msg = appErr.Message
	}
	return apperror.Wrap(err, apperror.CodeInvalidInput, msg, http.StatusBadRequest)
}

func (s *service) List(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = mapToResponse(u)
	}
	return resp, nil
}

func (s *service) SetStatus(ctx context.Context, id string, active bool) (UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}
	if actor, ok := contextutil.GetActor(ctx); ok && actor.UserID == id && !active {
		return UserResponse{}, usererrors.ErrSelfDeactivation
	}

	if err := s.repo.UpdateActive(ctx, id, active); err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	s.auditLogger.Log(ctx, audit.Entry{
		Action:  audit.ActionUserStatusChanged,
		Message: "user status changed",
		Meta:    map[string]any{"user_id": id, "ativo": active},
	})
	return mapToResponse(*u), nil
}
