package user

import (
	"context"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/contextutil"
	usererrors "github.com/lFelipelalves/Crm-Wsc-Clean/internal/user/errors"

	"github.com/google/uuid"
)

// ActorResolver loads profiles by auth id for the request middleware and
// for login.
type ActorResolver struct {
	repo Repository
}

func NewActorResolver(repo Repository) *ActorResolver {
	return &ActorResolver{repo: repo}
}

func (r *ActorResolver) ResolveActor(ctx context.Context, authID string) (contextutil.Actor, error) {
	if _, err := uuid.Parse(authID); err != nil {
		return contextutil.Actor{}, usererrors.ErrUserNotFound
	}
	u, err := r.repo.FindByAuthID(ctx, authID)
	if err != nil {
		return contextutil.Actor{}, mapRepositoryError(err)
	}
	return contextutil.Actor{
		AuthID: u.AuthID.String(),
		UserID: u.ID.String(),
		Email:  u.Email,
		Name:   u.Name,
		Role:   u.Role,
		Active: u.Active,
	}, nil
}
