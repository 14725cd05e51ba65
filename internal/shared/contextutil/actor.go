package contextutil

import "context"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Actor is the caller's profile, resolved once per request by the auth
// middleware and read from the context by everything downstream.
type Actor struct {
	AuthID string
	UserID string
	Email  string
	Name   string
	Role   string
	Active bool
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

func GetActor(ctx context.Context) (Actor, bool) {
	if ctx == nil {
		return Actor{}, false
	}
	a, ok := ctx.Value(actorKey).(Actor)
	return a, ok
}
