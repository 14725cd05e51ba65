package contextutil

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
	actorKey
)

func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

func GetRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	rid, _ := ctx.Value(requestIDKey).(string)
	return rid
}

func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns the request logger, then fallback, then a nop logger.
func GetLogger(ctx context.Context, fallback *zap.Logger) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok && l != nil {
			return l
		}
	}
	if fallback != nil {
		return fallback
	}
	return zap.NewNop()
}

// Metadata is what the logs need to know about the caller of a request.
type Metadata struct {
	RequestID string
	UserID    string
	Email     string
	Role      string
}

func ExtractMetadata(ctx context.Context) Metadata {
	md := Metadata{RequestID: GetRequestID(ctx)}
	if actor, ok := GetActor(ctx); ok {
		md.UserID = actor.UserID
		md.Email = actor.Email
		md.Role = actor.Role
	}
	return md
}

// Fields renders the non-empty parts of md.
func (md Metadata) Fields() []zap.Field {
	fields := make([]zap.Field, 0, 4)
	if md.RequestID != "" {
		fields = append(fields, zap.String("request_id", md.RequestID))
	}
	if md.UserID != "" {
		fields = append(fields, zap.String("actor_id", md.UserID))
	}
	if md.Email != "" {
		fields = append(fields, zap.String("actor_email", md.Email))
	}
	if md.Role != "" {
		fields = append(fields, zap.String("actor_role", md.Role))
	}
	return fields
}
