package contextutil_test

import (
	"context"
	"testing"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestExtractMetadata(t *testing.T) {
	t.Run("anonymous request", func(t *testing.T) {
		md := contextutil.ExtractMetadata(contextutil.WithRequestID(context.Background(), "req-9"))

		assert.Equal(t, contextutil.Metadata{RequestID: "req-9"}, md)
		assert.Len(t, md.Fields(), 1)
	})

	t.Run("with actor", func(t *testing.T) {
		ctx := contextutil.WithActor(context.Background(), contextutil.Actor{
			UserID: "u-1", Email: "ana@wsc.com.br", Role: contextutil.RoleUser,
		})

		md := contextutil.ExtractMetadata(ctx)

		assert.Equal(t, "u-1", md.UserID)
		assert.Equal(t, contextutil.RoleUser, md.Role)
		assert.Empty(t, md.RequestID)
		assert.Len(t, md.Fields(), 3)
	})
}

func TestGetLogger(t *testing.T) {
	fallback := zap.NewExample()
	assert.Same(t, fallback, contextutil.GetLogger(context.Background(), fallback))
	assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))

	reqLogger := zap.NewNop()
	ctx := contextutil.WithLogger(context.Background(), reqLogger)
	assert.Same(t, reqLogger, contextutil.GetLogger(ctx, fallback))
}
