// Package audio accepts recorded charge messages and stores them where the
// automation workflow can fetch them by URL.
package audio

import (
	"context"
	"fmt"
	"io"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/config"

	"go.uber.org/zap"
)

type Storage interface {
	// Put stores body under key, replacing any existing object, and
	// returns the public URL.
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
}

func NewStorage(cfg config.StorageConfig, logger ...*zap.Logger) (Storage, error) {
	l := zap.L().Named("audio.storage")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audio.storage")
	}

	switch cfg.Backend {
	case config.StorageObjectStore:
		l.Info("using object store", zap.String("bucket", cfg.Bucket))
		return NewObjectStore(cfg.URL, cfg.ServiceRoleKey, cfg.Bucket, nil), nil
	case config.StorageLocal:
		l.Info("using local media directory", zap.String("dir", cfg.LocalDir))
		return NewLocalStorage(cfg.LocalDir, cfg.PublicBaseURL), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
