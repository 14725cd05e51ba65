package counter

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

const (
	// CompanyCode numbers companies registered without an explicit codigo.
	CompanyCode = "empresa_codigo"

	scopeGlobal = "global"
)

//go:generate mockgen -source=counter_repo.go -destination=mock/counter_repo_mock.go -package=mock
type Repository interface {
	Next(ctx context.Context, name string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Next increments and returns the named counter in one statement. Values
// taken by a transaction that later rolls back are not reused.
func (r *repository) Next(ctx context.Context, name string) (int64, error) {
	var value int64
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO sequence_counters (scope, counter_type, last_value, updated_at)
		VALUES (?, ?, 1, now())
		ON CONFLICT (scope, counter_type) DO UPDATE
		SET last_value = sequence_counters.last_value + 1, updated_at = now()
		RETURNING last_value
	`, scopeGlobal, name).Scan(&value).Error
	if err != nil {
		return 0, fmt.Errorf("next %s: %w", name, err)
	}
	return value, nil
}

// FormatCode renders a counter value as a zero-padded, four-digit code.
func FormatCode(n int64) string {
	return fmt.Sprintf("%04d", n)
}
