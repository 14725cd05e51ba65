package rbac

import (
	"context"
	"strings"
	"sync"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/domain"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req domain.EnforceRequest) (bool, error)
	Reload(ctx context.Context) error
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   *zap.Logger
}

// NewService builds the enforcer and loads the policies once.
func NewService(ctx context.Context, repo Repository, logger ...*zap.Logger) (Service, error) {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}

	enforcer, err := NewEnforcer()
	if err != nil {
		return nil, err
	}

	s := &service{repo: repo, enforcer: enforcer, logger: l}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *service) Reload(ctx context.Context) error {
	rows, err := s.repo.ListPolicies(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.enforcer.ClearPolicy()
	for _, g := range defaultGroupings {
		if _, err := s.enforcer.AddGroupingPolicy(g[0], g[1]); err != nil {
			return err
		}
	}

	loaded := 0
	for _, p := range append(append([]PolicyRow{}, DefaultPolicies...), rows...) {
		role := strings.ToLower(strings.TrimSpace(p.Role))
		if role == "" || p.Resource == "" || p.Action == "" {
			continue
		}
		added, err := s.enforcer.AddPolicy(role, p.Resource, p.Action)
		if err != nil {
			return err
		}
		if added {
			loaded++
		}
	}

	s.logger.Info("rbac policies loaded", zap.Int("policies", loaded), zap.Int("from_db", len(rows)))
	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	allowed, err := s.enforcer.Enforce(
		strings.ToLower(strings.TrimSpace(req.Role)),
		strings.TrimSpace(req.Resource),
		strings.TrimSpace(req.Action),
	)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", req.Role),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce",
		zap.String("role", req.Role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}
