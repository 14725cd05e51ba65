package rbac_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/domain"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/rbac"

	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	rows []rbac.PolicyRow
	err  error
}

func (f *fakeRepo) ListPolicies(context.Context) ([]rbac.PolicyRow, error) {
	return f.rows, f.err
}

func enforce(t *testing.T, svc rbac.Service, role, resource, action string) bool {
	t.Helper()
	ok, err := svc.Enforce(domain.EnforceRequest{Role: role, Resource: resource, Action: action})
	assert.NoError(t, err)
	return ok
}

func TestService_Defaults(t *testing.T) {
	svc, err := rbac.NewService(context.Background(), &fakeRepo{})
	assert.NoError(t, err)

	assert.True(t, enforce(t, svc, "admin", domain.ResourceUser, domain.ActionCreate))
	assert.True(t, enforce(t, svc, "admin", domain.ResourceRoster, domain.ActionManage))
	assert.True(t, enforce(t, svc, "user", domain.ResourceRoster, domain.ActionUpdate))
	assert.True(t, enforce(t, svc, "USER", domain.ResourceCampaign, domain.ActionRead))
	assert.False(t, enforce(t, svc, "user", domain.ResourceUser, domain.ActionRead))
	assert.False(t, enforce(t, svc, "user", domain.ResourceRBAC, domain.ActionManage))
	assert.False(t, enforce(t, svc, "guest", domain.ResourceCompany, domain.ActionRead))
}

func TestService_MergesStoredPolicies(t *testing.T) {
	repo := &fakeRepo{rows: []rbac.PolicyRow{
		{Role: "user", Resource: domain.ResourceUser, Action: domain.ActionRead},
		{Role: "auditor", Resource: "*", Action: domain.ActionRead},
	}}
	svc, err := rbac.NewService(context.Background(), repo)
	assert.NoError(t, err)

	assert.True(t, enforce(t, svc, "user", domain.ResourceUser, domain.ActionRead))
	assert.False(t, enforce(t, svc, "user", domain.ResourceUser, domain.ActionCreate))
	assert.True(t, enforce(t, svc, "auditor", domain.ResourceOutreach, domain.ActionRead))
	assert.False(t, enforce(t, svc, "auditor", domain.ResourceOutreach, domain.ActionDelete))
}

func TestService_Reload(t *testing.T) {
	repo := &fakeRepo{}
	svc, err := rbac.NewService(context.Background(), repo)
	assert.NoError(t, err)
	assert.False(t, enforce(t, svc, "auditor", domain.ResourceCompany, domain.ActionRead))

	repo.rows = []rbac.PolicyRow{{Role: "auditor", Resource: domain.ResourceCompany, Action: domain.ActionRead}}
	assert.NoError(t, svc.Reload(context.Background()))
	assert.True(t, enforce(t, svc, "auditor", domain.ResourceCompany, domain.ActionRead))

	repo.err = errors.New("db down")
	assert.Error(t, svc.Reload(context.Background()))
	assert.True(t, enforce(t, svc, "auditor", domain.ResourceCompany, domain.ActionRead))
}

func TestNewService_LoadError(t *testing.T) {
	_, err := rbac.NewService(context.Background(), &fakeRepo{err: errors.New("boom")})
	assert.Error(t, err)
}
