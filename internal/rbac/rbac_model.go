package rbac

import (
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/domain"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/contextutil"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const modelText = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && (p.obj == "*" || r.obj == p.obj) && (p.act == "*" || r.act == p.act)
`

const wildcard = "*"

// DefaultPolicies are always loaded, before the rows from role_permissions.
var DefaultPolicies = []PolicyRow{
	{Role: contextutil.RoleAdmin, Resource: wildcard, Action: wildcard},
	{Role: contextutil.RoleUser, Resource: domain.ResourceCompany, Action: wildcard},
	{Role: contextutil.RoleUser, Resource: domain.ResourceContact, Action: wildcard},
	{Role: contextutil.RoleUser, Resource: domain.ResourceRoster, Action: wildcard},
	{Role: contextutil.RoleUser, Resource: domain.ResourceOutreach, Action: wildcard},
	{Role: contextutil.RoleUser, Resource: domain.ResourceCampaign, Action: wildcard},
}

// defaultGroupings make admin inherit every user grant.
var defaultGroupings = [][2]string{
	{contextutil.RoleAdmin, contextutil.RoleUser},
}

func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}
	return casbin.NewEnforcer(m)
}
