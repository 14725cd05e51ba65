package domain

// EnforceRequest asks whether a role may perform action on resource.
type EnforceRequest struct {
	Role     string `json:"role" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

// Resources guarded by the role policies.
const (
	ResourceCompany  = "company"
	ResourceContact  = "contact"
	ResourceRoster   = "roster"
	ResourceOutreach = "outreach"
	ResourceCampaign = "campaign"
	ResourceUser     = "user"
	ResourceRBAC     = "rbac"
)

const (
	ActionRead   = "read"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionManage = "manage"
)
