package rbac

// PolicyRow grants role the action on resource. "*" matches anything.
type PolicyRow struct {
	Role     string `gorm:"column:role;type:varchar(20);primaryKey"`
	Resource string `gorm:"column:resource;type:varchar(50);primaryKey"`
	Action   string `gorm:"column:action;type:varchar(20);primaryKey"`
}

func (PolicyRow) TableName() string {
	return "role_permissions"
}
