package user

import "time"

// ProvisionRequest is validated by hand so the endpoint can answer with the
// flat "Missing fields" body instead of validator details.
type ProvisionRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

type UpdateStatusRequest struct {
	Active *bool `json:"ativo" binding:"required"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	AuthID    string    `json:"auth_id"`
	Email     string    `json:"email"`
	Name      string    `json:"nome"`
	Role      string    `json:"role"`
	Active    bool      `json:"ativo"`
	CreatedAt time.Time `json:"created_at"`
}

func mapToResponse(u User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		AuthID:    u.AuthID.String(),
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}
