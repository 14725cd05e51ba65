package auth

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type AuthResponse struct {
	AuthID string `json:"auth_id"`
	UserID string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"nome"`
	Role   string `json:"role"`
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
