package contact

type CreateContactRequest struct {
	Name     string `json:"nome" binding:"required,max=255"`
	Phone    string `json:"telefone"`
	Email    string `json:"email" binding:"omitempty,email"`
	Position string `json:"cargo" binding:"omitempty,max=100"`
}

type UpdateContactRequest struct {
	Name     *string `json:"nome" binding:"omitempty,min=1,max=255"`
	Phone    *string `json:"telefone"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Position *string `json:"cargo" binding:"omitempty,max=100"`
}

type ContactResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"empresa_id"`
	Name      string `json:"nome"`
	Phone     string `json:"telefone,omitempty"`
	Email     string `json:"email,omitempty"`
	Position  string `json:"cargo,omitempty"`
	CreatedAt string `json:"created_at"`
}
