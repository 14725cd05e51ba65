package company

type CreateCompanyRequest struct {
	Code        string `json:"codigo" binding:"omitempty,max=20"`
	LegalName   string `json:"razao_social" binding:"required,max=255"`
	CNPJ        string `json:"cnpj" binding:"omitempty,max=20"`
	Responsible string `json:"responsavel"`
	Phone       string `json:"telefone"`
	Email       string `json:"email" binding:"omitempty,email"`
}

// UpdateCompanyRequest only touches the fields that are present.
type UpdateCompanyRequest struct {
	Code        *string `json:"codigo" binding:"omitempty,min=1,max=20"`
	LegalName   *string `json:"razao_social" binding:"omitempty,min=1,max=255"`
	CNPJ        *string `json:"cnpj"`
	Responsible *string `json:"responsavel"`
	Phone       *string `json:"telefone"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Active      *bool   `json:"ativo"`
}

type ListFilter struct {
	Q      string `form:"q"`
	Active *bool  `form:"ativo"`
}

type CompanyResponse struct {
	ID          string `json:"id"`
	Code        string `json:"codigo"`
	LegalName   string `json:"razao_social"`
	CNPJ        string `json:"cnpj,omitempty"`
	Responsible string `json:"responsavel,omitempty"`
	Phone       string `json:"telefone,omitempty"`
	Email       string `json:"email,omitempty"`
	Active      bool   `json:"ativo"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
