package roster

type ListFilter struct {
	Day *int `form:"dia"`
}

type AddEntryRequest struct {
	CompanyID string `json:"empresa_id" binding:"required,uuid"`
	DueDay    int    `json:"dia_cobranca" binding:"required"`
	Phone     string `json:"telefone_cobranca"`
	Notes     string `json:"observacoes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status_ponto" binding:"required"`
}

type UpdateNotesRequest struct {
	Notes string `json:"observacoes"`
}

type UpdatePhoneRequest struct {
	Phone string `json:"telefone_cobranca"`
}

type ResetRequest struct {
	Confirmation string `json:"confirmacao"`
}

type CompanySummary struct {
	ID          string `json:"id"`
	Code        string `json:"codigo"`
	LegalName   string `json:"razao_social"`
	Responsible string `json:"responsavel,omitempty"`
	Phone       string `json:"telefone,omitempty"`
}

type EntryResponse struct {
	ID            string         `json:"id"`
	CompanyID     string         `json:"empresa_id"`
	DueDay        int            `json:"dia_cobranca"`
	Phone         string         `json:"telefone_cobranca,omitempty"`
	Status        string         `json:"status_ponto"`
	Notes         string         `json:"observacoes,omitempty"`
	LastChargedAt *string        `json:"ultima_cobranca"`
	Active        bool           `json:"ativo"`
	Company       CompanySummary `json:"empresa"`
	CreatedAt     string         `json:"created_at"`
}

type AvailableCompanyResponse struct {
	ID        string `json:"id"`
	Code      string `json:"codigo"`
	LegalName string `json:"razao_social"`
	Phone     string `json:"telefone,omitempty"`
}

type StatsResponse struct {
	Total       int64 `json:"total"`
	Pending     int64 `json:"pendente"`
	Received    int64 `json:"recebido"`
	NotReceived int64 `json:"nao_recebido"`
	Sent        int64 `json:"enviado"`
	Error       int64 `json:"erro"`
}

type ResetResponse struct {
	Reset int64 `json:"resetadas"`
}
