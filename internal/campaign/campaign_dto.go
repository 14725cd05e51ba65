package campaign

type CreateListRequest struct {
	Name           string `json:"nome" binding:"required,max=255"`
	Type           string `json:"tipo"`
	FilterDay01    bool   `json:"filtro_dia_01"`
	FilterDay25    bool   `json:"filtro_dia_25"`
	FilterPending  bool   `json:"filtro_pendentes"`
	DefaultMessage string `json:"mensagem_padrao"`
	DefaultKind    string `json:"tipo_mensagem_padrao"`
	AudioURL       string `json:"arquivo_audio_url"`
}

type UpdateItemStatusRequest struct {
	Status string  `json:"status_envio" binding:"required"`
	Notes  *string `json:"observacoes"`
}

type BulkUpdateRequest struct {
	IDs     []string `json:"ids" binding:"required,min=1,dive,uuid"`
	Status  string   `json:"status_envio" binding:"required"`
	Message string   `json:"mensagem"`
	Kind    string   `json:"tipo_mensagem"`
}

type UpdateItemResponseRequest struct {
	Status string `json:"status_resposta" binding:"required"`
}

type ListResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"nome"`
	Type           string  `json:"tipo,omitempty"`
	Period         string  `json:"competencia"`
	FilterDay01    bool    `json:"filtro_dia_01"`
	FilterDay25    bool    `json:"filtro_dia_25"`
	FilterPending  bool    `json:"filtro_pendentes"`
	Status         string  `json:"status"`
	TotalCompanies int     `json:"total_empresas"`
	TotalSent      int     `json:"total_enviados"`
	DefaultMessage *string `json:"mensagem_padrao,omitempty"`
	DefaultKind    *string `json:"tipo_mensagem_padrao,omitempty"`
	AudioURL       *string `json:"arquivo_audio_url,omitempty"`
	CreatedAt      string  `json:"created_at"`
}

type ItemCompany struct {
	ID    string `json:"id"`
	Code  string `json:"codigo"`
	Name  string `json:"razao_social"`
	Phone string `json:"telefone,omitempty"`
}

type ItemResponse struct {
	ID             string       `json:"id"`
	ListID         string       `json:"lista_id"`
	CompanyID      string       `json:"empresa_id"`
	SendStatus     string       `json:"status_envio"`
	ResponseStatus string       `json:"status_resposta"`
	Attempts       int          `json:"tentativas"`
	SentAt         *string      `json:"data_envio"`
	SentMessage    *string      `json:"mensagem_enviada,omitempty"`
	Kind           *string      `json:"tipo_mensagem,omitempty"`
	Notes          *string      `json:"observacoes,omitempty"`
	Company        *ItemCompany `json:"empresa,omitempty"`
}

type ListDetailResponse struct {
	ListResponse
	Items []ItemResponse `json:"cobrancas"`
}

type CloseMonthResponse struct {
	Finalized int64 `json:"finalizadas"`
}
