package creche

// CriarCrecheDTO define o corpo de POST /creches. Data aceita RFC3339 ou
// somente a data (2006-01-02).
type CriarCrecheDTO struct {
	PetID           uint     `json:"petId" validate:"required"`
	ClienteNome     string   `json:"clienteNome"`
	PetNome         string   `json:"petNome"`
	Data            string   `json:"data" validate:"required"`
	Periodo         string   `json:"periodo" validate:"required"`
	Entrada         string   `json:"entrada"`
	Saida           string   `json:"saida"`
	Dias            int      `json:"dias"`
	Atividades      []string `json:"atividades"`
	Plano           string   `json:"plano"`
	Subtotal        float64  `json:"subtotal" validate:"gte=0"`
	DescontoPercent float64  `json:"descontoPercent"`
}

// AtualizarCrecheDTO aceita atualização parcial: só os campos enviados são
// alterados. Nomes nunca são rederivados do cliente/pet atual.
type AtualizarCrecheDTO struct {
	ClienteNome     *string   `json:"clienteNome"`
	PetNome         *string   `json:"petNome"`
	Data            *string   `json:"data"`
	Periodo         *string   `json:"periodo"`
	Entrada         *string   `json:"entrada"`
	Saida           *string   `json:"saida"`
	Dias            *int      `json:"dias"`
	Atividades      *[]string `json:"atividades"`
	Plano           *string   `json:"plano"`
	Subtotal        *float64  `json:"subtotal"`
	DescontoPercent *float64  `json:"descontoPercent"`
	Status          *string   `json:"status"`
}
