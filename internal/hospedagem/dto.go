package hospedagem

// CriarHospedagemDTO define o corpo de POST /hospedagens. Checkin e
// checkout aceitam RFC3339 ou somente a data (2006-01-02).
type CriarHospedagemDTO struct {
	PetID           uint     `json:"petId" validate:"required"`
	ClienteNome     string   `json:"clienteNome"`
	PetNome         string   `json:"petNome"`
	Checkin         string   `json:"checkin" validate:"required"`
	Checkout        string   `json:"checkout" validate:"required"`
	Dias            int      `json:"dias"`
	Servicos        []string `json:"servicos"`
	Plano           string   `json:"plano"`
	Subtotal        float64  `json:"subtotal" validate:"gte=0"`
	DescontoPercent float64  `json:"descontoPercent"`
}

// AtualizarHospedagemDTO aceita atualização parcial: só os campos enviados
// são alterados. Nomes nunca são rederivados do cliente/pet atual.
type AtualizarHospedagemDTO struct {
	ClienteNome     *string   `json:"clienteNome"`
	PetNome         *string   `json:"petNome"`
	Checkin         *string   `json:"checkin"`
	Checkout        *string   `json:"checkout"`
	Dias            *int      `json:"dias"`
	Servicos        *[]string `json:"servicos"`
	Plano           *string   `json:"plano"`
	Subtotal        *float64  `json:"subtotal"`
	DescontoPercent *float64  `json:"descontoPercent"`
	Status          *string   `json:"status"`
}
