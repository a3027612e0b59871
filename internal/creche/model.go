package creche

import (
	"time"

	"gorm.io/gorm"
)

// Status conhecidos de uma creche; o campo aceita qualquer token em
// maiúsculas.
const (
	StatusPendente  = "PENDENTE"
	StatusCheckin   = "CHECKIN"
	StatusCheckout  = "CHECKOUT"
	StatusCancelado = "CANCELADO"
)

// Períodos usuais da creche.
const (
	PeriodoMeio     = "meio"
	PeriodoIntegral = "integral"
)

// Creche é uma reserva de creche (daycare) de um pet. ClienteNome e
// PetNome são cópias tiradas na criação e não acompanham renomeações
// posteriores.
type Creche struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	PetID       uint   `gorm:"not null;index" json:"petId"`
	ClienteNome string `gorm:"size:255" json:"clienteNome"`
	PetNome     string `gorm:"size:255" json:"petNome"`

	Data    time.Time `gorm:"not null" json:"data"`
	Periodo string    `gorm:"size:50;not null" json:"periodo"`
	Entrada string    `gorm:"size:20" json:"entrada"`
	Saida   string    `gorm:"size:20" json:"saida"`
	Dias    int       `gorm:"not null;default:1" json:"dias"`

	// Atividades selecionadas, em JSONB
	Atividades []string `gorm:"type:jsonb;serializer:json" json:"atividades"`

	Plano string `gorm:"size:255" json:"plano"`

	Subtotal        float64 `gorm:"not null;default:0" json:"subtotal"`
	DescontoPercent float64 `gorm:"not null;default:0" json:"descontoPercent"`
	Total           float64 `gorm:"not null;default:0" json:"total"`

	Status string `gorm:"size:50;not null;default:'PENDENTE'" json:"status"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Creche{})
}
