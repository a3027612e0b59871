package hospedagem

import (
	"time"

	"gorm.io/gorm"
)

// Status conhecidos de uma hospedagem. O campo aceita qualquer token em
// maiúsculas enviado pelo painel; estes são os usados pelo fluxo padrão.
const (
	StatusPendente  = "PENDENTE"
	StatusCheckin   = "CHECKIN"
	StatusCheckout  = "CHECKOUT"
	StatusCancelado = "CANCELADO"
)

// Hospedagem é uma reserva de estadia de um pet. ClienteNome e PetNome são
// cópias tiradas no momento da criação e não acompanham renomeações
// posteriores do cliente ou do pet.
type Hospedagem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	PetID       uint   `gorm:"not null;index" json:"petId"`
	ClienteNome string `gorm:"size:255" json:"clienteNome"`
	PetNome     string `gorm:"size:255" json:"petNome"`

	Checkin  time.Time `gorm:"not null" json:"checkin"`
	Checkout time.Time `gorm:"not null" json:"checkout"`
	Dias     int       `gorm:"not null;default:1" json:"dias"`

	// Serviços selecionados para a estadia, em JSONB
	Servicos []string `gorm:"type:jsonb;serializer:json" json:"servicos"`

	// Nome livre de plano; resolvido na criação, sem chave estrangeira
	Plano string `gorm:"size:255" json:"plano"`

	Subtotal        float64 `gorm:"not null;default:0" json:"subtotal"`
	DescontoPercent float64 `gorm:"not null;default:0" json:"descontoPercent"`
	Total           float64 `gorm:"not null;default:0" json:"total"`

	Status string `gorm:"size:50;not null;default:'PENDENTE'" json:"status"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Hospedagem{})
}
