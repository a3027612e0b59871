package plano

import (
	"time"

	"gorm.io/gorm"
)

// Valores aceitos no campo Aplica: a quais tipos de reserva o plano pode
// conceder desconto.
const (
	AplicaHospedagem = "hospedagem"
	AplicaCreche     = "creche"
	AplicaAmbos      = "ambos"
)

// Plano representa um plano customizado de desconto. A exclusão é lógica:
// Ativo passa a false e o plano some da listagem, mas continua consultável
// por ID.
type Plano struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Nome            string    `gorm:"size:255;not null;uniqueIndex" json:"nome"`
	Meses           int       `gorm:"not null" json:"meses"`
	DiasMes         int       `gorm:"not null" json:"diasMes"`
	DescontoPercent float64   `gorm:"not null;default:0" json:"descontoPercent"`
	Aplica          string    `gorm:"size:50;not null" json:"aplica"`
	Ativo           bool      `gorm:"not null;default:true" json:"ativo"`
	DataCriacao     time.Time `gorm:"not null;autoCreateTime" json:"dataCriacao"`
}

// AplicaAoTipo informa se o plano pode descontar reservas do tipo dado.
func (p *Plano) AplicaAoTipo(tipo string) bool {
	return p.Aplica == tipo || p.Aplica == AplicaAmbos
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Plano{})
}
