package pet

import (
	"time"

	"gorm.io/gorm"
)

// Pet pertence a exatamente um cliente. Porte e temperamento são tokens
// canônicos em maiúsculas (ver normalizacao.go).
type Pet struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	ClienteID uint `gorm:"not null;index" json:"clienteId"`

	Nome         string   `gorm:"size:255;not null" json:"nome"`
	Especie      string   `gorm:"size:100;not null" json:"especie"`
	Raca         string   `gorm:"size:100;not null" json:"raca"`
	Tamanho      string   `gorm:"size:50;not null" json:"tamanho"`
	Temperamento string   `gorm:"size:50;not null" json:"temperamento"`
	Peso         *float64 `json:"peso"`
	Idade        string   `gorm:"size:50" json:"idade"`
	Castrado     bool     `json:"castrado"`
	Medicamentos string   `json:"medicamentos"`

	CartaoVacinaNumero string `gorm:"size:100" json:"cartaoVacinaNumero"`
	Observacoes        string `json:"observacoes"`

	// Relação 1-N com imagens
	Imagens []PetImagem `gorm:"foreignKey:PetID;constraint:OnDelete:CASCADE" json:"imagens"`
}

// PetImagem é uma imagem da galeria ou do perfil de um pet.
type PetImagem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	PetID uint   `gorm:"not null;index" json:"petId"`
	Nome  string `gorm:"size:255;not null;default:'Imagem'" json:"nome"`
	Src   string `gorm:"not null" json:"src"`
	Tipo  string `gorm:"size:50;not null;default:'galeria'" json:"tipo"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Pet{}, &PetImagem{})
}
