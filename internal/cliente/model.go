package cliente

import (
	"time"

	"github.com/ClubePet/api-clube-pet/internal/pet"
	"gorm.io/gorm"
)

// Cliente representa o tutor dos pets atendidos pelo clube.
type Cliente struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Nome       string `gorm:"size:255;not null" json:"nome"`
	Telefone   string `gorm:"size:50;not null" json:"telefone"`
	Email      string `gorm:"size:255" json:"email"`
	CPF        string `gorm:"size:20" json:"cpf"`
	Endereco   string `json:"endereco"`
	Emergencia string `gorm:"size:255" json:"emergencia"`

	// Relação 1-N com Pets
	Pets []pet.Pet `gorm:"foreignKey:ClienteID;constraint:OnDelete:CASCADE" json:"pets"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Cliente{})
}
