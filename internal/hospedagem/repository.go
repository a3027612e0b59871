package hospedagem

import (
	"errors"

	"github.com/ClubePet/api-clube-pet/internal/cliente"
	"github.com/ClubePet/api-clube-pet/internal/erros"
	"github.com/ClubePet/api-clube-pet/internal/pet"
	"gorm.io/gorm"
)

// GormRepository implementa Repository sobre o Postgres.
type GormRepository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{DB: db}
}

func (r *GormRepository) Criar(h *Hospedagem) error {
	return r.DB.Create(h).Error
}

func (r *GormRepository) ListarTodas() ([]Hospedagem, error) {
	var list []Hospedagem
	err := r.DB.Order("checkin DESC").Find(&list).Error
	return list, err
}

func (r *GormRepository) BuscarPorID(id uint) (*Hospedagem, error) {
	var h Hospedagem
	if err := r.DB.First(&h, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, erros.ErrNaoEncontrado
		}
		return nil, err
	}
	return &h, nil
}

func (r *GormRepository) Atualizar(h *Hospedagem) error {
	return r.DB.Save(h).Error
}

func (r *GormRepository) Deletar(id uint) error {
	res := r.DB.Delete(&Hospedagem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return erros.ErrNaoEncontrado
	}
	return nil
}

// BuscarNomesDoPet carrega o nome do pet e do tutor para o snapshot da
// reserva.
func (r *GormRepository) BuscarNomesDoPet(petID uint) (*NomesPet, error) {
	var p pet.Pet
	if err := r.DB.First(&p, petID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, erros.ErrNaoEncontrado
		}
		return nil, err
	}
	var c cliente.Cliente
	if err := r.DB.First(&c, p.ClienteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, erros.ErrNaoEncontrado
		}
		return nil, err
	}
	return &NomesPet{PetNome: p.Nome, ClienteNome: c.Nome}, nil
}
