package creche

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

func (r *GormRepository) Criar(c *Creche) error {
	return r.DB.Create(c).Error
}

func (r *GormRepository) ListarTodas() ([]Creche, error) {
	var list []Creche
	err := r.DB.Order("data DESC").Find(&list).Error
	return list, err
}

func (r *GormRepository) BuscarPorID(id uint) (*Creche, error) {
	var c Creche
	if err := r.DB.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, erros.ErrNaoEncontrado
		}
		return nil, err
	}
	return &c, nil
}

func (r *GormRepository) Atualizar(c *Creche) error {
	return r.DB.Save(c).Error
}

func (r *GormRepository) Deletar(id uint) error {
	res := r.DB.Delete(&Creche{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return erros.ErrNaoEncontrado
	}
	return nil
}

// BuscarNomesDoPet carrega o nome do pet e do tutor para o snapshot.
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
