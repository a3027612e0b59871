package cliente

import (
	"errors"

	"github.com/ClubePet/api-clube-pet/internal/erros"
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Cliente
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(c *Cliente) error {
	return r.DB.Create(c).Error
}

// ListarTodos retorna todos os clientes com seus pets.
func (r *Repository) ListarTodos() ([]Cliente, error) {
	var list []Cliente
	err := r.DB.Preload("Pets").Find(&list).Error
	return list, err
}

func (r *Repository) BuscarPorID(id uint) (*Cliente, error) {
	var c Cliente
	if err := r.DB.Preload("Pets").First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, erros.ErrNaoEncontrado
		}
		return nil, err
	}
	return &c, nil
}

func (r *Repository) Atualizar(c *Cliente) error {
	return r.DB.Save(c).Error
}

func (r *Repository) Deletar(id uint) error {
	res := r.DB.Delete(&Cliente{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return erros.ErrNaoEncontrado
	}
	return nil
}
