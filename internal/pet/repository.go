package pet

import (
	"errors"

	"github.com/ClubePet/api-clube-pet/internal/erros"
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Pet e PetImagem
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(p *Pet) error {
	return r.DB.Create(p).Error
}

// ListarTodos retorna todos os pets com suas imagens.
func (r *Repository) ListarTodos() ([]Pet, error) {
	var list []Pet
	err := r.DB.Preload("Imagens").Find(&list).Error
	return list, err
}

func (r *Repository) BuscarPorID(id uint) (*Pet, error) {
	var p Pet
	if err := r.DB.Preload("Imagens").First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, erros.ErrNaoEncontrado
		}
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Atualizar(p *Pet) error {
	return r.DB.Save(p).Error
}

func (r *Repository) Deletar(id uint) error {
	res := r.DB.Delete(&Pet{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return erros.ErrNaoEncontrado
	}
	return nil
}

// CriarImagem insere uma imagem para o pet.
func (r *Repository) CriarImagem(img *PetImagem) error {
	return r.DB.Create(img).Error
}

// DeletarImagem remove uma imagem pelo ID.
func (r *Repository) DeletarImagem(id uint) error {
	res := r.DB.Delete(&PetImagem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return erros.ErrNaoEncontrado
	}
	return nil
}
