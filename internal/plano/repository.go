package plano

import (
	"errors"

	"github.com/ClubePet/api-clube-pet/internal/erros"
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Plano
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Create insere um novo plano
func (r *Repository) Create(p *Plano) error {
	return r.DB.Create(p).Error
}

// ListarAtivos retorna apenas planos ativos, do mais recente para o mais
// antigo.
func (r *Repository) ListarAtivos() ([]Plano, error) {
	var list []Plano
	err := r.DB.Where("ativo = ?", true).Order("data_criacao DESC").Find(&list).Error
	return list, err
}

// BuscarPorID retorna um plano pelo ID, ativo ou não.
func (r *Repository) BuscarPorID(id uint) (*Plano, error) {
	var p Plano
	if err := r.DB.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, erros.ErrNaoEncontrado
		}
		return nil, err
	}
	return &p, nil
}

// BuscarAtivoPorNome retorna o plano ativo com o nome informado.
func (r *Repository) BuscarAtivoPorNome(nome string) (*Plano, error) {
	var p Plano
	err := r.DB.Where("nome = ? AND ativo = ?", nome, true).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, erros.ErrNaoEncontrado
		}
		return nil, err
	}
	return &p, nil
}

// Desativar faz a exclusão lógica do plano.
func (r *Repository) Desativar(id uint) error {
	res := r.DB.Model(&Plano{}).Where("id = ?", id).Update("ativo", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return erros.ErrNaoEncontrado
	}
	return nil
}
