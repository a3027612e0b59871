package configuracao

import (
	"errors"

	"github.com/ClubePet/api-clube-pet/internal/erros"
	"gorm.io/gorm"
)

// Repository descreve o acesso às duas tabelas de configuração. Cada busca
// localiza o registro pela chave fixa, nunca por um ID do chamador.
type Repository interface {
	BuscarPrecos() (*Configuracao, error)
	CriarPrecos(c *Configuracao) error
	SalvarPrecos(c *Configuracao) error

	BuscarComunicacao() (*ConfiguracaoComunicacao, error)
	CriarComunicacao(c *ConfiguracaoComunicacao) error
	SalvarComunicacao(c *ConfiguracaoComunicacao) error
}

// GormRepository implementa Repository sobre o Postgres.
type GormRepository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{DB: db}
}

func (r *GormRepository) BuscarPrecos() (*Configuracao, error) {
	var c Configuracao
	err := r.DB.Where("chave = ?", ChavePadrao).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, erros.ErrNaoEncontrado
		}
		return nil, err
	}
	return &c, nil
}

// CriarPrecos insere o registro único; o índice único sobre a chave barra a
// segunda criação concorrente.
func (r *GormRepository) CriarPrecos(c *Configuracao) error {
	return r.DB.Create(c).Error
}

func (r *GormRepository) SalvarPrecos(c *Configuracao) error {
	return r.DB.Save(c).Error
}

func (r *GormRepository) BuscarComunicacao() (*ConfiguracaoComunicacao, error) {
	var c ConfiguracaoComunicacao
	err := r.DB.Where("chave = ?", ChavePadrao).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, erros.ErrNaoEncontrado
		}
		return nil, err
	}
	return &c, nil
}

func (r *GormRepository) CriarComunicacao(c *ConfiguracaoComunicacao) error {
	return r.DB.Create(c).Error
}

func (r *GormRepository) SalvarComunicacao(c *ConfiguracaoComunicacao) error {
	return r.DB.Save(c).Error
}
