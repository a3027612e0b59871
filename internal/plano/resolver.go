package plano

import (
	"errors"

	"github.com/ClubePet/api-clube-pet/internal/erros"
	"go.uber.org/zap"
)

// Buscador é o recorte do repositório que o Resolver precisa.
type Buscador interface {
	BuscarAtivoPorNome(nome string) (*Plano, error)
}

// Resolver determina o percentual de desconto de uma reserva a partir do
// nome (livre) de plano informado. Plano ausente, inexistente ou inativo
// nunca bloqueia a reserva.
type Resolver struct {
	planos Buscador
	log    *zap.Logger
}

func NewResolver(planos Buscador, log *zap.Logger) *Resolver {
	return &Resolver{planos: planos, log: log}
}

// Resolver devolve o percentual de desconto do plano para o tipo de reserva
// informado (AplicaHospedagem ou AplicaCreche) e se algum plano ativo foi
// encontrado. Plano encontrado mas fora de escopo resolve com desconto
// zero; nome não resolvido devolve encontrado=false para o chamador decidir
// o desconto por conta própria.
func (r *Resolver) Resolver(nome, tipo string) (float64, bool) {
	if nome == "" {
		return 0, false
	}
	p, err := r.planos.BuscarAtivoPorNome(nome)
	if err != nil {
		if !errors.Is(err, erros.ErrNaoEncontrado) {
			// Falha de banco na resolução também não bloqueia a reserva.
			r.log.Warn("falha ao resolver plano", zap.String("plano", nome), zap.Error(err))
		}
		return 0, false
	}
	if !p.AplicaAoTipo(tipo) {
		return 0, true
	}
	return p.DescontoPercent, true
}
