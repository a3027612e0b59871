package creche

import (
	"errors"
	"strings"
	"time"

	"github.com/ClubePet/api-clube-pet/internal/erros"
	"github.com/ClubePet/api-clube-pet/internal/plano"
	"github.com/ClubePet/api-clube-pet/internal/precificacao"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// NomesPet carrega os nomes do pet e do tutor no momento da reserva.
type NomesPet struct {
	PetNome     string
	ClienteNome string
}

// Repository descreve o acesso a dados usado pelo serviço de creches.
type Repository interface {
	Criar(c *Creche) error
	ListarTodas() ([]Creche, error)
	BuscarPorID(id uint) (*Creche, error)
	Atualizar(c *Creche) error
	Deletar(id uint) error
	BuscarNomesDoPet(petID uint) (*NomesPet, error)
}

// ResolvedorDePlano resolve o nome livre de plano em percentual de
// desconto, informando se algum plano ativo foi encontrado.
type ResolvedorDePlano interface {
	Resolver(nome, tipo string) (float64, bool)
}

// Service aplica as regras de criação, precificação e ciclo de vida das
// creches. As regras espelham as de hospedagem, com a resolução de plano no
// escopo "creche".
type Service struct {
	repo     Repository
	planos   ResolvedorDePlano
	log      *zap.Logger
	validate *validator.Validate
}

func NewService(repo Repository, planos ResolvedorDePlano, log *zap.Logger) *Service {
	return &Service{
		repo:     repo,
		planos:   planos,
		log:      log,
		validate: validator.New(),
	}
}

// Criar valida, precifica e persiste uma nova creche. A reserva sai
// totalmente precificada ou não é gravada.
func (s *Service) Criar(dto CriarCrecheDTO) (*Creche, error) {
	if err := s.validate.Struct(dto); err != nil {
		var campos validator.ValidationErrors
		if errors.As(err, &campos) {
			for _, campo := range campos {
				if campo.Field() == "Subtotal" {
					return nil, erros.NovaValidacao("subtotal", "não pode ser negativo")
				}
			}
		}
		return nil, erros.NovaValidacao("", "campos obrigatórios: petId, data, periodo")
	}

	data, err := parseData(dto.Data)
	if err != nil {
		return nil, erros.NovaValidacao("data", "data inválida")
	}

	nomes, err := s.repo.BuscarNomesDoPet(dto.PetID)
	if err != nil {
		if errors.Is(err, erros.ErrNaoEncontrado) {
			return nil, err
		}
		s.log.Error("falha ao buscar pet da creche", zap.Uint("petId", dto.PetID), zap.Error(err))
		return nil, err
	}

	// Snapshot do momento da reserva; o cadastro só é usado quando o
	// chamador não enviou os nomes.
	clienteNome := dto.ClienteNome
	if clienteNome == "" {
		clienteNome = nomes.ClienteNome
	}
	petNome := dto.PetNome
	if petNome == "" {
		petNome = nomes.PetNome
	}

	// Plano resolvido governa o desconto (zero quando fora de escopo);
	// nome não resolvido cai no desconto explícito do chamador.
	desconto := precificacao.NormalizarDesconto(dto.DescontoPercent)
	if dto.Plano != "" {
		if d, encontrado := s.planos.Resolver(dto.Plano, plano.AplicaCreche); encontrado {
			desconto = d
		}
	}

	dias := dto.Dias
	if dias <= 0 {
		dias = 1
	}

	c := &Creche{
		PetID:           dto.PetID,
		ClienteNome:     clienteNome,
		PetNome:         petNome,
		Data:            data,
		Periodo:         dto.Periodo,
		Entrada:         dto.Entrada,
		Saida:           dto.Saida,
		Dias:            dias,
		Atividades:      dto.Atividades,
		Plano:           dto.Plano,
		Subtotal:        dto.Subtotal,
		DescontoPercent: desconto,
		Total:           precificacao.CalcularTotal(dto.Subtotal, desconto),
		Status:          StatusPendente,
	}

	if err := s.repo.Criar(c); err != nil {
		s.log.Error("falha ao criar creche", zap.Error(err))
		return nil, err
	}
	return c, nil
}

// Listar retorna todas as creches.
func (s *Service) Listar() ([]Creche, error) {
	return s.repo.ListarTodas()
}

// BuscarPorID retorna uma creche pelo ID.
func (s *Service) BuscarPorID(id uint) (*Creche, error) {
	return s.repo.BuscarPorID(id)
}

// Atualizar altera somente os campos enviados; status vai para maiúsculas
// sem tabela de transições e mudanças de preço reprecificam o total.
func (s *Service) Atualizar(id uint, dto AtualizarCrecheDTO) (*Creche, error) {
	c, err := s.repo.BuscarPorID(id)
	if err != nil {
		return nil, err
	}

	if dto.Data != nil && *dto.Data != "" {
		data, err := parseData(*dto.Data)
		if err != nil {
			return nil, erros.NovaValidacao("data", "data inválida")
		}
		c.Data = data
	}
	if dto.ClienteNome != nil {
		c.ClienteNome = *dto.ClienteNome
	}
	if dto.PetNome != nil {
		c.PetNome = *dto.PetNome
	}
	if dto.Periodo != nil {
		c.Periodo = *dto.Periodo
	}
	if dto.Entrada != nil {
		c.Entrada = *dto.Entrada
	}
	if dto.Saida != nil {
		c.Saida = *dto.Saida
	}
	if dto.Dias != nil {
		c.Dias = *dto.Dias
	}
	if dto.Atividades != nil {
		c.Atividades = *dto.Atividades
	}
	if dto.Status != nil && *dto.Status != "" {
		c.Status = strings.ToUpper(strings.TrimSpace(*dto.Status))
	}

	reprecificar := false
	if dto.Subtotal != nil {
		c.Subtotal = *dto.Subtotal
		reprecificar = true
	}
	if dto.DescontoPercent != nil {
		c.DescontoPercent = precificacao.NormalizarDesconto(*dto.DescontoPercent)
		reprecificar = true
	}
	if dto.Plano != nil {
		c.Plano = *dto.Plano
		if d, encontrado := s.planos.Resolver(*dto.Plano, plano.AplicaCreche); encontrado {
			c.DescontoPercent = d
		}
		reprecificar = true
	}
	if reprecificar {
		c.Total = precificacao.CalcularTotal(c.Subtotal, c.DescontoPercent)
	}

	if err := s.repo.Atualizar(c); err != nil {
		s.log.Error("falha ao atualizar creche", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return c, nil
}

// Deletar remove a creche definitivamente (sem exclusão lógica).
func (s *Service) Deletar(id uint) error {
	return s.repo.Deletar(id)
}

// parseData aceita RFC3339 ou somente a data.
func parseData(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
