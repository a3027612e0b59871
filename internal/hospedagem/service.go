package hospedagem

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/ClubePet/api-clube-pet/internal/erros"
	"github.com/ClubePet/api-clube-pet/internal/plano"
	"github.com/ClubePet/api-clube-pet/internal/precificacao"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// NomesPet carrega os nomes do pet e do seu tutor no momento da reserva,
// usados para preencher o snapshot da hospedagem.
type NomesPet struct {
	PetNome     string
	ClienteNome string
}

// Repository descreve o acesso a dados usado pelo serviço de hospedagens.
type Repository interface {
	Criar(h *Hospedagem) error
	ListarTodas() ([]Hospedagem, error)
	BuscarPorID(id uint) (*Hospedagem, error)
	Atualizar(h *Hospedagem) error
	Deletar(id uint) error
	BuscarNomesDoPet(petID uint) (*NomesPet, error)
}

// ResolvedorDePlano resolve o nome livre de plano em percentual de
// desconto, informando se algum plano ativo foi encontrado.
type ResolvedorDePlano interface {
	Resolver(nome, tipo string) (float64, bool)
}

// Service aplica as regras de criação, precificação e ciclo de vida das
// hospedagens.
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

// Criar valida, precifica e persiste uma nova hospedagem. A reserva sai
// totalmente precificada ou não é gravada.
func (s *Service) Criar(dto CriarHospedagemDTO) (*Hospedagem, error) {
	if err := s.validate.Struct(dto); err != nil {
		var campos validator.ValidationErrors
		if errors.As(err, &campos) {
			for _, campo := range campos {
				if campo.Field() == "Subtotal" {
					return nil, erros.NovaValidacao("subtotal", "não pode ser negativo")
				}
			}
		}
		return nil, erros.NovaValidacao("", "campos obrigatórios: petId, checkin, checkout")
	}

	checkin, err := parseData(dto.Checkin)
	if err != nil {
		return nil, erros.NovaValidacao("checkin", "data inválida")
	}
	checkout, err := parseData(dto.Checkout)
	if err != nil {
		return nil, erros.NovaValidacao("checkout", "data inválida")
	}

	nomes, err := s.repo.BuscarNomesDoPet(dto.PetID)
	if err != nil {
		if errors.Is(err, erros.ErrNaoEncontrado) {
			return nil, err
		}
		s.log.Error("falha ao buscar pet da hospedagem", zap.Uint("petId", dto.PetID), zap.Error(err))
		return nil, err
	}

	// Snapshot: os nomes valem para o momento da reserva. Só usa os do
	// cadastro quando o chamador não enviou os seus.
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
		if d, encontrado := s.planos.Resolver(dto.Plano, plano.AplicaHospedagem); encontrado {
			desconto = d
		}
	}

	dias := dto.Dias
	if dias <= 0 {
		dias = diasEntre(checkin, checkout)
	}

	h := &Hospedagem{
		PetID:           dto.PetID,
		ClienteNome:     clienteNome,
		PetNome:         petNome,
		Checkin:         checkin,
		Checkout:        checkout,
		Dias:            dias,
		Servicos:        dto.Servicos,
		Plano:           dto.Plano,
		Subtotal:        dto.Subtotal,
		DescontoPercent: desconto,
		Total:           precificacao.CalcularTotal(dto.Subtotal, desconto),
		Status:          StatusPendente,
	}

	if err := s.repo.Criar(h); err != nil {
		s.log.Error("falha ao criar hospedagem", zap.Error(err))
		return nil, err
	}
	return h, nil
}

// Listar retorna todas as hospedagens.
func (s *Service) Listar() ([]Hospedagem, error) {
	return s.repo.ListarTodas()
}

// BuscarPorID retorna uma hospedagem pelo ID.
func (s *Service) BuscarPorID(id uint) (*Hospedagem, error) {
	return s.repo.BuscarPorID(id)
}

// Atualizar altera somente os campos enviados. Status é gravado em
// maiúsculas, sem tabela de transições. Alterações de subtotal, desconto ou
// plano reprecificam o total.
func (s *Service) Atualizar(id uint, dto AtualizarHospedagemDTO) (*Hospedagem, error) {
	h, err := s.repo.BuscarPorID(id)
	if err != nil {
		return nil, err
	}

	if dto.Checkin != nil && *dto.Checkin != "" {
		checkin, err := parseData(*dto.Checkin)
		if err != nil {
			return nil, erros.NovaValidacao("checkin", "data inválida")
		}
		h.Checkin = checkin
	}
	if dto.Checkout != nil && *dto.Checkout != "" {
		checkout, err := parseData(*dto.Checkout)
		if err != nil {
			return nil, erros.NovaValidacao("checkout", "data inválida")
		}
		h.Checkout = checkout
	}
	if dto.ClienteNome != nil {
		h.ClienteNome = *dto.ClienteNome
	}
	if dto.PetNome != nil {
		h.PetNome = *dto.PetNome
	}
	if dto.Dias != nil {
		h.Dias = *dto.Dias
	}
	if dto.Servicos != nil {
		h.Servicos = *dto.Servicos
	}
	if dto.Status != nil && *dto.Status != "" {
		h.Status = strings.ToUpper(strings.TrimSpace(*dto.Status))
	}

	reprecificar := false
	if dto.Subtotal != nil {
		h.Subtotal = *dto.Subtotal
		reprecificar = true
	}
	if dto.DescontoPercent != nil {
		h.DescontoPercent = precificacao.NormalizarDesconto(*dto.DescontoPercent)
		reprecificar = true
	}
	if dto.Plano != nil {
		h.Plano = *dto.Plano
		if d, encontrado := s.planos.Resolver(*dto.Plano, plano.AplicaHospedagem); encontrado {
			h.DescontoPercent = d
		}
		reprecificar = true
	}
	if reprecificar {
		h.Total = precificacao.CalcularTotal(h.Subtotal, h.DescontoPercent)
	}

	if err := s.repo.Atualizar(h); err != nil {
		s.log.Error("falha ao atualizar hospedagem", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return h, nil
}

// Deletar remove a hospedagem definitivamente (sem exclusão lógica).
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

// diasEntre conta as diárias entre checkin e checkout (mínimo 1).
func diasEntre(checkin, checkout time.Time) int {
	dias := int(math.Ceil(checkout.Sub(checkin).Hours() / 24))
	if dias < 1 {
		return 1
	}
	return dias
}
