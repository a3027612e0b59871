package configuracao

import (
	"errors"

	"github.com/ClubePet/api-clube-pet/internal/erros"
	"go.uber.org/zap"
)

// Service implementa o acesso idempotente aos dois registros únicos de
// configuração: a primeira leitura materializa os padrões, leituras
// seguintes devolvem sempre o mesmo registro.
type Service struct {
	repo Repository
	log  *zap.Logger
}

func NewService(repo Repository, log *zap.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// ObterPrecos devolve a configuração de preços, criando-a com os valores
// padrão na primeira consulta. Se duas chamadas disputarem a criação, a
// perdedora relê o registro da vencedora.
func (s *Service) ObterPrecos() (*Configuracao, error) {
	c, err := s.repo.BuscarPrecos()
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, erros.ErrNaoEncontrado) {
		return nil, err
	}

	padrao := PrecosPadrao()
	if err := s.repo.CriarPrecos(padrao); err != nil {
		// Perdeu a corrida da primeira criação: o índice único barrou a
		// duplicata, então o registro já existe.
		s.log.Warn("criação da configuração de preços disputada", zap.Error(err))
		return s.repo.BuscarPrecos()
	}
	return padrao, nil
}

// SalvarPrecos atualiza a configuração de preços em vigor, criando-a se
// ainda não existir. O chamador nunca informa ID.
func (s *Service) SalvarPrecos(dto AtualizarPrecosDTO) (*Configuracao, error) {
	c, err := s.ObterPrecos()
	if err != nil {
		return nil, err
	}

	if dto.DiariaPequeno != nil {
		c.DiariaPequeno = *dto.DiariaPequeno
	}
	if dto.DiariaMedio != nil {
		c.DiariaMedio = *dto.DiariaMedio
	}
	if dto.DiariaGrande != nil {
		c.DiariaGrande = *dto.DiariaGrande
	}
	if dto.CrecheMeioPeriodo != nil {
		c.CrecheMeioPeriodo = *dto.CrecheMeioPeriodo
	}
	if dto.CrecheIntegral != nil {
		c.CrecheIntegral = *dto.CrecheIntegral
	}

	if err := s.repo.SalvarPrecos(c); err != nil {
		s.log.Error("falha ao salvar configuração de preços", zap.Error(err))
		return nil, err
	}
	return c, nil
}

// ObterComunicacao devolve a configuração de comunicação, criando-a com os
// modelos de mensagem padrão na primeira consulta.
func (s *Service) ObterComunicacao() (*ConfiguracaoComunicacao, error) {
	c, err := s.repo.BuscarComunicacao()
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, erros.ErrNaoEncontrado) {
		return nil, err
	}

	padrao := ComunicacaoPadrao()
	if err := s.repo.CriarComunicacao(padrao); err != nil {
		s.log.Warn("criação da configuração de comunicação disputada", zap.Error(err))
		return s.repo.BuscarComunicacao()
	}
	return padrao, nil
}

// SalvarComunicacao atualiza a configuração de comunicação em vigor,
// criando-a se ainda não existir.
func (s *Service) SalvarComunicacao(dto AtualizarComunicacaoDTO) (*ConfiguracaoComunicacao, error) {
	c, err := s.ObterComunicacao()
	if err != nil {
		return nil, err
	}

	if dto.WhatsappToken != nil {
		c.WhatsappToken = *dto.WhatsappToken
	}
	if dto.WhatsappNumero != nil {
		c.WhatsappNumero = *dto.WhatsappNumero
	}
	if dto.SmsApiKey != nil {
		c.SmsApiKey = *dto.SmsApiKey
	}
	if dto.MsgCheckin != nil {
		c.MsgCheckin = *dto.MsgCheckin
	}
	if dto.MsgCheckout != nil {
		c.MsgCheckout = *dto.MsgCheckout
	}
	if dto.MsgLembrete != nil {
		c.MsgLembrete = *dto.MsgLembrete
	}
	if dto.MsgSatisfacao != nil {
		c.MsgSatisfacao = *dto.MsgSatisfacao
	}

	if err := s.repo.SalvarComunicacao(c); err != nil {
		s.log.Error("falha ao salvar configuração de comunicação", zap.Error(err))
		return nil, err
	}
	return c, nil
}

// AtualizarPrecosDTO aceita atualização parcial da tabela de preços.
type AtualizarPrecosDTO struct {
	DiariaPequeno     *float64 `json:"diariaPequeno"`
	DiariaMedio       *float64 `json:"diariaMedio"`
	DiariaGrande      *float64 `json:"diariaGrande"`
	CrecheMeioPeriodo *float64 `json:"crecheMeioPeriodo"`
	CrecheIntegral    *float64 `json:"crecheIntegral"`
}

// AtualizarComunicacaoDTO aceita atualização parcial das credenciais e dos
// modelos de mensagem.
type AtualizarComunicacaoDTO struct {
	WhatsappToken  *string `json:"whatsappToken"`
	WhatsappNumero *string `json:"whatsappNumero"`
	SmsApiKey      *string `json:"smsApiKey"`
	MsgCheckin     *string `json:"msgCheckin"`
	MsgCheckout    *string `json:"msgCheckout"`
	MsgLembrete    *string `json:"msgLembrete"`
	MsgSatisfacao  *string `json:"msgSatisfacao"`
}
