package hospedagem

import (
	"errors"
	"testing"

	"github.com/ClubePet/api-clube-pet/internal/erros"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubRepo struct {
	nomes       map[uint]*NomesPet
	registros   map[uint]*Hospedagem
	proximoID   uint
	erroAoCriar error
}

func novoStubRepo() *stubRepo {
	return &stubRepo{
		nomes:     map[uint]*NomesPet{},
		registros: map[uint]*Hospedagem{},
	}
}

func (s *stubRepo) Criar(h *Hospedagem) error {
	if s.erroAoCriar != nil {
		return s.erroAoCriar
	}
	s.proximoID++
	h.ID = s.proximoID
	copia := *h
	s.registros[h.ID] = &copia
	return nil
}

func (s *stubRepo) ListarTodas() ([]Hospedagem, error) {
	var list []Hospedagem
	for _, h := range s.registros {
		list = append(list, *h)
	}
	return list, nil
}

func (s *stubRepo) BuscarPorID(id uint) (*Hospedagem, error) {
	h, ok := s.registros[id]
	if !ok {
		return nil, erros.ErrNaoEncontrado
	}
	copia := *h
	return &copia, nil
}

func (s *stubRepo) Atualizar(h *Hospedagem) error {
	copia := *h
	s.registros[h.ID] = &copia
	return nil
}

func (s *stubRepo) Deletar(id uint) error {
	if _, ok := s.registros[id]; !ok {
		return erros.ErrNaoEncontrado
	}
	delete(s.registros, id)
	return nil
}

func (s *stubRepo) BuscarNomesDoPet(petID uint) (*NomesPet, error) {
	n, ok := s.nomes[petID]
	if !ok {
		return nil, erros.ErrNaoEncontrado
	}
	return n, nil
}

// stubResolvedor devolve sempre a mesma resposta, como se fosse o plano
// resolvido (ou não encontrado, quando encontrado é falso).
type stubResolvedor struct {
	desconto   float64
	encontrado bool
}

func (s stubResolvedor) Resolver(nome, tipo string) (float64, bool) {
	return s.desconto, s.encontrado
}

func novoService(repo *stubRepo, r stubResolvedor) *Service {
	return NewService(repo, r, zap.NewNop())
}

func TestCriarPrecificaEGravaSnapshot(t *testing.T) {
	repo := novoStubRepo()
	repo.nomes[7] = &NomesPet{PetNome: "Rex", ClienteNome: "Maria"}
	svc := novoService(repo, stubResolvedor{})

	h, err := svc.Criar(CriarHospedagemDTO{
		PetID:           7,
		Checkin:         "2025-03-10",
		Checkout:        "2025-03-13",
		Servicos:        []string{"banho"},
		Subtotal:        100,
		DescontoPercent: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, 90.0, h.Total)
	assert.Equal(t, 10.0, h.DescontoPercent)
	assert.Equal(t, "Maria", h.ClienteNome)
	assert.Equal(t, "Rex", h.PetNome)
	assert.Equal(t, StatusPendente, h.Status)
	assert.Equal(t, 3, h.Dias)
}

func TestCriarSemCamposObrigatoriosNaoTocaOBanco(t *testing.T) {
	repo := novoStubRepo()
	svc := novoService(repo, stubResolvedor{})

	_, err := svc.Criar(CriarHospedagemDTO{PetID: 7, Checkin: "2025-03-10"})
	require.Error(t, err)
	assert.True(t, erros.EhValidacao(err))
	assert.Empty(t, repo.registros)
}

func TestCriarComPetInexistente(t *testing.T) {
	repo := novoStubRepo()
	svc := novoService(repo, stubResolvedor{})

	_, err := svc.Criar(CriarHospedagemDTO{
		PetID:    99,
		Checkin:  "2025-03-10",
		Checkout: "2025-03-12",
	})
	assert.ErrorIs(t, err, erros.ErrNaoEncontrado)
}

func TestCriarComPlanoForaDeEscopoFicaSemDesconto(t *testing.T) {
	repo := novoStubRepo()
	repo.nomes[1] = &NomesPet{PetNome: "Luna", ClienteNome: "João"}
	// Plano existe, mas só se aplica à creche: desconto resolvido é zero.
	svc := novoService(repo, stubResolvedor{desconto: 0, encontrado: true})

	h, err := svc.Criar(CriarHospedagemDTO{
		PetID:    1,
		Checkin:  "2025-03-10",
		Checkout: "2025-03-12",
		Plano:    "Creche Mensal",
		Subtotal: 200,
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, h.DescontoPercent)
	assert.Equal(t, 200.0, h.Total)
}

func TestCriarComPlanoResolvidoUsaDescontoDoPlano(t *testing.T) {
	repo := novoStubRepo()
	repo.nomes[1] = &NomesPet{PetNome: "Luna", ClienteNome: "João"}
	svc := novoService(repo, stubResolvedor{desconto: 20, encontrado: true})

	h, err := svc.Criar(CriarHospedagemDTO{
		PetID:    1,
		Checkin:  "2025-03-10",
		Checkout: "2025-03-12",
		Plano:    "Fidelidade",
		Subtotal: 150,
	})
	require.NoError(t, err)

	assert.Equal(t, 20.0, h.DescontoPercent)
	assert.Equal(t, 120.0, h.Total)
}

func TestCriarComPlanoNaoEncontradoMantemDescontoExplicito(t *testing.T) {
	repo := novoStubRepo()
	repo.nomes[1] = &NomesPet{PetNome: "Luna", ClienteNome: "João"}
	// Nome de plano sem cadastro ativo não anula o desconto do chamador.
	svc := novoService(repo, stubResolvedor{})

	h, err := svc.Criar(CriarHospedagemDTO{
		PetID:           1,
		Checkin:         "2025-03-10",
		Checkout:        "2025-03-12",
		Plano:           "Plano Renomeado",
		Subtotal:        100,
		DescontoPercent: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, 10.0, h.DescontoPercent)
	assert.Equal(t, 90.0, h.Total)
}

func TestAtualizarPlanoNaoEncontradoMantemDesconto(t *testing.T) {
	repo := novoStubRepo()
	repo.nomes[1] = &NomesPet{PetNome: "Luna", ClienteNome: "João"}
	svc := novoService(repo, stubResolvedor{})

	h, err := svc.Criar(CriarHospedagemDTO{
		PetID:           1,
		Checkin:         "2025-03-10",
		Checkout:        "2025-03-12",
		Subtotal:        100,
		DescontoPercent: 10,
	})
	require.NoError(t, err)

	plano := "Plano Renomeado"
	atualizado, err := svc.Atualizar(h.ID, AtualizarHospedagemDTO{Plano: &plano})
	require.NoError(t, err)

	assert.Equal(t, "Plano Renomeado", atualizado.Plano)
	assert.Equal(t, 10.0, atualizado.DescontoPercent)
	assert.Equal(t, 90.0, atualizado.Total)
}

func TestCriarComSubtotalNegativoApontaOCampo(t *testing.T) {
	repo := novoStubRepo()
	svc := novoService(repo, stubResolvedor{})

	_, err := svc.Criar(CriarHospedagemDTO{
		PetID:    1,
		Checkin:  "2025-03-10",
		Checkout: "2025-03-12",
		Subtotal: -50,
	})
	require.Error(t, err)

	var ev *erros.ErroValidacao
	require.ErrorAs(t, err, &ev)
	assert.Equal(t, "subtotal", ev.Campo)
	assert.Empty(t, repo.registros)
}

func TestCriarNormalizaDescontoNegativo(t *testing.T) {
	repo := novoStubRepo()
	repo.nomes[1] = &NomesPet{PetNome: "Luna", ClienteNome: "João"}
	svc := novoService(repo, stubResolvedor{})

	h, err := svc.Criar(CriarHospedagemDTO{
		PetID:           1,
		Checkin:         "2025-03-10",
		Checkout:        "2025-03-11",
		Subtotal:        80,
		DescontoPercent: -15,
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, h.DescontoPercent)
	assert.Equal(t, 80.0, h.Total)
}

func TestCriarPropagaFalhaDoBanco(t *testing.T) {
	repo := novoStubRepo()
	repo.nomes[1] = &NomesPet{PetNome: "Luna", ClienteNome: "João"}
	repo.erroAoCriar = errors.New("conexão perdida")
	svc := novoService(repo, stubResolvedor{})

	_, err := svc.Criar(CriarHospedagemDTO{
		PetID:    1,
		Checkin:  "2025-03-10",
		Checkout: "2025-03-11",
		Subtotal: 50,
	})
	require.Error(t, err)
	// Falha de persistência não é erro de validação nem de não-encontrado.
	assert.False(t, erros.EhValidacao(err))
	assert.False(t, errors.Is(err, erros.ErrNaoEncontrado))
}

func TestAtualizarNaoRederivaSnapshot(t *testing.T) {
	repo := novoStubRepo()
	repo.nomes[7] = &NomesPet{PetNome: "Rex", ClienteNome: "Maria"}
	svc := novoService(repo, stubResolvedor{})

	h, err := svc.Criar(CriarHospedagemDTO{
		PetID:    7,
		Checkin:  "2025-03-10",
		Checkout: "2025-03-12",
		Subtotal: 100,
	})
	require.NoError(t, err)

	// Cliente renomeado depois da reserva.
	repo.nomes[7] = &NomesPet{PetNome: "Rex", ClienteNome: "Maria Silva"}

	status := "checkin"
	atualizado, err := svc.Atualizar(h.ID, AtualizarHospedagemDTO{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, "Maria", atualizado.ClienteNome)
	assert.Equal(t, "CHECKIN", atualizado.Status)
}

func TestAtualizarSnapshotSomenteQuandoEnviado(t *testing.T) {
	repo := novoStubRepo()
	repo.nomes[7] = &NomesPet{PetNome: "Rex", ClienteNome: "Maria"}
	svc := novoService(repo, stubResolvedor{})

	h, err := svc.Criar(CriarHospedagemDTO{
		PetID:    7,
		Checkin:  "2025-03-10",
		Checkout: "2025-03-12",
	})
	require.NoError(t, err)

	nome := "Maria Silva"
	atualizado, err := svc.Atualizar(h.ID, AtualizarHospedagemDTO{ClienteNome: &nome})
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", atualizado.ClienteNome)
}

func TestAtualizarReprecificaAoMudarSubtotal(t *testing.T) {
	repo := novoStubRepo()
	repo.nomes[7] = &NomesPet{PetNome: "Rex", ClienteNome: "Maria"}
	svc := novoService(repo, stubResolvedor{})

	h, err := svc.Criar(CriarHospedagemDTO{
		PetID:           7,
		Checkin:         "2025-03-10",
		Checkout:        "2025-03-12",
		Subtotal:        100,
		DescontoPercent: 10,
	})
	require.NoError(t, err)
	require.Equal(t, 90.0, h.Total)

	subtotal := 200.0
	atualizado, err := svc.Atualizar(h.ID, AtualizarHospedagemDTO{Subtotal: &subtotal})
	require.NoError(t, err)

	assert.Equal(t, 200.0, atualizado.Subtotal)
	assert.Equal(t, 180.0, atualizado.Total)
}

func TestAtualizarStatusAceitaTokenArbitrario(t *testing.T) {
	repo := novoStubRepo()
	repo.nomes[7] = &NomesPet{PetNome: "Rex", ClienteNome: "Maria"}
	svc := novoService(repo, stubResolvedor{})

	h, err := svc.Criar(CriarHospedagemDTO{
		PetID:    7,
		Checkin:  "2025-03-10",
		Checkout: "2025-03-12",
	})
	require.NoError(t, err)

	// Sem tabela de transições: voltar de CHECKOUT para PENDENTE é aceito e
	// tokens fora do fluxo padrão entram em maiúsculas.
	casos := []struct {
		enviado  string
		esperado string
	}{
		{"checkout", "CHECKOUT"},
		{"pendente", "PENDENTE"},
		{"aguardando banho", "AGUARDANDO BANHO"},
	}
	for _, c := range casos {
		s := c.enviado
		atualizado, err := svc.Atualizar(h.ID, AtualizarHospedagemDTO{Status: &s})
		require.NoError(t, err)
		assert.Equal(t, c.esperado, atualizado.Status)
	}
}

func TestAtualizarDataAusenteFicaIntocada(t *testing.T) {
	repo := novoStubRepo()
	repo.nomes[7] = &NomesPet{PetNome: "Rex", ClienteNome: "Maria"}
	svc := novoService(repo, stubResolvedor{})

	h, err := svc.Criar(CriarHospedagemDTO{
		PetID:    7,
		Checkin:  "2025-03-10",
		Checkout: "2025-03-12",
	})
	require.NoError(t, err)

	dias := 5
	atualizado, err := svc.Atualizar(h.ID, AtualizarHospedagemDTO{Dias: &dias})
	require.NoError(t, err)

	assert.Equal(t, h.Checkin, atualizado.Checkin)
	assert.Equal(t, h.Checkout, atualizado.Checkout)
	assert.Equal(t, 5, atualizado.Dias)
}
