package creche

import (
	"testing"

	"github.com/ClubePet/api-clube-pet/internal/erros"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubRepo struct {
	nomes     map[uint]*NomesPet
	registros map[uint]*Creche
	proximoID uint
}

func novoStubRepo() *stubRepo {
	return &stubRepo{
		nomes:     map[uint]*NomesPet{},
		registros: map[uint]*Creche{},
	}
}

func (s *stubRepo) Criar(c *Creche) error {
	s.proximoID++
	c.ID = s.proximoID
	copia := *c
	s.registros[c.ID] = &copia
	return nil
}

func (s *stubRepo) ListarTodas() ([]Creche, error) {
	var list []Creche
	for _, c := range s.registros {
		list = append(list, *c)
	}
	return list, nil
}

func (s *stubRepo) BuscarPorID(id uint) (*Creche, error) {
	c, ok := s.registros[id]
	if !ok {
		return nil, erros.ErrNaoEncontrado
	}
	copia := *c
	return &copia, nil
}

func (s *stubRepo) Atualizar(c *Creche) error {
	copia := *c
	s.registros[c.ID] = &copia
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

type stubResolvedor struct {
	desconto   float64
	encontrado bool
	tipoVisto  string
}

func (s *stubResolvedor) Resolver(nome, tipo string) (float64, bool) {
	s.tipoVisto = tipo
	return s.desconto, s.encontrado
}

func TestCriarPrecificaEGravaSnapshot(t *testing.T) {
	repo := novoStubRepo()
	repo.nomes[3] = &NomesPet{PetNome: "Thor", ClienteNome: "Ana"}
	svc := NewService(repo, &stubResolvedor{}, zap.NewNop())

	c, err := svc.Criar(CriarCrecheDTO{
		PetID:           3,
		Data:            "2025-04-02",
		Periodo:         PeriodoIntegral,
		Entrada:         "08:00",
		Saida:           "18:00",
		Atividades:      []string{"recreação"},
		Subtotal:        70,
		DescontoPercent: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, 63.0, c.Total)
	assert.Equal(t, "Ana", c.ClienteNome)
	assert.Equal(t, "Thor", c.PetNome)
	assert.Equal(t, StatusPendente, c.Status)
	assert.Equal(t, 1, c.Dias)
}

func TestCriarSemPeriodoNaoTocaOBanco(t *testing.T) {
	repo := novoStubRepo()
	svc := NewService(repo, &stubResolvedor{}, zap.NewNop())

	_, err := svc.Criar(CriarCrecheDTO{PetID: 3, Data: "2025-04-02"})
	require.Error(t, err)
	assert.True(t, erros.EhValidacao(err))
	assert.Empty(t, repo.registros)
}

func TestCriarResolvePlanoNoEscopoCreche(t *testing.T) {
	repo := novoStubRepo()
	repo.nomes[3] = &NomesPet{PetNome: "Thor", ClienteNome: "Ana"}
	resolvedor := &stubResolvedor{desconto: 15, encontrado: true}
	svc := NewService(repo, resolvedor, zap.NewNop())

	c, err := svc.Criar(CriarCrecheDTO{
		PetID:    3,
		Data:     "2025-04-02",
		Periodo:  PeriodoMeio,
		Plano:    "Creche Mensal",
		Subtotal: 100,
	})
	require.NoError(t, err)

	assert.Equal(t, "creche", resolvedor.tipoVisto)
	assert.Equal(t, 15.0, c.DescontoPercent)
	assert.Equal(t, 85.0, c.Total)
}

func TestCriarComPlanoNaoEncontradoMantemDescontoExplicito(t *testing.T) {
	repo := novoStubRepo()
	repo.nomes[3] = &NomesPet{PetNome: "Thor", ClienteNome: "Ana"}
	// Nome de plano sem cadastro ativo não anula o desconto do chamador.
	svc := NewService(repo, &stubResolvedor{}, zap.NewNop())

	c, err := svc.Criar(CriarCrecheDTO{
		PetID:           3,
		Data:            "2025-04-02",
		Periodo:         PeriodoMeio,
		Plano:           "Plano Renomeado",
		Subtotal:        100,
		DescontoPercent: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, 10.0, c.DescontoPercent)
	assert.Equal(t, 90.0, c.Total)
}

func TestAtualizarPlanoNaoEncontradoMantemDesconto(t *testing.T) {
	repo := novoStubRepo()
	repo.nomes[3] = &NomesPet{PetNome: "Thor", ClienteNome: "Ana"}
	svc := NewService(repo, &stubResolvedor{}, zap.NewNop())

	c, err := svc.Criar(CriarCrecheDTO{
		PetID:           3,
		Data:            "2025-04-02",
		Periodo:         PeriodoMeio,
		Subtotal:        100,
		DescontoPercent: 10,
	})
	require.NoError(t, err)

	plano := "Plano Renomeado"
	atualizado, err := svc.Atualizar(c.ID, AtualizarCrecheDTO{Plano: &plano})
	require.NoError(t, err)

	assert.Equal(t, "Plano Renomeado", atualizado.Plano)
	assert.Equal(t, 10.0, atualizado.DescontoPercent)
	assert.Equal(t, 90.0, atualizado.Total)
}

func TestCriarComSubtotalNegativoApontaOCampo(t *testing.T) {
	repo := novoStubRepo()
	svc := NewService(repo, &stubResolvedor{}, zap.NewNop())

	_, err := svc.Criar(CriarCrecheDTO{
		PetID:    3,
		Data:     "2025-04-02",
		Periodo:  PeriodoMeio,
		Subtotal: -20,
	})
	require.Error(t, err)

	var ev *erros.ErroValidacao
	require.ErrorAs(t, err, &ev)
	assert.Equal(t, "subtotal", ev.Campo)
	assert.Empty(t, repo.registros)
}

func TestCriarComPetInexistente(t *testing.T) {
	repo := novoStubRepo()
	svc := NewService(repo, &stubResolvedor{}, zap.NewNop())

	_, err := svc.Criar(CriarCrecheDTO{PetID: 9, Data: "2025-04-02", Periodo: PeriodoMeio})
	assert.ErrorIs(t, err, erros.ErrNaoEncontrado)
}

func TestAtualizarNaoRederivaSnapshot(t *testing.T) {
	repo := novoStubRepo()
	repo.nomes[3] = &NomesPet{PetNome: "Thor", ClienteNome: "Ana"}
	svc := NewService(repo, &stubResolvedor{}, zap.NewNop())

	c, err := svc.Criar(CriarCrecheDTO{
		PetID:    3,
		Data:     "2025-04-02",
		Periodo:  PeriodoMeio,
		Subtotal: 50,
	})
	require.NoError(t, err)

	// Pet renomeado depois da reserva.
	repo.nomes[3] = &NomesPet{PetNome: "Thor Jr", ClienteNome: "Ana"}

	status := "cancelado"
	atualizado, err := svc.Atualizar(c.ID, AtualizarCrecheDTO{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, "Thor", atualizado.PetNome)
	assert.Equal(t, StatusCancelado, atualizado.Status)
}

func TestAtualizarReprecificaAoMudarDesconto(t *testing.T) {
	repo := novoStubRepo()
	repo.nomes[3] = &NomesPet{PetNome: "Thor", ClienteNome: "Ana"}
	svc := NewService(repo, &stubResolvedor{}, zap.NewNop())

	c, err := svc.Criar(CriarCrecheDTO{
		PetID:    3,
		Data:     "2025-04-02",
		Periodo:  PeriodoMeio,
		Subtotal: 80,
	})
	require.NoError(t, err)
	require.Equal(t, 80.0, c.Total)

	desconto := 25.0
	atualizado, err := svc.Atualizar(c.ID, AtualizarCrecheDTO{DescontoPercent: &desconto})
	require.NoError(t, err)
	assert.Equal(t, 60.0, atualizado.Total)
}
