package plano

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ClubePet/api-clube-pet/internal/erros"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// Repositorio é o contrato de persistência que o handler consome.
type Repositorio interface {
	Create(p *Plano) error
	ListarAtivos() ([]Plano, error)
	BuscarPorID(id uint) (*Plano, error)
	Desativar(id uint) error
}

// Handler gerencia rotas de planos customizados
type Handler struct {
	Repo Repositorio
}

func NewHandler(repo Repositorio) *Handler {
	return &Handler{Repo: repo}
}

var validate = validator.New()

// CriarPlanoRequest define o corpo da requisição para criar um plano.
type CriarPlanoRequest struct {
	Nome            string  `json:"nome" validate:"required"`
	Meses           int     `json:"meses" validate:"required,gt=0"`
	DiasMes         int     `json:"diasMes" validate:"required,gt=0"`
	DescontoPercent float64 `json:"descontoPercent" validate:"required,gt=0"`
	Aplica          string  `json:"aplica" validate:"required,oneof=hospedagem creche ambos"`
}

// Criar trata POST /planos-customizados
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req CriarPlanoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, "Todos os campos são obrigatórios", http.StatusBadRequest)
		return
	}

	p := Plano{
		Nome:            req.Nome,
		Meses:           req.Meses,
		DiasMes:         req.DiasMes,
		DescontoPercent: req.DescontoPercent,
		Aplica:          req.Aplica,
		Ativo:           true,
	}
	if err := h.Repo.Create(&p); err != nil {
		http.Error(w, "Erro ao criar plano", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(p)
}

// Listar trata GET /planos-customizados (somente ativos, mais recentes primeiro)
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	planos, err := h.Repo.ListarAtivos()
	if err != nil {
		http.Error(w, "Erro ao listar planos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(planos)
}

// BuscarPorID trata GET /planos-customizados/{id}; devolve o plano mesmo
// quando desativado.
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de plano inválido", http.StatusBadRequest)
		return
	}

	p, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		if errors.Is(err, erros.ErrNaoEncontrado) {
			http.Error(w, "Plano não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar plano", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}

// Remover trata DELETE /planos-customizados/{id} (exclusão lógica)
func (h *Handler) Remover(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de plano inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repo.Desativar(uint(id)); err != nil {
		if errors.Is(err, erros.ErrNaoEncontrado) {
			http.Error(w, "Plano não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao remover plano", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
