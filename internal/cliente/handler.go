package cliente

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ClubePet/api-clube-pet/internal/erros"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// Handler encapsula o repositório de clientes
type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

var validate = validator.New()

// CriarClienteRequest define o corpo da requisição para criar um cliente.
type CriarClienteRequest struct {
	Nome       string `json:"nome" validate:"required"`
	Telefone   string `json:"telefone" validate:"required"`
	Email      string `json:"email"`
	CPF        string `json:"cpf"`
	Endereco   string `json:"endereco"`
	Emergencia string `json:"emergencia"`
}

// AtualizarClienteRequest aceita atualização parcial: só os campos enviados
// são alterados.
type AtualizarClienteRequest struct {
	Nome       *string `json:"nome"`
	Telefone   *string `json:"telefone"`
	Email      *string `json:"email"`
	CPF        *string `json:"cpf"`
	Endereco   *string `json:"endereco"`
	Emergencia *string `json:"emergencia"`
}

// Criar trata POST /clientes
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req CriarClienteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, "Nome e telefone são obrigatórios", http.StatusBadRequest)
		return
	}

	c := Cliente{
		Nome:       req.Nome,
		Telefone:   req.Telefone,
		Email:      req.Email,
		CPF:        req.CPF,
		Endereco:   req.Endereco,
		Emergencia: req.Emergencia,
	}
	if err := h.Repo.Create(&c); err != nil {
		http.Error(w, "Erro ao criar cliente", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// Listar trata GET /clientes
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	clientes, err := h.Repo.ListarTodos()
	if err != nil {
		http.Error(w, "Erro ao listar clientes", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(clientes)
}

// BuscarPorID trata GET /clientes/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de cliente inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		if errors.Is(err, erros.ErrNaoEncontrado) {
			http.Error(w, "Cliente não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar cliente", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// Atualizar trata PUT /clientes/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de cliente inválido", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var req AtualizarClienteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		if errors.Is(err, erros.ErrNaoEncontrado) {
			http.Error(w, "Cliente não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar cliente", http.StatusInternalServerError)
		return
	}

	if req.Nome != nil {
		c.Nome = *req.Nome
	}
	if req.Telefone != nil {
		c.Telefone = *req.Telefone
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if req.CPF != nil {
		c.CPF = *req.CPF
	}
	if req.Endereco != nil {
		c.Endereco = *req.Endereco
	}
	if req.Emergencia != nil {
		c.Emergencia = *req.Emergencia
	}

	if err := h.Repo.Atualizar(c); err != nil {
		http.Error(w, "Erro ao atualizar cliente", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// Deletar trata DELETE /clientes/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de cliente inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repo.Deletar(uint(id)); err != nil {
		if errors.Is(err, erros.ErrNaoEncontrado) {
			http.Error(w, "Cliente não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao excluir cliente", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
