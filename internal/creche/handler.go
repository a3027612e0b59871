package creche

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ClubePet/api-clube-pet/internal/erros"
	"github.com/gorilla/mux"
)

// Handler gerencia rotas de creches
type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

// Criar trata POST /creches
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var dto CriarCrecheDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Service.Criar(dto)
	if err != nil {
		responderErro(w, err, "Pet não encontrado", "Erro ao criar creche")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// Listar trata GET /creches
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	creches, err := h.Service.Listar()
	if err != nil {
		http.Error(w, "Erro ao listar creches", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(creches)
}

// BuscarPorID trata GET /creches/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de creche inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Service.BuscarPorID(uint(id))
	if err != nil {
		responderErro(w, err, "Creche não encontrada", "Erro ao buscar creche")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// Atualizar trata PUT /creches/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de creche inválido", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var dto AtualizarCrecheDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Service.Atualizar(uint(id), dto)
	if err != nil {
		responderErro(w, err, "Creche não encontrada", "Erro ao atualizar creche")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// Deletar trata DELETE /creches/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de creche inválido", http.StatusBadRequest)
		return
	}

	if err := h.Service.Deletar(uint(id)); err != nil {
		responderErro(w, err, "Creche não encontrada", "Erro ao excluir creche")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func responderErro(w http.ResponseWriter, err error, msgNaoEncontrado, msgGenerica string) {
	switch {
	case erros.EhValidacao(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, erros.ErrNaoEncontrado):
		http.Error(w, msgNaoEncontrado, http.StatusNotFound)
	default:
		http.Error(w, msgGenerica, http.StatusInternalServerError)
	}
}
