package hospedagem

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ClubePet/api-clube-pet/internal/erros"
	"github.com/gorilla/mux"
)

// Handler gerencia rotas de hospedagens
type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

// Criar trata POST /hospedagens
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var dto CriarHospedagemDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	hosp, err := h.Service.Criar(dto)
	if err != nil {
		responderErro(w, err, "Pet não encontrado", "Erro ao criar hospedagem")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(hosp)
}

// Listar trata GET /hospedagens
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	hospedagens, err := h.Service.Listar()
	if err != nil {
		http.Error(w, "Erro ao listar hospedagens", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(hospedagens)
}

// BuscarPorID trata GET /hospedagens/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de hospedagem inválido", http.StatusBadRequest)
		return
	}

	hosp, err := h.Service.BuscarPorID(uint(id))
	if err != nil {
		responderErro(w, err, "Hospedagem não encontrada", "Erro ao buscar hospedagem")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(hosp)
}

// Atualizar trata PUT /hospedagens/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de hospedagem inválido", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var dto AtualizarHospedagemDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	hosp, err := h.Service.Atualizar(uint(id), dto)
	if err != nil {
		responderErro(w, err, "Hospedagem não encontrada", "Erro ao atualizar hospedagem")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(hosp)
}

// Deletar trata DELETE /hospedagens/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de hospedagem inválido", http.StatusBadRequest)
		return
	}

	if err := h.Service.Deletar(uint(id)); err != nil {
		responderErro(w, err, "Hospedagem não encontrada", "Erro ao excluir hospedagem")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// responderErro mapeia os erros do serviço para o status HTTP.
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
