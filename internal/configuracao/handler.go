package configuracao

import (
	"encoding/json"
	"net/http"
)

// Handler gerencia rotas das configurações de preços e de comunicação
type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

// ObterPrecos trata GET /configuracoes
func (h *Handler) ObterPrecos(w http.ResponseWriter, r *http.Request) {
	c, err := h.Service.ObterPrecos()
	if err != nil {
		http.Error(w, "Erro ao buscar configurações", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// SalvarPrecos trata POST /configuracoes
func (h *Handler) SalvarPrecos(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var dto AtualizarPrecosDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Service.SalvarPrecos(dto)
	if err != nil {
		http.Error(w, "Erro ao salvar configurações", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// ObterComunicacao trata GET /configuracoes-comunicacao
func (h *Handler) ObterComunicacao(w http.ResponseWriter, r *http.Request) {
	c, err := h.Service.ObterComunicacao()
	if err != nil {
		http.Error(w, "Erro ao buscar configurações", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// SalvarComunicacao trata POST /configuracoes-comunicacao
func (h *Handler) SalvarComunicacao(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var dto AtualizarComunicacaoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Service.SalvarComunicacao(dto)
	if err != nil {
		http.Error(w, "Erro ao salvar configurações", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}
