package pet

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ClubePet/api-clube-pet/internal/erros"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// Handler gerencia rotas de pets e imagens
type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

var validate = validator.New()

// CriarPetRequest define o corpo da requisição para criar um pet.
type CriarPetRequest struct {
	ClienteID          uint     `json:"clienteId" validate:"required"`
	Nome               string   `json:"nome" validate:"required"`
	Especie            string   `json:"especie" validate:"required"`
	Raca               string   `json:"raca" validate:"required"`
	Tamanho            string   `json:"tamanho" validate:"required"`
	Temperamento       string   `json:"temperamento" validate:"required"`
	Peso               *float64 `json:"peso"`
	Idade              string   `json:"idade"`
	Castrado           bool     `json:"castrado"`
	Medicamentos       string   `json:"medicamentos"`
	CartaoVacinaNumero string   `json:"cartaoVacinaNumero"`
	Observacoes        string   `json:"observacoes"`
}

// AtualizarPetRequest aceita atualização parcial.
type AtualizarPetRequest struct {
	Nome               *string  `json:"nome"`
	Especie            *string  `json:"especie"`
	Raca               *string  `json:"raca"`
	Tamanho            *string  `json:"tamanho"`
	Temperamento       *string  `json:"temperamento"`
	Peso               *float64 `json:"peso"`
	Idade              *string  `json:"idade"`
	Castrado           *bool    `json:"castrado"`
	Medicamentos       *string  `json:"medicamentos"`
	CartaoVacinaNumero *string  `json:"cartaoVacinaNumero"`
	Observacoes        *string  `json:"observacoes"`
}

// CriarImagemRequest define o corpo de POST /pets/{id}/imagens.
type CriarImagemRequest struct {
	Nome string `json:"nome"`
	Src  string `json:"src" validate:"required"`
	Tipo string `json:"tipo"`
}

// Criar trata POST /pets
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req CriarPetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, "Campos obrigatórios: clienteId, nome, especie, raca, tamanho, temperamento", http.StatusBadRequest)
		return
	}

	tamanho, err := NormalizarTamanho(req.Tamanho)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	temperamento, err := NormalizarTemperamento(req.Temperamento)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p := Pet{
		ClienteID:          req.ClienteID,
		Nome:               req.Nome,
		Especie:            req.Especie,
		Raca:               req.Raca,
		Tamanho:            tamanho,
		Temperamento:       temperamento,
		Peso:               req.Peso,
		Idade:              req.Idade,
		Castrado:           req.Castrado,
		Medicamentos:       req.Medicamentos,
		CartaoVacinaNumero: req.CartaoVacinaNumero,
		Observacoes:        req.Observacoes,
	}
	if err := h.Repo.Create(&p); err != nil {
		http.Error(w, "Erro ao criar pet", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(p)
}

// Listar trata GET /pets
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	pets, err := h.Repo.ListarTodos()
	if err != nil {
		http.Error(w, "Erro ao listar pets", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(pets)
}

// BuscarPorID trata GET /pets/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de pet inválido", http.StatusBadRequest)
		return
	}

	p, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		if errors.Is(err, erros.ErrNaoEncontrado) {
			http.Error(w, "Pet não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar pet", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}

// Atualizar trata PUT /pets/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de pet inválido", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var req AtualizarPetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	p, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		if errors.Is(err, erros.ErrNaoEncontrado) {
			http.Error(w, "Pet não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar pet", http.StatusInternalServerError)
		return
	}

	if req.Tamanho != nil {
		tamanho, err := NormalizarTamanho(*req.Tamanho)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		p.Tamanho = tamanho
	}
	if req.Temperamento != nil {
		temperamento, err := NormalizarTemperamento(*req.Temperamento)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		p.Temperamento = temperamento
	}
	if req.Nome != nil {
		p.Nome = *req.Nome
	}
	if req.Especie != nil {
		p.Especie = *req.Especie
	}
	if req.Raca != nil {
		p.Raca = *req.Raca
	}
	if req.Peso != nil {
		p.Peso = req.Peso
	}
	if req.Idade != nil {
		p.Idade = *req.Idade
	}
	if req.Castrado != nil {
		p.Castrado = *req.Castrado
	}
	if req.Medicamentos != nil {
		p.Medicamentos = *req.Medicamentos
	}
	if req.CartaoVacinaNumero != nil {
		p.CartaoVacinaNumero = *req.CartaoVacinaNumero
	}
	if req.Observacoes != nil {
		p.Observacoes = *req.Observacoes
	}

	if err := h.Repo.Atualizar(p); err != nil {
		http.Error(w, "Erro ao atualizar pet", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}

// Deletar trata DELETE /pets/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de pet inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repo.Deletar(uint(id)); err != nil {
		if errors.Is(err, erros.ErrNaoEncontrado) {
			http.Error(w, "Pet não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao excluir pet", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CriarImagem trata POST /pets/{id}/imagens
func (h *Handler) CriarImagem(w http.ResponseWriter, r *http.Request) {
	petID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de pet inválido", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var req CriarImagemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, "Imagem (src) é obrigatória", http.StatusBadRequest)
		return
	}

	if req.Nome == "" {
		req.Nome = "Imagem"
	}
	if req.Tipo == "" {
		req.Tipo = "galeria"
	}

	img := PetImagem{
		PetID: uint(petID),
		Nome:  req.Nome,
		Src:   req.Src,
		Tipo:  req.Tipo,
	}
	if err := h.Repo.CriarImagem(&img); err != nil {
		http.Error(w, "Erro ao adicionar imagem", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(img)
}

// DeletarImagem trata DELETE /pets/imagens/{id}
func (h *Handler) DeletarImagem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de imagem inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repo.DeletarImagem(uint(id)); err != nil {
		if errors.Is(err, erros.ErrNaoEncontrado) {
			http.Error(w, "Imagem não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao excluir imagem", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
