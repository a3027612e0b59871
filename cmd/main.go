package main

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/ClubePet/api-clube-pet/internal/cliente"
	"github.com/ClubePet/api-clube-pet/internal/configuracao"
	"github.com/ClubePet/api-clube-pet/internal/creche"
	"github.com/ClubePet/api-clube-pet/internal/database"
	"github.com/ClubePet/api-clube-pet/internal/hospedagem"
	"github.com/ClubePet/api-clube-pet/internal/pet"
	"github.com/ClubePet/api-clube-pet/internal/plano"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := database.Conectar()
	if err != nil {
		log.Fatal("erro ao conectar no banco", zap.Error(err))
	}

	if err := migrar(db); err != nil {
		log.Fatal("erro no AutoMigrate", zap.Error(err))
	}

	// Repositórios e serviços
	planoRepo := plano.NewRepository(db)
	resolver := plano.NewResolver(planoRepo, log)

	hospedagemService := hospedagem.NewService(hospedagem.NewRepository(db), resolver, log)
	crecheService := creche.NewService(creche.NewRepository(db), resolver, log)
	configuracaoService := configuracao.NewService(configuracao.NewRepository(db), log)

	// Handlers
	clienteHandler := cliente.NewHandler(cliente.NewRepository(db))
	petHandler := pet.NewHandler(pet.NewRepository(db))
	planoHandler := plano.NewHandler(planoRepo)
	hospedagemHandler := hospedagem.NewHandler(hospedagemService)
	crecheHandler := creche.NewHandler(crecheService)
	configuracaoHandler := configuracao.NewHandler(configuracaoService)

	// Router
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]bool{"ok": true})
	}).Methods("GET")

	// Rotas de clientes
	r.HandleFunc("/clientes", clienteHandler.Criar).Methods("POST")
	r.HandleFunc("/clientes", clienteHandler.Listar).Methods("GET")
	r.HandleFunc("/clientes/{id}", clienteHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/clientes/{id}", clienteHandler.Atualizar).Methods("PUT")
	r.HandleFunc("/clientes/{id}", clienteHandler.Deletar).Methods("DELETE")

	// Rotas de pets e imagens
	r.HandleFunc("/pets", petHandler.Criar).Methods("POST")
	r.HandleFunc("/pets", petHandler.Listar).Methods("GET")
	r.HandleFunc("/pets/imagens/{id}", petHandler.DeletarImagem).Methods("DELETE")
	r.HandleFunc("/pets/{id}", petHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/pets/{id}", petHandler.Atualizar).Methods("PUT")
	r.HandleFunc("/pets/{id}", petHandler.Deletar).Methods("DELETE")
	r.HandleFunc("/pets/{id}/imagens", petHandler.CriarImagem).Methods("POST")

	// Rotas de hospedagens
	r.HandleFunc("/hospedagens", hospedagemHandler.Criar).Methods("POST")
	r.HandleFunc("/hospedagens", hospedagemHandler.Listar).Methods("GET")
	r.HandleFunc("/hospedagens/{id}", hospedagemHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/hospedagens/{id}", hospedagemHandler.Atualizar).Methods("PUT")
	r.HandleFunc("/hospedagens/{id}", hospedagemHandler.Deletar).Methods("DELETE")

	// Rotas de creches
	r.HandleFunc("/creches", crecheHandler.Criar).Methods("POST")
	r.HandleFunc("/creches", crecheHandler.Listar).Methods("GET")
	r.HandleFunc("/creches/{id}", crecheHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/creches/{id}", crecheHandler.Atualizar).Methods("PUT")
	r.HandleFunc("/creches/{id}", crecheHandler.Deletar).Methods("DELETE")

	// Rotas de planos customizados
	r.HandleFunc("/planos-customizados", planoHandler.Criar).Methods("POST")
	r.HandleFunc("/planos-customizados", planoHandler.Listar).Methods("GET")
	r.HandleFunc("/planos-customizados/{id}", planoHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/planos-customizados/{id}", planoHandler.Remover).Methods("DELETE")

	// Rotas de configurações (registros únicos)
	r.HandleFunc("/configuracoes", configuracaoHandler.ObterPrecos).Methods("GET")
	r.HandleFunc("/configuracoes", configuracaoHandler.SalvarPrecos).Methods("POST")
	r.HandleFunc("/configuracoes-comunicacao", configuracaoHandler.ObterComunicacao).Methods("GET")
	r.HandleFunc("/configuracoes-comunicacao", configuracaoHandler.SalvarComunicacao).Methods("POST")

	c := cors.New(cors.Options{
		AllowedOrigins: []string{
			"https://clubepet.github.io",
			"http://localhost:3000",
			"http://127.0.0.1:5500",
		},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "3001"
	}

	log.Info("servidor rodando", zap.String("porta", porta))
	if err := http.ListenAndServe(":"+porta, c.Handler(r)); err != nil {
		log.Fatal("servidor encerrado", zap.Error(err))
	}
}

// migrar cria as tabelas na ordem das dependências de chave estrangeira.
func migrar(db *gorm.DB) error {
	for _, m := range []func(*gorm.DB) error{
		pet.Migrate,
		cliente.Migrate,
		hospedagem.Migrate,
		creche.Migrate,
		plano.Migrate,
		configuracao.Migrate,
	} {
		if err := m(db); err != nil {
			return err
		}
	}
	return nil
}
