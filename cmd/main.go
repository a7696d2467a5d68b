package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"gescon/config"
	"gescon/internal/pkg/cache"
	"gescon/internal/pkg/database"
	"gescon/internal/pkg/logger"
	"gescon/internal/pkg/token"
	"gescon/internal/pkg/validation"

	"gescon/internal/api/client"
	"gescon/internal/api/contract"
	"gescon/internal/api/router"
	"gescon/internal/api/service"
	"gescon/internal/api/user"
	"gescon/internal/repository/clientrepo"
	"gescon/internal/repository/contractrepo"
	"gescon/internal/repository/servicerepo"
	"gescon/internal/repository/userrepo"
	"gescon/internal/service/authservice"
	"gescon/internal/service/clientservice"
	"gescon/internal/service/contractservice"
	"gescon/internal/service/serviceservice"
	"gescon/internal/service/userservice"
)

func main() {
	// 1. Configuração e Inicialização
	// O godotenv.Load() procura por um arquivo .env na raiz; a ausência não é
	// fatal, pois as variáveis podem estar no ambiente (ex: Docker).
	if err := godotenv.Load(); err != nil {
		log.Println("Aviso: arquivo .env não encontrado. Carregando configs apenas do ambiente do sistema.")
	}

	cfg := config.LoadConfig()
	logg := logger.NewLogger(cfg.LogLevel)
	logg.Info("Configurações carregadas.", map[string]interface{}{"env": cfg.Environment})

	// 2. Conexão com Recursos de Infraestrutura

	// A. Banco de Dados (PostgreSQL)
	db, err := database.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		logg.Fatal("Falha ao conectar ao banco de dados.", err)
	}
	defer db.Close()
	logg.Info("Conexão PostgreSQL estabelecida.", nil)

	// B. Cache (Redis)
	cacheClient := cache.NewRedisClient(cfg.RedisAddr)
	logg.Info("Cliente Redis inicializado.", nil)

	// C. Serviços transversais (tokens e validação de schema)
	tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.TokenExpiry)
	validator := validation.New()

	// 3. Injeção de Dependências (Repository -> Service -> Handler)

	clientRepo := clientrepo.NewClientRepository(db, cacheClient, cfg.DBTimeout, cfg.CacheTTL, logg)
	serviceRepo := servicerepo.NewServiceRepository(db, cfg.DBTimeout, logg)
	userRepo := userrepo.NewUserRepository(db, cfg.DBTimeout, logg)
	contractRepo := contractrepo.NewContractRepository(db, cfg.DBTimeout, logg)
	logg.Debug("Repositórios inicializados.", nil)

	clientSvc := clientservice.NewService(clientRepo, logg)
	serviceSvc := serviceservice.NewService(serviceRepo, logg)
	userSvc := userservice.NewService(userRepo, logg)
	contractSvc := contractservice.NewService(contractRepo, logg)
	authSvc := authservice.NewService(userRepo, tokenSvc, logg)
	logg.Debug("Serviços inicializados.", nil)

	handlers := router.Handlers{
		Client:   client.NewHandler(clientSvc, validator, logg),
		Service:  service.NewHandler(serviceSvc, validator, logg),
		User:     user.NewHandler(userSvc, authSvc, validator, logg),
		Contract: contract.NewHandler(contractSvc, validator, logg),
	}
	logg.Debug("Handlers inicializados.", nil)

	// 4. Configuração e Início do Roteador/Servidor

	r := router.NewRouter(handlers, tokenSvc, cacheClient, cfg)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 5. Execução e Graceful Shutdown
	go func() {
		logg.Info("Servidor Gescon ouvindo.", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logg.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	logg.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logg.Error("Desligamento do servidor forçado.", err)
	}

	logg.Info("Servidor encerrado com sucesso.", nil)
}
