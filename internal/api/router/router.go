package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"gescon/config"
	"gescon/internal/api/client"
	"gescon/internal/api/contract"
	"gescon/internal/api/service"
	"gescon/internal/api/user"
	"gescon/internal/pkg/cache"
	"gescon/internal/pkg/middleware"
)

// Handlers agrupa os handlers já inicializados por injeção de dependências.
type Handlers struct {
	Client   *client.Handler
	Service  *service.Handler
	User     *user.Handler
	Contract *contract.Handler
}

// NewRouter configura e retorna o roteador HTTP principal. Rotas de registro
// e login de usuário são públicas; todo o restante do /v1 exige bearer token.
func NewRouter(h Handlers, tokenSvc middleware.TokenValidator, cacheClient cache.Client, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Middlewares globais
	r.Use(middleware.RequestID)
	r.Use(middleware.RateLimiter(cacheClient, cfg.RateLimitMaxRequests, cfg.RateLimitPeriod))

	// Health check e documentação
	r.Get("/ping", PingHandler)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	auth := middleware.Auth(tokenSvc)

	r.Route("/v1", func(r chi.Router) {
		// Usuários: register/login públicos, demais operações protegidas.
		r.Route("/users", func(r chi.Router) {
			r.Post("/register", h.User.Register)
			r.Post("/login", h.User.Login)

			r.Group(func(r chi.Router) {
				r.Use(auth)
				r.Get("/", h.User.GetAll)
				r.Get("/{id}", h.User.GetByID)
				r.Patch("/{id}", h.User.Update)
				r.Delete("/{id}", h.User.Delete)
			})
		})

		// Demais entidades: todas as rotas protegidas.
		r.Group(func(r chi.Router) {
			r.Use(auth)

			r.Route("/clients", func(r chi.Router) {
				r.Post("/", h.Client.Register)
				r.Get("/", h.Client.GetAll)
				r.Get("/{id}", h.Client.GetByID)
				r.Patch("/{id}", h.Client.Update)
				r.Delete("/{id}", h.Client.Delete)
			})

			r.Route("/services", func(r chi.Router) {
				r.Post("/", h.Service.Create)
				r.Get("/", h.Service.GetAll)
				r.Get("/{id}", h.Service.GetByID)
				r.Patch("/{id}", h.Service.Update)
				r.Delete("/{id}", h.Service.Delete)
			})

			r.Route("/contracts", func(r chi.Router) {
				r.Post("/", h.Contract.Create)
				r.Get("/", h.Contract.GetAll)
				r.Get("/client/{clientId}", h.Contract.GetByClientID)
				r.Get("/{id}", h.Contract.GetByID)
				r.Patch("/{id}", h.Contract.Update)
				r.Delete("/{id}", h.Contract.Delete)
			})
		})
	})

	return r
}

// PingHandler é o health check da aplicação.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
