package handlers

import (
	"net/http"

	_ "github.com/ezpay/ezpay/docs"
	accounthandlers "github.com/ezpay/ezpay/internal/handlers/accounts"
	adminhandlers "github.com/ezpay/ezpay/internal/handlers/admin"
	authhandlers "github.com/ezpay/ezpay/internal/handlers/auth"
	limithandlers "github.com/ezpay/ezpay/internal/handlers/limits"
	transferhandlers "github.com/ezpay/ezpay/internal/handlers/transfers"
	"github.com/ezpay/ezpay/internal/metrics"
	"github.com/ezpay/ezpay/internal/service"
	"github.com/ezpay/ezpay/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type AccountHandler interface {
	CreateAccount(w http.ResponseWriter, r *http.Request)
	GetAccounts(w http.ResponseWriter, r *http.Request)
	GetAccount(w http.ResponseWriter, r *http.Request)
	GetAccountByNumber(w http.ResponseWriter, r *http.Request)
	SetPrimary(w http.ResponseWriter, r *http.Request)
	DeleteAccount(w http.ResponseWriter, r *http.Request)
}

type TransferHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	GetTransaction(w http.ResponseWriter, r *http.Request)
	GetAccountTransactions(w http.ResponseWriter, r *http.Request)
}

type LimitHandler interface {
	GetMyLimit(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	GetAllLimits(w http.ResponseWriter, r *http.Request)
	UpdateLimit(w http.ResponseWriter, r *http.Request)
	ResetLimit(w http.ResponseWriter, r *http.Request)
	GetErrorLogs(w http.ResponseWriter, r *http.Request)
	ResolveErrorLog(w http.ResponseWriter, r *http.Request)
	DeleteErrorLog(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	AccountHandler  AccountHandler
	TransferHandler TransferHandler
	LimitHandler    LimitHandler
	AdminHandler    AdminHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		AccountHandler:  accounthandlers.New(s.AccountService),
		TransferHandler: transferhandlers.New(s.TransferService, s.AccountService),
		LimitHandler:    limithandlers.New(s.LimitService),
		AdminHandler:    adminhandlers.New(s.LimitService, s.FailLogService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Route("/accounts", func(r chi.Router) {
				r.Post("/", h.AccountHandler.CreateAccount)
				r.Get("/", h.AccountHandler.GetAccounts)
				r.Get("/number/{accountNumber}", h.AccountHandler.GetAccountByNumber)
				r.Route("/{accountID}", func(r chi.Router) {
					r.Get("/", h.AccountHandler.GetAccount)
					r.Delete("/", h.AccountHandler.DeleteAccount)
					r.Post("/primary", h.AccountHandler.SetPrimary)
					r.Get("/transactions", h.TransferHandler.GetAccountTransactions)
				})
			})

			r.Route("/transfers", func(r chi.Router) {
				r.Post("/", h.TransferHandler.Submit)
				r.Get("/{transactionID}", h.TransferHandler.GetTransaction)
			})

			r.Get("/limits", h.LimitHandler.GetMyLimit)

			r.Route("/admin", func(r chi.Router) {
				r.Route("/transfer-limits", func(r chi.Router) {
					r.Get("/", h.AdminHandler.GetAllLimits)
					r.Put("/{userID}", h.AdminHandler.UpdateLimit)
					r.Post("/{userID}/reset", h.AdminHandler.ResetLimit)
				})
				r.Route("/error-logs", func(r chi.Router) {
					r.Get("/", h.AdminHandler.GetErrorLogs)
					r.Post("/{eventID}/resolve", h.AdminHandler.ResolveErrorLog)
					r.Delete("/{eventID}", h.AdminHandler.DeleteErrorLog)
				})
			})
		})
	})

	return r
}
