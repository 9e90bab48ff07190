package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/shareit/shareit/docs"
	authhandlers "github.com/shareit/shareit/internal/handlers/auth"
	bookinghandlers "github.com/shareit/shareit/internal/handlers/bookings"
	disputehandlers "github.com/shareit/shareit/internal/handlers/disputes"
	itemhandlers "github.com/shareit/shareit/internal/handlers/items"
	wallethandlers "github.com/shareit/shareit/internal/handlers/wallet"
	"github.com/shareit/shareit/internal/service"
	"github.com/shareit/shareit/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type ItemHandler interface {
	CreateItem(w http.ResponseWriter, r *http.Request)
	ListItems(w http.ResponseWriter, r *http.Request)
	MyItems(w http.ResponseWriter, r *http.Request)
	GetItem(w http.ResponseWriter, r *http.Request)
	UpdateItem(w http.ResponseWriter, r *http.Request)
	DeleteItem(w http.ResponseWriter, r *http.Request)
}

type BookingHandler interface {
	CreateBooking(w http.ResponseWriter, r *http.Request)
	GetBookings(w http.ResponseWriter, r *http.Request)
	GetPending(w http.ResponseWriter, r *http.Request)
	GetActiveItems(w http.ResponseWriter, r *http.Request)
	GetBooking(w http.ResponseWriter, r *http.Request)
	DecideBooking(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	TopUp(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
}

type DisputeHandler interface {
	OpenDispute(w http.ResponseWriter, r *http.Request)
	GetDisputes(w http.ResponseWriter, r *http.Request)
	GetDispute(w http.ResponseWriter, r *http.Request)
	ResolveDispute(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	ItemHandler    ItemHandler
	BookingHandler BookingHandler
	WalletHandler  WalletHandler
	DisputeHandler DisputeHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		ItemHandler:    itemhandlers.New(s.ItemService),
		BookingHandler: bookinghandlers.New(s.BookingService, s.AvailabilityService),
		WalletHandler:  wallethandlers.New(s.LedgerService),
		DisputeHandler: disputehandlers.New(s.DisputeService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Idempotency-Key"},
			AllowCredentials: false,
			MaxAge:           300,
		}),
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.AuthHandler.Register)
		r.Post("/auth/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/items", func(r chi.Router) {
				r.Post("/", h.ItemHandler.CreateItem)
				r.Get("/", h.ItemHandler.ListItems)
				r.Get("/mine", h.ItemHandler.MyItems)
				r.Get("/{id}", h.ItemHandler.GetItem)
				r.Patch("/{id}", h.ItemHandler.UpdateItem)
				r.Delete("/{id}", h.ItemHandler.DeleteItem)
			})
			r.Route("/bookings", func(r chi.Router) {
				r.Post("/", h.BookingHandler.CreateBooking)
				r.Get("/", h.BookingHandler.GetBookings)
				r.Get("/pending", h.BookingHandler.GetPending)
				r.Get("/active-items", h.BookingHandler.GetActiveItems)
				r.Get("/{id}", h.BookingHandler.GetBooking)
				r.Patch("/{id}", h.BookingHandler.DecideBooking)
			})
			r.Route("/wallet", func(r chi.Router) {
				r.Get("/balance", h.WalletHandler.GetBalance)
				r.Post("/topup", h.WalletHandler.TopUp)
				r.Get("/history", h.WalletHandler.GetHistory)
			})
			r.Route("/disputes", func(r chi.Router) {
				r.Post("/", h.DisputeHandler.OpenDispute)
				r.Get("/", h.DisputeHandler.GetDisputes)
				r.Get("/{id}", h.DisputeHandler.GetDispute)
				r.With(auth.AdminMiddleware).Patch("/{id}", h.DisputeHandler.ResolveDispute)
			})
		})
	})

	return r
}
