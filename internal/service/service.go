package service

import (
	"github.com/shopspring/decimal"

	"github.com/shareit/shareit/internal/config"
	"github.com/shareit/shareit/internal/handlers/auth"
	"github.com/shareit/shareit/internal/handlers/bookings"
	"github.com/shareit/shareit/internal/handlers/disputes"
	"github.com/shareit/shareit/internal/handlers/items"
	"github.com/shareit/shareit/internal/handlers/wallet"
	"github.com/shareit/shareit/internal/pg"
	"github.com/shareit/shareit/internal/repo"
	authservice "github.com/shareit/shareit/internal/service/authservice"
	availabilityservice "github.com/shareit/shareit/internal/service/availabilityservice"
	bookingservice "github.com/shareit/shareit/internal/service/bookingservice"
	disputeservice "github.com/shareit/shareit/internal/service/disputeservice"
	itemservice "github.com/shareit/shareit/internal/service/itemservice"
	ledgerservice "github.com/shareit/shareit/internal/service/ledgerservice"
	pkgauth "github.com/shareit/shareit/pkg/auth"
	"github.com/shareit/shareit/pkg/keymutex"
)

type Services struct {
	AuthService    auth.Service
	ItemService    items.Service
	BookingService bookings.Service
	LedgerService  wallet.Service
	DisputeService disputes.Service

	// Concrete so the application can run the snapshot refresher.
	AvailabilityService *availabilityservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, cfg *config.Config) *Services {
	ledgerService := ledgerservice.New(repo.LedgerRepo, decimal.NewFromFloat(cfg.TopUpLimit))
	availabilityService := availabilityservice.New(repo.BookingRepo, cfg.AvailabilityRefresh)
	// One lock set per item: booking transitions and dispute freezes
	// must serialize against each other, not just among themselves.
	itemLocks := keymutex.New()
	bookingService := bookingservice.New(repo.BookingRepo, repo.ItemRepo, repo.DisputeRepo, ledgerService, availabilityService, txManager, itemLocks)
	disputeService := disputeservice.New(repo.DisputeRepo, repo.BookingRepo, ledgerService, txManager, itemLocks, disputeservice.Options{
		RejectResume:   cfg.DisputeRejectResume,
		PenalizeExcess: cfg.PenalizeExcess,
	})
	itemService := itemservice.New(repo.ItemRepo, repo.BookingRepo)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:         authService,
		ItemService:         itemService,
		BookingService:      bookingService,
		LedgerService:       ledgerService,
		DisputeService:      disputeService,
		AvailabilityService: availabilityService,
	}
}
