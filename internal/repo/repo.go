package repo

import (
	"github.com/shareit/shareit/internal/pg"
	bookingrepo "github.com/shareit/shareit/internal/repo/booking-repo"
	disputerepo "github.com/shareit/shareit/internal/repo/dispute-repo"
	itemrepo "github.com/shareit/shareit/internal/repo/item-repo"
	ledgerrepo "github.com/shareit/shareit/internal/repo/ledger-repo"
	userrepo "github.com/shareit/shareit/internal/repo/user-repo"
)

// Repositories holds the concrete repositories. Services narrow them to
// their own interfaces at construction time.
type Repositories struct {
	UserRepo    *userrepo.Repository
	ItemRepo    *itemrepo.Repository
	BookingRepo *bookingrepo.Repository
	LedgerRepo  *ledgerrepo.Repository
	DisputeRepo *disputerepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:    userrepo.New(conn),
		ItemRepo:    itemrepo.New(conn),
		BookingRepo: bookingrepo.New(conn, txManager),
		LedgerRepo:  ledgerrepo.New(conn, txManager),
		DisputeRepo: disputerepo.New(conn, txManager),
	}
}
