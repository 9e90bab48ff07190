package itemservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/shareit/shareit/internal/domain"
)

//go:generate mockgen -source=itemservice.go -destination=itemservice_mock.go -package=itemservice

type ItemRepo interface {
	Save(ctx context.Context, item *domain.Item) (*domain.Item, error)
	FindByID(ctx context.Context, id int) (*domain.Item, error)
	FindActive(ctx context.Context, skip, limit int) ([]domain.Item, error)
	FindByLenderID(ctx context.Context, lenderID int) ([]domain.Item, error)
	Update(ctx context.Context, item *domain.Item) (*domain.Item, error)
	Deactivate(ctx context.Context, id int) error
}

type BookingRepo interface {
	FindActiveByItemID(ctx context.Context, itemID int) (*domain.Booking, error)
}

var (
	ErrItemNotFound = errors.New("item not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidItem  = errors.New("invalid item")
)

// ItemWithStatus pairs an item with its derived availability status. The
// status is computed from the active flag and the item's current
// non-terminal booking; it is never stored.
type ItemWithStatus struct {
	domain.Item
	Status string
}

type Service struct {
	repo        ItemRepo
	bookingRepo BookingRepo
}

func New(repo ItemRepo, bookingRepo BookingRepo) *Service {
	return &Service{
		repo:        repo,
		bookingRepo: bookingRepo,
	}
}

func (s *Service) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	if item.Title == "" || !item.DailyDeposit.IsPositive() {
		return nil, ErrInvalidItem
	}
	if item.MinDays <= 0 || item.MaxDays < item.MinDays {
		return nil, ErrInvalidItem
	}
	item.IsActive = true

	created, err := s.repo.Save(ctx, item)
	if err != nil {
		zap.L().Error("can't create item", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) List(ctx context.Context, skip, limit int) ([]ItemWithStatus, error) {
	items, err := s.repo.FindActive(ctx, skip, limit)
	if err != nil {
		zap.L().Error("failed to list items", zap.Error(err))
		return nil, err
	}
	return s.withStatuses(ctx, items)
}

func (s *Service) ListByLender(ctx context.Context, lenderID int) ([]ItemWithStatus, error) {
	items, err := s.repo.FindByLenderID(ctx, lenderID)
	if err != nil {
		zap.L().Error("failed to list lender items", zap.Error(err))
		return nil, err
	}
	return s.withStatuses(ctx, items)
}

func (s *Service) Get(ctx context.Context, id int) (*ItemWithStatus, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	status, err := s.deriveStatus(ctx, item)
	if err != nil {
		return nil, err
	}
	return &ItemWithStatus{Item: *item, Status: status}, nil
}

// Update applies lender edits. Changing the daily deposit never touches
// in-flight bookings: their total deposit was fixed at creation.
func (s *Service) Update(ctx context.Context, actorID int, item *domain.Item) (*domain.Item, error) {
	existing, err := s.repo.FindByID(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrItemNotFound
	}
	if existing.LenderID != actorID {
		return nil, ErrForbidden
	}
	if item.MinDays <= 0 || item.MaxDays < item.MinDays || !item.DailyDeposit.IsPositive() {
		return nil, ErrInvalidItem
	}
	item.LenderID = existing.LenderID

	updated, err := s.repo.Update(ctx, item)
	if err != nil {
		zap.L().Error("can't update item", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

// Deactivate is the soft delete: the item stays referenced by past bookings
// but can never be the subject of a new one.
func (s *Service) Deactivate(ctx context.Context, actorID, itemID int) error {
	existing, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrItemNotFound
	}
	if existing.LenderID != actorID {
		return ErrForbidden
	}
	return s.repo.Deactivate(ctx, itemID)
}

func (s *Service) withStatuses(ctx context.Context, items []domain.Item) ([]ItemWithStatus, error) {
	result := make([]ItemWithStatus, 0, len(items))
	for _, item := range items {
		item := item
		status, err := s.deriveStatus(ctx, &item)
		if err != nil {
			return nil, err
		}
		result = append(result, ItemWithStatus{Item: item, Status: status})
	}
	return result, nil
}

func (s *Service) deriveStatus(ctx context.Context, item *domain.Item) (string, error) {
	if !item.IsActive {
		return domain.ItemStatusInactive, nil
	}
	booking, err := s.bookingRepo.FindActiveByItemID(ctx, item.ID)
	if err != nil {
		return "", err
	}
	switch {
	case booking == nil:
		return domain.ItemStatusAvailable, nil
	case booking.Status == domain.BookingStatusDisputed:
		return domain.ItemStatusDispute, nil
	default:
		return domain.ItemStatusRented, nil
	}
}
