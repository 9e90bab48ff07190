package availabilityservice

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/shareit/shareit/internal/domain"
)

//go:generate mockgen -source=availabilityservice.go -destination=availabilityservice_mock.go -package=availabilityservice

type BookingRepo interface {
	FindActiveByItemID(ctx context.Context, itemID int) (*domain.Booking, error)
	FindAllActive(ctx context.Context) ([]domain.Booking, error)
}

// Service derives item availability from the authoritative booking store.
// It is a view, never a source of truth: nothing writes to it, and the
// active-items snapshot served to polling clients may lag by at most the
// refresh interval. DaysRemaining always reads through.
type Service struct {
	repo BookingRepo
	now  func() time.Time

	group    singleflight.Group
	interval time.Duration

	mu         sync.RWMutex
	snapshot   map[int]int
	snapshotAt time.Time
}

func New(repo BookingRepo, interval time.Duration) *Service {
	return &Service{
		repo:     repo,
		now:      time.Now,
		interval: interval,
		snapshot: map[int]int{},
	}
}

// DaysRemaining returns the days until the item's current non-terminal
// booking ends, or nil when the item has none and is rentable.
func (s *Service) DaysRemaining(ctx context.Context, itemID int) (*int, error) {
	booking, err := s.repo.FindActiveByItemID(ctx, itemID)
	if err != nil {
		zap.L().Error("failed to get active booking", zap.Error(err))
		return nil, err
	}
	if booking == nil {
		return nil, nil
	}
	days := s.daysLeft(booking.EndDate)
	return &days, nil
}

// ActiveItems returns item id -> days left for every non-terminal booking.
// Serves the last snapshot while it is fresh; concurrent poll requests that
// miss collapse into a single recomputation.
func (s *Service) ActiveItems(ctx context.Context) (map[int]int, error) {
	s.mu.RLock()
	snapshot, at := s.snapshot, s.snapshotAt
	s.mu.RUnlock()

	if s.now().Sub(at) < s.interval {
		return snapshot, nil
	}

	v, err, _ := s.group.Do("active-items", func() (any, error) {
		return s.refresh(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(map[int]int), nil
}

// Start refreshes the snapshot on a fixed interval until ctx is cancelled.
func (s *Service) Start(ctx context.Context) {
	zap.L().Info("availability refresher started", zap.Duration("interval", s.interval))
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("availability refresher stopped")
			return
		case <-ticker.C:
			if _, err := s.refresh(ctx); err != nil {
				zap.L().Error("availability refresh failed", zap.Error(err))
			}
		}
	}
}

func (s *Service) refresh(ctx context.Context) (map[int]int, error) {
	bookings, err := s.repo.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}

	active := make(map[int]int, len(bookings))
	for _, booking := range bookings {
		active[booking.ItemID] = s.daysLeft(booking.EndDate)
	}

	s.mu.Lock()
	s.snapshot = active
	s.snapshotAt = s.now()
	s.mu.Unlock()

	return active, nil
}

func (s *Service) daysLeft(end time.Time) int {
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	days := int(end.Sub(today).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
