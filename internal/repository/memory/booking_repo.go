package memory

import (
	"context"
	"sync"
	"time"

	"nexlot/internal/domain"
	"nexlot/internal/repository"
)

type memBookingRepository struct {
	mu       sync.Mutex
	bookings []*domain.Booking
	latency  time.Duration
}

func NewMemBookingRepository(latency time.Duration) repository.BookingRepository {
	return &memBookingRepository{latency: latency}
}

func (r *memBookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if err := wait(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *booking
	r.bookings = append(r.bookings, &c)
	out := c
	return &out, nil
}

func (r *memBookingRepository) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	if err := wait(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, booking := range r.bookings {
		if booking.ID == id {
			c := *booking
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

// FindByUserID trả về bookings theo thứ tự tạo (insertion order).
func (r *memBookingRepository) FindByUserID(ctx context.Context, userID string) ([]domain.Booking, error) {
	if err := wait(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var bookings []domain.Booking
	for _, booking := range r.bookings {
		if booking.UserID == userID {
			bookings = append(bookings, *booking)
		}
	}
	return bookings, nil
}
