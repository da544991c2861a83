package repository

import (
	"context"
	"errors"

	"nexlot/internal/domain"
)

var ErrNotFound = errors.New("không tìm thấy bản ghi")
var ErrDuplicateEntry = errors.New("bản ghi đã tồn tại")

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

type ParkingSpotRepository interface {
	Create(ctx context.Context, spot *domain.ParkingSpot) (*domain.ParkingSpot, error)
	FindByID(ctx context.Context, id string) (*domain.ParkingSpot, error)
	FindAll(ctx context.Context) ([]domain.ParkingSpot, error)
	FindByOwnerID(ctx context.Context, ownerID string) ([]domain.ParkingSpot, error)
	Update(ctx context.Context, spot *domain.ParkingSpot) (*domain.ParkingSpot, error)
	Delete(ctx context.Context, id string) error
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	FindByUserID(ctx context.Context, userID string) ([]domain.Booking, error)
}

// SessionRepository giữ phiên đăng nhập hiện tại của client (tối đa một User).
// Load trả về ErrNotFound khi chưa có phiên nào được lưu.
type SessionRepository interface {
	Save(user *domain.User) error
	Load() (*domain.User, error)
	Clear() error
}
