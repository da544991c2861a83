package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"nexlot/internal/domain"
	"nexlot/internal/repository"
)

type pgBookingRepository struct {
	db *sql.DB
}

func NewPgBookingRepository(db *sql.DB) repository.BookingRepository {
	return &pgBookingRepository{db: db}
}

func (r *pgBookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	query := `INSERT INTO bookings (id, parking_spot_id, user_id, start_time, end_time,
	            total_price, status, payment_status, created_at)
	           VALUES ($1, $2, $3, $4, $5, $6, $7, $8, CURRENT_TIMESTAMP)
	           RETURNING created_at`
	err := r.db.QueryRowContext(ctx, query,
		booking.ID, booking.ParkingSpotID, booking.UserID, booking.StartTime, booking.EndTime,
		booking.TotalPrice, booking.Status, booking.PaymentStatus,
	).Scan(&booking.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("BookingRepository.Create: %w", err)
	}
	booking.CreatedAt = booking.CreatedAt.In(time.UTC)
	return booking, nil
}

func (r *pgBookingRepository) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	booking := &domain.Booking{}
	query := `SELECT id, parking_spot_id, user_id, start_time, end_time, total_price, status, payment_status, created_at
	           FROM bookings WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&booking.ID, &booking.ParkingSpotID, &booking.UserID, &booking.StartTime, &booking.EndTime,
		&booking.TotalPrice, &booking.Status, &booking.PaymentStatus, &booking.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("BookingRepository.FindByID: %w", err)
	}
	booking.CreatedAt = booking.CreatedAt.In(time.UTC)
	return booking, nil
}

func (r *pgBookingRepository) FindByUserID(ctx context.Context, userID string) ([]domain.Booking, error) {
	query := `SELECT id, parking_spot_id, user_id, start_time, end_time, total_price, status, payment_status, created_at
	           FROM bookings WHERE user_id = $1 ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("BookingRepository.FindByUserID: %w", err)
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var booking domain.Booking
		if err := rows.Scan(
			&booking.ID, &booking.ParkingSpotID, &booking.UserID, &booking.StartTime, &booking.EndTime,
			&booking.TotalPrice, &booking.Status, &booking.PaymentStatus, &booking.CreatedAt); err != nil {
			return nil, fmt.Errorf("BookingRepository.FindByUserID (scanning row): %w", err)
		}
		booking.CreatedAt = booking.CreatedAt.In(time.UTC)
		bookings = append(bookings, booking)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("BookingRepository.FindByUserID (rows error): %w", err)
	}
	return bookings, nil
}
