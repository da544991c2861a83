package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"nexlot/internal/domain"
	"nexlot/internal/repository"

	"github.com/lib/pq"
)

type pgParkingSpotRepository struct {
	db *sql.DB
}

func NewPgParkingSpotRepository(db *sql.DB) repository.ParkingSpotRepository {
	return &pgParkingSpotRepository{db: db}
}

const spotColumns = `id, owner_id, title, description, address, latitude, longitude,
	hourly_rate, daily_rate, images, safety_score, safety_labels,
	available_from, available_to, amenities, is_active, created_at`

func scanSpot(row interface{ Scan(...any) error }) (*domain.ParkingSpot, error) {
	spot := &domain.ParkingSpot{}
	err := row.Scan(
		&spot.ID, &spot.OwnerID, &spot.Title, &spot.Description, &spot.Address,
		&spot.Latitude, &spot.Longitude, &spot.HourlyRate, &spot.DailyRate,
		pq.Array(&spot.Images), &spot.SafetyScore, pq.Array(&spot.SafetyLabels),
		&spot.AvailableFrom, &spot.AvailableTo, pq.Array(&spot.Amenities),
		&spot.IsActive, &spot.CreatedAt)
	if err != nil {
		return nil, err
	}
	spot.CreatedAt = spot.CreatedAt.In(time.UTC)
	return spot, nil
}

func (r *pgParkingSpotRepository) Create(ctx context.Context, spot *domain.ParkingSpot) (*domain.ParkingSpot, error) {
	query := `INSERT INTO parking_spots (id, owner_id, title, description, address, latitude, longitude,
	            hourly_rate, daily_rate, images, safety_score, safety_labels,
	            available_from, available_to, amenities, is_active, created_at)
	           VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, CURRENT_TIMESTAMP)
	           RETURNING created_at`
	err := r.db.QueryRowContext(ctx, query,
		spot.ID, spot.OwnerID, spot.Title, spot.Description, spot.Address,
		spot.Latitude, spot.Longitude, spot.HourlyRate, spot.DailyRate,
		pq.Array(spot.Images), spot.SafetyScore, pq.Array(spot.SafetyLabels),
		spot.AvailableFrom, spot.AvailableTo, pq.Array(spot.Amenities), spot.IsActive,
	).Scan(&spot.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("ParkingSpotRepository.Create: %w", err)
	}
	spot.CreatedAt = spot.CreatedAt.In(time.UTC)
	return spot, nil
}

func (r *pgParkingSpotRepository) FindByID(ctx context.Context, id string) (*domain.ParkingSpot, error) {
	query := `SELECT ` + spotColumns + ` FROM parking_spots WHERE id = $1`
	spot, err := scanSpot(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("ParkingSpotRepository.FindByID: %w", err)
	}
	return spot, nil
}

func (r *pgParkingSpotRepository) FindAll(ctx context.Context) ([]domain.ParkingSpot, error) {
	query := `SELECT ` + spotColumns + ` FROM parking_spots ORDER BY created_at`
	return r.queryMany(ctx, "FindAll", query)
}

func (r *pgParkingSpotRepository) FindByOwnerID(ctx context.Context, ownerID string) ([]domain.ParkingSpot, error) {
	query := `SELECT ` + spotColumns + ` FROM parking_spots WHERE owner_id = $1 ORDER BY created_at`
	return r.queryMany(ctx, "FindByOwnerID", query, ownerID)
}

func (r *pgParkingSpotRepository) queryMany(ctx context.Context, op string, query string, args ...any) ([]domain.ParkingSpot, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ParkingSpotRepository.%s: %w", op, err)
	}
	defer rows.Close()

	var spots []domain.ParkingSpot
	for rows.Next() {
		spot, err := scanSpot(rows)
		if err != nil {
			return nil, fmt.Errorf("ParkingSpotRepository.%s (scanning row): %w", op, err)
		}
		spots = append(spots, *spot)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("ParkingSpotRepository.%s (rows error): %w", op, err)
	}
	return spots, nil
}

func (r *pgParkingSpotRepository) Update(ctx context.Context, spot *domain.ParkingSpot) (*domain.ParkingSpot, error) {
	query := `UPDATE parking_spots SET title = $1, description = $2, address = $3, latitude = $4, longitude = $5,
	            hourly_rate = $6, daily_rate = $7, images = $8, safety_score = $9, safety_labels = $10,
	            available_from = $11, available_to = $12, amenities = $13, is_active = $14
	           WHERE id = $15
	           RETURNING created_at`
	err := r.db.QueryRowContext(ctx, query,
		spot.Title, spot.Description, spot.Address, spot.Latitude, spot.Longitude,
		spot.HourlyRate, spot.DailyRate, pq.Array(spot.Images), spot.SafetyScore,
		pq.Array(spot.SafetyLabels), spot.AvailableFrom, spot.AvailableTo,
		pq.Array(spot.Amenities), spot.IsActive, spot.ID,
	).Scan(&spot.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("ParkingSpotRepository.Update: %w", err)
	}
	spot.CreatedAt = spot.CreatedAt.In(time.UTC)
	return spot, nil
}

func (r *pgParkingSpotRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM parking_spots WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("ParkingSpotRepository.Delete: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ParkingSpotRepository.Delete (checking rows affected): %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
