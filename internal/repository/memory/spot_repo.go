package memory

import (
	"context"
	"sync"
	"time"

	"nexlot/internal/domain"
	"nexlot/internal/repository"

	"gopkg.in/guregu/null.v4"
)

type memParkingSpotRepository struct {
	mu      sync.Mutex
	spots   []*domain.ParkingSpot
	latency time.Duration
}

// NewMemParkingSpotRepository tạo repository với catalog seed sẵn
// (3 spot mẫu ở Bangalore, giống dữ liệu demo của frontend).
func NewMemParkingSpotRepository(latency time.Duration) repository.ParkingSpotRepository {
	return &memParkingSpotRepository{
		spots:   seedParkingSpots(),
		latency: latency,
	}
}

func seedParkingSpots() []*domain.ParkingSpot {
	now := time.Now().UTC()
	return []*domain.ParkingSpot{
		{
			ID:            "spot_1",
			OwnerID:       "owner_1",
			Title:         "Koramangala 5th Block Parking",
			Description:   "Spacious parking with easy access to Forum Mall and nearby offices.",
			Address:       "Forum Mall, Koramangala, Bangalore",
			Latitude:      12.9352,
			Longitude:     77.6142,
			HourlyRate:    30,
			DailyRate:     null.FloatFrom(200),
			Images:        []string{"https://images.unsplash.com/photo-1603791440384-56cd371ee9a7?w=500&auto=format&fit=crop&q=60"},
			SafetyScore:   4.3,
			SafetyLabels:  []string{"Well-lit", "Guarded"},
			AvailableFrom: "08:00",
			AvailableTo:   "22:00",
			Amenities:     []string{"CCTV", "Covered", "EV Charging"},
			IsActive:      true,
			CreatedAt:     now,
		},
		{
			ID:            "spot_2",
			OwnerID:       "owner_2",
			Title:         "Indiranagar Main Road Parking",
			Description:   "Safe parking spot near popular cafes and pubs on 100 Feet Road.",
			Address:       "100 Feet Road, Indiranagar, Bangalore",
			Latitude:      12.9719,
			Longitude:     77.6412,
			HourlyRate:    25,
			DailyRate:     null.FloatFrom(180),
			Images:        []string{"https://images.unsplash.com/photo-1513151233558-d860c5398176?w=500&auto=format&fit=crop&q=60"},
			SafetyScore:   4.0,
			SafetyLabels:  []string{"CCTV", "Guarded"},
			AvailableFrom: "07:00",
			AvailableTo:   "23:00",
			Amenities:     []string{"CCTV", "Restaurants Nearby"},
			IsActive:      true,
			CreatedAt:     now,
		},
		{
			ID:            "spot_3",
			OwnerID:       "owner_3",
			Title:         "MG Road Metro Station Parking",
			Description:   "Affordable parking next to the MG Road Metro Station.",
			Address:       "MG Road Metro Station, Bangalore",
			Latitude:      12.9758,
			Longitude:     77.6033,
			HourlyRate:    20,
			DailyRate:     null.FloatFrom(150),
			Images:        []string{"https://images.unsplash.com/photo-1603791440333-5a43093a741d?w=500&auto=format&fit=crop&q=60"},
			SafetyScore:   3.8,
			SafetyLabels:  []string{"Public Area"},
			AvailableFrom: "06:00",
			AvailableTo:   "22:00",
			Amenities:     []string{"Metro Access", "Public Parking"},
			IsActive:      true,
			CreatedAt:     now,
		},
	}
}

func (r *memParkingSpotRepository) Create(ctx context.Context, spot *domain.ParkingSpot) (*domain.ParkingSpot, error) {
	if err := wait(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.spots = append(r.spots, cloneSpot(spot))
	return cloneSpot(spot), nil
}

func (r *memParkingSpotRepository) FindByID(ctx context.Context, id string) (*domain.ParkingSpot, error) {
	if err := wait(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, spot := range r.spots {
		if spot.ID == id {
			return cloneSpot(spot), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memParkingSpotRepository) FindAll(ctx context.Context) ([]domain.ParkingSpot, error) {
	if err := wait(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	spots := make([]domain.ParkingSpot, 0, len(r.spots))
	for _, spot := range r.spots {
		spots = append(spots, *cloneSpot(spot))
	}
	return spots, nil
}

func (r *memParkingSpotRepository) FindByOwnerID(ctx context.Context, ownerID string) ([]domain.ParkingSpot, error) {
	if err := wait(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var spots []domain.ParkingSpot
	for _, spot := range r.spots {
		if spot.OwnerID == ownerID {
			spots = append(spots, *cloneSpot(spot))
		}
	}
	return spots, nil
}

func (r *memParkingSpotRepository) Update(ctx context.Context, spot *domain.ParkingSpot) (*domain.ParkingSpot, error) {
	if err := wait(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.spots {
		if existing.ID == spot.ID {
			r.spots[i] = cloneSpot(spot)
			return cloneSpot(spot), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memParkingSpotRepository) Delete(ctx context.Context, id string) error {
	if err := wait(ctx, r.latency); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, spot := range r.spots {
		if spot.ID == id {
			r.spots = append(r.spots[:i], r.spots[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}
