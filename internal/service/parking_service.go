package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"nexlot/internal/domain"
	"nexlot/internal/geo"
	"nexlot/internal/pricing"
	"nexlot/internal/repository"

	"github.com/google/uuid"
	"gopkg.in/guregu/null.v4"
)

// MarketNotifier đẩy event catalog/booking đến các client đang kết nối.
type MarketNotifier interface {
	BroadcastMarketEvent(event domain.MarketEventNotification)
}

// ParkingService sở hữu catalog spot, danh sách booking và con trỏ
// "spot đang chọn". Mọi mutation đi qua repository; thất bại thì không
// có partial mutation.
type ParkingService struct {
	spotRepo    repository.ParkingSpotRepository
	bookingRepo repository.BookingRepository
	notifier    MarketNotifier // có thể nil

	selMu    sync.Mutex
	selected *domain.ParkingSpot
}

func NewParkingService(spotRepo repository.ParkingSpotRepository, bookingRepo repository.BookingRepository,
	notifier MarketNotifier) *ParkingService {
	return &ParkingService{
		spotRepo:    spotRepo,
		bookingRepo: bookingRepo,
		notifier:    notifier,
	}
}

// --- ParkingSpot ---

func (s *ParkingService) ListSpots(ctx context.Context) ([]domain.ParkingSpot, error) {
	return s.spotRepo.FindAll(ctx)
}

func (s *ParkingService) ListSpotsByOwner(ctx context.Context, ownerID string) ([]domain.ParkingSpot, error) {
	return s.spotRepo.FindByOwnerID(ctx, ownerID)
}

func (s *ParkingService) GetSpot(ctx context.Context, id string) (*domain.ParkingSpot, error) {
	return s.spotRepo.FindByID(ctx, id)
}

// NearbySpots lọc catalog theo khoảng cách great-circle quanh một điểm.
func (s *ParkingService) NearbySpots(ctx context.Context, lat, lon, radiusKm float64) ([]domain.ParkingSpot, error) {
	spots, err := s.spotRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return geo.Nearby(spots, lat, lon, radiusKm), nil
}

// CreateSpot validate ở biên của store: phải có owner đã đăng nhập và ít
// nhất một ảnh, không chấp nhận để form layer tự lo.
func (s *ParkingService) CreateSpot(ctx context.Context, ownerID string, dto domain.CreateParkingSpotDTO) (*domain.ParkingSpot, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("%w: cần đăng nhập để tạo spot", ErrValidation)
	}
	if len(dto.Images) == 0 {
		return nil, fmt.Errorf("%w: spot phải có ít nhất một ảnh", ErrValidation)
	}

	spot := &domain.ParkingSpot{
		ID:            "spot_" + uuid.NewString(),
		OwnerID:       ownerID,
		Title:         dto.Title,
		Description:   dto.Description,
		Address:       dto.Address,
		Latitude:      dto.Latitude,
		Longitude:     dto.Longitude,
		HourlyRate:    dto.HourlyRate,
		DailyRate:     null.FloatFromPtr(dto.DailyRate),
		Images:        dto.Images,
		SafetyScore:   dto.SafetyScore,
		SafetyLabels:  dto.SafetyLabels,
		AvailableFrom: dto.AvailableFrom,
		AvailableTo:   dto.AvailableTo,
		Amenities:     dto.Amenities,
		IsActive:      true,
		CreatedAt:     time.Now().UTC(),
	}
	if spot.SafetyLabels == nil {
		spot.SafetyLabels = []string{}
	}

	created, err := s.spotRepo.Create(ctx, spot)
	if err != nil {
		return nil, fmt.Errorf("lỗi khi tạo spot: %w", err)
	}

	s.broadcast(domain.MarketEventNotification{
		EventType: domain.MarketEventSpotCreated,
		SpotID:    created.ID,
		Timestamp: time.Now().UTC(),
	})
	return created, nil
}

// UpdateSpot merge các field được cung cấp vào spot hiện có; các field nil
// trong DTO giữ nguyên giá trị cũ. Cập nhật con trỏ chọn nếu spot đang
// được chọn.
func (s *ParkingService) UpdateSpot(ctx context.Context, id string, dto domain.UpdateParkingSpotDTO) (*domain.ParkingSpot, error) {
	spot, err := s.spotRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if dto.Title != nil {
		spot.Title = *dto.Title
	}
	if dto.Description != nil {
		spot.Description = *dto.Description
	}
	if dto.Address != nil {
		spot.Address = *dto.Address
	}
	if dto.Latitude != nil {
		spot.Latitude = *dto.Latitude
	}
	if dto.Longitude != nil {
		spot.Longitude = *dto.Longitude
	}
	if dto.HourlyRate != nil {
		spot.HourlyRate = *dto.HourlyRate
	}
	if dto.DailyRate != nil {
		spot.DailyRate = null.FloatFrom(*dto.DailyRate)
	}
	if dto.Images != nil {
		spot.Images = *dto.Images
	}
	if dto.SafetyScore != nil {
		spot.SafetyScore = *dto.SafetyScore
	}
	if dto.SafetyLabels != nil {
		spot.SafetyLabels = *dto.SafetyLabels
	}
	if dto.AvailableFrom != nil {
		spot.AvailableFrom = *dto.AvailableFrom
	}
	if dto.AvailableTo != nil {
		spot.AvailableTo = *dto.AvailableTo
	}
	if dto.Amenities != nil {
		spot.Amenities = *dto.Amenities
	}
	if dto.IsActive != nil {
		spot.IsActive = *dto.IsActive
	}

	updated, err := s.spotRepo.Update(ctx, spot)
	if err != nil {
		return nil, err
	}

	s.selMu.Lock()
	if s.selected != nil && s.selected.ID == id {
		c := *updated
		s.selected = &c
	}
	s.selMu.Unlock()

	s.broadcast(domain.MarketEventNotification{
		EventType: domain.MarketEventSpotUpdated,
		SpotID:    updated.ID,
		Timestamp: time.Now().UTC(),
	})
	return updated, nil
}

func (s *ParkingService) DeleteSpot(ctx context.Context, id string) error {
	if err := s.spotRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.selMu.Lock()
	if s.selected != nil && s.selected.ID == id {
		s.selected = nil
	}
	s.selMu.Unlock()

	s.broadcast(domain.MarketEventNotification{
		EventType: domain.MarketEventSpotDeleted,
		SpotID:    id,
		Timestamp: time.Now().UTC(),
	})
	return nil
}

// SelectSpot đặt con trỏ chọn vào spot có id tương ứng; id rỗng hoặc không
// tồn tại thì bỏ chọn, không phải lỗi.
func (s *ParkingService) SelectSpot(ctx context.Context, id string) error {
	if id == "" {
		s.setSelected(nil)
		return nil
	}
	spot, err := s.spotRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.setSelected(nil)
			return nil
		}
		return err
	}
	s.setSelected(spot)
	return nil
}

// SelectedSpot trả về spot đang chọn, nil nếu không có.
func (s *ParkingService) SelectedSpot() *domain.ParkingSpot {
	s.selMu.Lock()
	defer s.selMu.Unlock()
	if s.selected == nil {
		return nil
	}
	c := *s.selected
	return &c
}

func (s *ParkingService) setSelected(spot *domain.ParkingSpot) {
	s.selMu.Lock()
	defer s.selMu.Unlock()
	s.selected = spot
}

// --- Booking ---

// CreateBooking tính giá một lần tại thời điểm tạo (giá spot đổi sau đó
// không làm booking bị tính lại). Không có kiểm tra trùng lịch giữa các
// booking của cùng một spot.
func (s *ParkingService) CreateBooking(ctx context.Context, spotID, startISO, endISO, userID string) (*domain.Booking, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: cần đăng nhập để đặt chỗ", ErrValidation)
	}

	spot, err := s.spotRepo.FindByID(ctx, spotID)
	if err != nil {
		return nil, err
	}

	hours, err := pricing.DurationHours(startISO, endISO)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if hours <= 0 {
		return nil, fmt.Errorf("%w: thời gian kết thúc phải sau thời gian bắt đầu", ErrValidation)
	}

	totalPrice, err := pricing.TotalPrice(spot.HourlyRate, startISO, endISO)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	booking := &domain.Booking{
		ID:            "booking_" + uuid.NewString(),
		ParkingSpotID: spotID,
		UserID:        userID,
		StartTime:     startISO,
		EndTime:       endISO,
		TotalPrice:    totalPrice,
		Status:        domain.BookingConfirmed,
		PaymentStatus: domain.PaymentPaid,
		CreatedAt:     time.Now().UTC(),
	}

	created, err := s.bookingRepo.Create(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("lỗi khi tạo booking: %w", err)
	}

	s.broadcast(domain.MarketEventNotification{
		EventType: domain.MarketEventBookingCreated,
		SpotID:    spotID,
		BookingID: created.ID,
		Timestamp: time.Now().UTC(),
	})
	return created, nil
}

func (s *ParkingService) ListBookings(ctx context.Context, userID string) ([]domain.Booking, error) {
	return s.bookingRepo.FindByUserID(ctx, userID)
}

func (s *ParkingService) broadcast(event domain.MarketEventNotification) {
	if s.notifier != nil {
		s.notifier.BroadcastMarketEvent(event)
	}
}
