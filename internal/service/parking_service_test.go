package service

import (
	"context"
	"errors"
	"testing"

	"nexlot/internal/domain"
	"nexlot/internal/repository"
	"nexlot/internal/repository/memory"
)

func newTestParkingService() *ParkingService {
	spotRepo := memory.NewMemParkingSpotRepository(0)
	bookingRepo := memory.NewMemBookingRepository(0)
	return NewParkingService(spotRepo, bookingRepo, nil)
}

func validSpotDTO() domain.CreateParkingSpotDTO {
	return domain.CreateParkingSpotDTO{
		Title:         "Test Spot",
		Description:   "Chỗ đỗ thử nghiệm",
		Address:       "Test Street, Bangalore",
		Latitude:      12.95,
		Longitude:     77.62,
		HourlyRate:    40,
		Images:        []string{"https://example.com/spot.jpg"},
		AvailableFrom: "08:00",
		AvailableTo:   "20:00",
		Amenities:     []string{"CCTV"},
	}
}

func TestListSpots_SeedCatalog(t *testing.T) {
	s := newTestParkingService()
	spots, err := s.ListSpots(context.Background())
	if err != nil {
		t.Fatalf("ListSpots: %v", err)
	}
	if len(spots) != 3 {
		t.Fatalf("catalog seed phải có 3 spot, got %d", len(spots))
	}
	if spots[0].ID != "spot_1" || spots[0].HourlyRate != 30 {
		t.Errorf("spot seed đầu tiên không đúng: %+v", spots[0])
	}
}

func TestCreateSpot_RequiresImage(t *testing.T) {
	s := newTestParkingService()
	dto := validSpotDTO()
	dto.Images = nil

	_, err := s.CreateSpot(context.Background(), "owner_x", dto)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("muốn ErrValidation khi không có ảnh, got %v", err)
	}

	spots, _ := s.ListSpots(context.Background())
	if len(spots) != 3 {
		t.Errorf("catalog không được thay đổi khi create thất bại, got %d spot", len(spots))
	}
}

func TestCreateSpot_RequiresOwner(t *testing.T) {
	s := newTestParkingService()
	_, err := s.CreateSpot(context.Background(), "", validSpotDTO())
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("muốn ErrValidation khi không có owner, got %v", err)
	}
}

func TestCreateSpot_AssignsDefaults(t *testing.T) {
	s := newTestParkingService()
	spot, err := s.CreateSpot(context.Background(), "owner_x", validSpotDTO())
	if err != nil {
		t.Fatalf("CreateSpot: %v", err)
	}
	if spot.ID == "" || spot.ID == "spot_" {
		t.Errorf("spot phải có id mới, got '%s'", spot.ID)
	}
	if !spot.IsActive {
		t.Error("spot mới phải active mặc định")
	}
	if spot.OwnerID != "owner_x" {
		t.Errorf("owner_id = %s, muốn owner_x", spot.OwnerID)
	}
	if spot.CreatedAt.IsZero() {
		t.Error("spot mới phải có created_at")
	}
}

func TestUpdateSpot_PartialMerge(t *testing.T) {
	s := newTestParkingService()
	ctx := context.Background()

	before, err := s.GetSpot(ctx, "spot_1")
	if err != nil {
		t.Fatalf("GetSpot: %v", err)
	}

	newTitle := "Koramangala Covered Parking"
	updated, err := s.UpdateSpot(ctx, "spot_1", domain.UpdateParkingSpotDTO{Title: &newTitle})
	if err != nil {
		t.Fatalf("UpdateSpot: %v", err)
	}

	if updated.Title != newTitle {
		t.Errorf("title = %s, muốn %s", updated.Title, newTitle)
	}
	// Các field không được cung cấp phải giữ nguyên
	if updated.HourlyRate != before.HourlyRate {
		t.Errorf("hourly_rate bị thay đổi: %v -> %v", before.HourlyRate, updated.HourlyRate)
	}
	if updated.Address != before.Address {
		t.Errorf("address bị thay đổi: %s -> %s", before.Address, updated.Address)
	}
	if len(updated.SafetyLabels) != len(before.SafetyLabels) {
		t.Errorf("safety_labels bị thay đổi: %v -> %v", before.SafetyLabels, updated.SafetyLabels)
	}
	if !updated.DailyRate.Valid || updated.DailyRate.Float64 != before.DailyRate.Float64 {
		t.Errorf("daily_rate bị thay đổi: %v -> %v", before.DailyRate, updated.DailyRate)
	}
}

func TestUpdateSpot_NotFound(t *testing.T) {
	s := newTestParkingService()
	newTitle := "x"
	_, err := s.UpdateSpot(context.Background(), "spot_không_tồn_tại", domain.UpdateParkingSpotDTO{Title: &newTitle})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("muốn ErrNotFound, got %v", err)
	}
}

func TestUpdateSpot_RefreshesSelection(t *testing.T) {
	s := newTestParkingService()
	ctx := context.Background()

	if err := s.SelectSpot(ctx, "spot_1"); err != nil {
		t.Fatalf("SelectSpot: %v", err)
	}

	newTitle := "Đã đổi tên"
	if _, err := s.UpdateSpot(ctx, "spot_1", domain.UpdateParkingSpotDTO{Title: &newTitle}); err != nil {
		t.Fatalf("UpdateSpot: %v", err)
	}

	selected := s.SelectedSpot()
	if selected == nil || selected.Title != newTitle {
		t.Errorf("con trỏ chọn phải được refresh sau update, got %+v", selected)
	}
}

func TestDeleteSpot(t *testing.T) {
	s := newTestParkingService()
	ctx := context.Background()

	if err := s.DeleteSpot(ctx, "spot_2"); err != nil {
		t.Fatalf("DeleteSpot: %v", err)
	}

	spots, _ := s.ListSpots(ctx)
	for _, spot := range spots {
		if spot.ID == "spot_2" {
			t.Error("spot đã xóa vẫn còn trong catalog")
		}
	}

	if err := s.DeleteSpot(ctx, "spot_2"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("xóa spot không tồn tại phải là ErrNotFound, got %v", err)
	}
}

func TestDeleteSpot_ClearsSelection(t *testing.T) {
	s := newTestParkingService()
	ctx := context.Background()

	if err := s.SelectSpot(ctx, "spot_3"); err != nil {
		t.Fatalf("SelectSpot: %v", err)
	}
	if s.SelectedSpot() == nil {
		t.Fatal("spot_3 phải được chọn")
	}

	if err := s.DeleteSpot(ctx, "spot_3"); err != nil {
		t.Fatalf("DeleteSpot: %v", err)
	}
	if s.SelectedSpot() != nil {
		t.Error("xóa spot đang chọn phải bỏ chọn")
	}
}

func TestSelectSpot_UnknownIDClears(t *testing.T) {
	s := newTestParkingService()
	ctx := context.Background()

	if err := s.SelectSpot(ctx, "spot_1"); err != nil {
		t.Fatalf("SelectSpot: %v", err)
	}
	// id không tồn tại: bỏ chọn, không lỗi
	if err := s.SelectSpot(ctx, "spot_ma"); err != nil {
		t.Fatalf("SelectSpot với id lạ không được lỗi: %v", err)
	}
	if s.SelectedSpot() != nil {
		t.Error("chọn id không tồn tại phải bỏ chọn con trỏ")
	}

	if err := s.SelectSpot(ctx, ""); err != nil {
		t.Fatalf("SelectSpot rỗng: %v", err)
	}
	if s.SelectedSpot() != nil {
		t.Error("SelectSpot('') phải bỏ chọn")
	}
}

func TestCreateBooking_ComputesPrice(t *testing.T) {
	s := newTestParkingService()

	// spot_1 có hourly_rate = 30, 2 giờ => 60
	booking, err := s.CreateBooking(context.Background(), "spot_1",
		"2024-05-01T10:00:00Z", "2024-05-01T12:00:00Z", "user_a")
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if booking.TotalPrice != 60 {
		t.Errorf("total_price = %v, muốn 60", booking.TotalPrice)
	}
	if booking.Status != domain.BookingConfirmed {
		t.Errorf("status = %s, muốn confirmed", booking.Status)
	}
	if booking.PaymentStatus != domain.PaymentPaid {
		t.Errorf("payment_status = %s, muốn paid", booking.PaymentStatus)
	}
}

func TestCreateBooking_SpotNotFound(t *testing.T) {
	s := newTestParkingService()
	ctx := context.Background()

	_, err := s.CreateBooking(ctx, "spot_ma", "2024-05-01T10:00:00Z", "2024-05-01T12:00:00Z", "user_a")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("muốn ErrNotFound, got %v", err)
	}

	bookings, _ := s.ListBookings(ctx, "user_a")
	if len(bookings) != 0 {
		t.Errorf("danh sách booking phải không đổi khi create thất bại, got %d", len(bookings))
	}
}

func TestCreateBooking_RejectsReversedWindow(t *testing.T) {
	s := newTestParkingService()
	_, err := s.CreateBooking(context.Background(), "spot_1",
		"2024-05-01T12:00:00Z", "2024-05-01T10:00:00Z", "user_a")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("muốn ErrValidation với end trước start, got %v", err)
	}
}

func TestCreateBooking_RejectsBadTimestamp(t *testing.T) {
	s := newTestParkingService()
	_, err := s.CreateBooking(context.Background(), "spot_1", "ngày mai", "2024-05-01T12:00:00Z", "user_a")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("muốn ErrValidation với timestamp hỏng, got %v", err)
	}
}

func TestListBookings_FiltersByUser(t *testing.T) {
	s := newTestParkingService()
	ctx := context.Background()

	if _, err := s.CreateBooking(ctx, "spot_1", "2024-05-01T10:00:00Z", "2024-05-01T11:00:00Z", "user_a"); err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if _, err := s.CreateBooking(ctx, "spot_2", "2024-05-01T10:00:00Z", "2024-05-01T11:00:00Z", "user_b"); err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	bookings, err := s.ListBookings(ctx, "user_a")
	if err != nil {
		t.Fatalf("ListBookings: %v", err)
	}
	if len(bookings) != 1 || bookings[0].UserID != "user_a" {
		t.Errorf("ListBookings phải lọc theo user, got %+v", bookings)
	}
}

func TestNearbySpots(t *testing.T) {
	s := newTestParkingService()
	ctx := context.Background()

	// Tâm tại spot_1 (Koramangala); spot_2 và spot_3 cách vài km
	near, err := s.NearbySpots(ctx, 12.9352, 77.6142, 1)
	if err != nil {
		t.Fatalf("NearbySpots: %v", err)
	}
	if len(near) != 1 || near[0].ID != "spot_1" {
		t.Errorf("bán kính 1km quanh spot_1 chỉ chứa spot_1, got %+v", near)
	}

	all, err := s.NearbySpots(ctx, 12.9352, 77.6142, 50)
	if err != nil {
		t.Fatalf("NearbySpots: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("bán kính 50km phải chứa cả 3 spot seed, got %d", len(all))
	}
}
