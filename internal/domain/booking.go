package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

type Booking struct {
	ID            string        `json:"id"`
	ParkingSpotID string        `json:"parking_spot_id"`
	UserID        string        `json:"user_id"`
	StartTime     string        `json:"start_time"` // ISO datetime
	EndTime       string        `json:"end_time"`
	TotalPrice    float64       `json:"total_price"` // tính một lần lúc tạo, không tính lại khi giá spot đổi
	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	CreatedAt     time.Time     `json:"created_at"`
}

type CreateBookingDTO struct {
	ParkingSpotID string `json:"parking_spot_id" binding:"required"`
	StartTime     string `json:"start_time" binding:"required"`
	EndTime       string `json:"end_time" binding:"required"`
}
