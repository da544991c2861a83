package domain

import "time"

type MarketEventType string

const (
	MarketEventSpotCreated    MarketEventType = "spot_created"
	MarketEventSpotUpdated    MarketEventType = "spot_updated"
	MarketEventSpotDeleted    MarketEventType = "spot_deleted"
	MarketEventBookingCreated MarketEventType = "booking_created"
)

// MarketEventNotification - Event được gửi đến frontend qua WebSocket
// để client cập nhật catalog/bookings mà không cần refetch.
type MarketEventNotification struct {
	EventType MarketEventType `json:"event_type"`
	SpotID    string          `json:"spot_id,omitempty"`
	BookingID string          `json:"booking_id,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
	Message   string          `json:"message,omitempty"`
}
