package domain

import (
	"time"

	"gopkg.in/guregu/null.v4"
)

type ParkingSpot struct {
	ID            string     `json:"id"`
	OwnerID       string     `json:"owner_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Address       string     `json:"address"`
	Latitude      float64    `json:"latitude"`
	Longitude     float64    `json:"longitude"`
	HourlyRate    float64    `json:"hourly_rate"`
	DailyRate     null.Float `json:"daily_rate,omitempty"`
	Images        []string   `json:"images"`
	SafetyScore   float64    `json:"safety_score"` // 0.0 - 5.0, từ lần phân tích ảnh gần nhất
	SafetyLabels  []string   `json:"safety_labels"`
	AvailableFrom string     `json:"available_from"` // "HH:MM", không gắn với ngày cụ thể
	AvailableTo   string     `json:"available_to"`
	Amenities     []string   `json:"amenities"`
	IsActive      bool       `json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
}

type CreateParkingSpotDTO struct {
	Title         string   `json:"title" binding:"required"`
	Description   string   `json:"description"`
	Address       string   `json:"address" binding:"required"`
	Latitude      float64  `json:"latitude" binding:"required"`
	Longitude     float64  `json:"longitude" binding:"required"`
	HourlyRate    float64  `json:"hourly_rate" binding:"required,gte=0"`
	DailyRate     *float64 `json:"daily_rate"`
	Images        []string `json:"images" binding:"required"`
	AvailableFrom string   `json:"available_from" binding:"required"`
	AvailableTo   string   `json:"available_to" binding:"required"`
	Amenities     []string `json:"amenities"`
	SafetyScore   float64  `json:"safety_score"`
	SafetyLabels  []string `json:"safety_labels"`
}

// UpdateParkingSpotDTO dùng cho partial update: chỉ các field khác nil được merge
type UpdateParkingSpotDTO struct {
	Title         *string   `json:"title"`
	Description   *string   `json:"description"`
	Address       *string   `json:"address"`
	Latitude      *float64  `json:"latitude"`
	Longitude     *float64  `json:"longitude"`
	HourlyRate    *float64  `json:"hourly_rate"`
	DailyRate     *float64  `json:"daily_rate"`
	Images        *[]string `json:"images"`
	SafetyScore   *float64  `json:"safety_score"`
	SafetyLabels  *[]string `json:"safety_labels"`
	AvailableFrom *string   `json:"available_from"`
	AvailableTo   *string   `json:"available_to"`
	Amenities     *[]string `json:"amenities"`
	IsActive      *bool     `json:"is_active"`
}

type SelectSpotDTO struct {
	SpotID string `json:"spot_id"` // rỗng = bỏ chọn
}
