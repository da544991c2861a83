// Package pricing quy đổi khoảng thời gian booking thành số giờ và tổng giá.
package pricing

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidTimestamp = errors.New("timestamp không hợp lệ")

// Các layout được chấp nhận cho timestamp của booking
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func parseTime(value string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: '%s'", ErrInvalidTimestamp, value)
}

// DurationHours trả về (end - start) tính theo giờ. Có thể âm nếu end trước
// start; không clamp ở đây. Timestamp không parse được là lỗi, không bao giờ
// trả về NaN.
func DurationHours(startISO, endISO string) (float64, error) {
	start, err := parseTime(startISO)
	if err != nil {
		return 0, err
	}
	end, err := parseTime(endISO)
	if err != nil {
		return 0, err
	}
	return end.Sub(start).Hours(), nil
}

// TotalPrice trả về hourlyRate × max(0, số giờ). Khoảng thời gian âm luôn
// cho giá 0, không bao giờ là số tiền âm.
func TotalPrice(hourlyRate float64, startISO, endISO string) (float64, error) {
	hours, err := DurationHours(startISO, endISO)
	if err != nil {
		return 0, err
	}
	if hours < 0 {
		hours = 0
	}
	return hourlyRate * hours, nil
}
