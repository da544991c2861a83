// Package memory chứa các repository in-memory dùng làm mock backend mặc định.
// Mỗi thao tác chờ một độ trễ giả lập (mô phỏng network) trước khi trả về.
package memory

import (
	"context"
	"time"

	"nexlot/internal/domain"
)

// wait giả lập độ trễ network; hủy sớm nếu context bị cancel.
func wait(ctx context.Context, latency time.Duration) error {
	if latency <= 0 {
		return nil
	}
	select {
	case <-time.After(latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func cloneSpot(spot *domain.ParkingSpot) *domain.ParkingSpot {
	c := *spot
	c.Images = append([]string(nil), spot.Images...)
	c.SafetyLabels = append([]string(nil), spot.SafetyLabels...)
	c.Amenities = append([]string(nil), spot.Amenities...)
	return &c
}
