// Package geo tính khoảng cách great-circle và lọc spot theo bán kính.
package geo

import (
	"math"

	"nexlot/internal/domain"
)

// Bán kính Trái Đất trung bình (km)
const earthRadiusKm = 6371

// DistanceKm tính khoảng cách Haversine giữa hai tọa độ (decimal degrees).
// Không validate range đầu vào; caller phải truyền độ hợp lệ.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// Nearby trả về các spot nằm trong bán kính radiusKm quanh tâm, giữ nguyên
// thứ tự đầu vào. Hàm thuần, đồng bộ, không bao giờ fail.
func Nearby(spots []domain.ParkingSpot, centerLat, centerLon, radiusKm float64) []domain.ParkingSpot {
	var result []domain.ParkingSpot
	for _, spot := range spots {
		if DistanceKm(centerLat, centerLon, spot.Latitude, spot.Longitude) <= radiusKm {
			result = append(result, spot)
		}
	}
	return result
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
