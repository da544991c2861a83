package handler

import (
	"errors"
	"net/http"
	"strconv"

	"nexlot/internal/api/middleware"
	"nexlot/internal/domain"
	"nexlot/internal/repository"
	"nexlot/internal/service"

	"github.com/gin-gonic/gin"
)

type ParkingSpotHandler struct {
	parkingService *service.ParkingService
}

func NewParkingSpotHandler(ps *service.ParkingService) *ParkingSpotHandler {
	return &ParkingSpotHandler{parkingService: ps}
}

// GET /parking-spots?owner=<id>
func (h *ParkingSpotHandler) ListSpots(c *gin.Context) {
	ownerID := c.Query("owner")

	var (
		spots []domain.ParkingSpot
		err   error
	)
	if ownerID != "" {
		spots, err = h.parkingService.ListSpotsByOwner(c.Request.Context(), ownerID)
	} else {
		spots, err = h.parkingService.ListSpots(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi khi lấy danh sách spot"})
		return
	}
	if spots == nil {
		spots = []domain.ParkingSpot{}
	}
	c.JSON(http.StatusOK, spots)
}

// GET /parking-spots/nearby?lat=..&lon=..&radius_km=..
func (h *ParkingSpotHandler) NearbySpots(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lon, errLon := strconv.ParseFloat(c.Query("lon"), 64)
	if errLat != nil || errLon != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tọa độ lat/lon không hợp lệ"})
		return
	}
	radiusKm := 5.0 // bán kính mặc định
	if radiusStr := c.Query("radius_km"); radiusStr != "" {
		var err error
		radiusKm, err = strconv.ParseFloat(radiusStr, 64)
		if err != nil || radiusKm < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Bán kính không hợp lệ"})
			return
		}
	}

	spots, err := h.parkingService.NearbySpots(c.Request.Context(), lat, lon, radiusKm)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi khi lọc spot theo bán kính"})
		return
	}
	if spots == nil {
		spots = []domain.ParkingSpot{}
	}
	c.JSON(http.StatusOK, spots)
}

// GET /parking-spots/:id
func (h *ParkingSpotHandler) GetSpotByID(c *gin.Context) {
	spot, err := h.parkingService.GetSpot(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy spot"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi khi lấy thông tin spot"})
		return
	}
	c.JSON(http.StatusOK, spot)
}

// POST /parking-spots
func (h *ParkingSpotHandler) CreateSpot(c *gin.Context) {
	var dto domain.CreateParkingSpotDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ownerID := c.GetString(middleware.UserIDKey)
	spot, err := h.parkingService.CreateSpot(c.Request.Context(), ownerID, dto)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tạo spot", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, spot)
}

// PATCH /parking-spots/:id
func (h *ParkingSpotHandler) UpdateSpot(c *gin.Context) {
	var dto domain.UpdateParkingSpotDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	spot, err := h.parkingService.UpdateSpot(c.Request.Context(), c.Param("id"), dto)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy spot để cập nhật"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể cập nhật spot", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, spot)
}

// DELETE /parking-spots/:id
func (h *ParkingSpotHandler) DeleteSpot(c *gin.Context) {
	err := h.parkingService.DeleteSpot(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy spot để xóa"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể xóa spot", "details": err.Error()})
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// PUT /parking-spots/selection
func (h *ParkingSpotHandler) SelectSpot(c *gin.Context) {
	var dto domain.SelectSpotDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.parkingService.SelectSpot(c.Request.Context(), dto.SpotID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể chọn spot", "details": err.Error()})
		return
	}

	selected := h.parkingService.SelectedSpot()
	if selected == nil {
		c.JSON(http.StatusOK, gin.H{"selected": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"selected": selected})
}

// GET /parking-spots/selection
func (h *ParkingSpotHandler) GetSelectedSpot(c *gin.Context) {
	selected := h.parkingService.SelectedSpot()
	if selected == nil {
		c.JSON(http.StatusOK, gin.H{"selected": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"selected": selected})
}
