package handler

import (
	"errors"
	"net/http"

	"nexlot/internal/api/middleware"
	"nexlot/internal/domain"
	"nexlot/internal/repository"
	"nexlot/internal/service"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	parkingService *service.ParkingService
}

func NewBookingHandler(ps *service.ParkingService) *BookingHandler {
	return &BookingHandler{parkingService: ps}
}

// POST /bookings
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var dto domain.CreateBookingDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString(middleware.UserIDKey)
	booking, err := h.parkingService.CreateBooking(c.Request.Context(), dto.ParkingSpotID, dto.StartTime, dto.EndTime, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy spot để đặt chỗ"})
			return
		}
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể đặt chỗ", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// GET /bookings - bookings của user hiện tại
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)
	bookings, err := h.parkingService.ListBookings(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi khi lấy danh sách booking"})
		return
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}
