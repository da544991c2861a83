package handler

import (
	"encoding/base64"
	"log"
	"net/http"

	"nexlot/internal/domain"
	"nexlot/internal/service"

	"github.com/gin-gonic/gin"
)

type SafetyHandler struct {
	safetyService *service.SafetyService
}

func NewSafetyHandler(safetyService *service.SafetyService) *SafetyHandler {
	return &SafetyHandler{safetyService: safetyService}
}

// POST /api/v1/safety/analyze-image
func (h *SafetyHandler) AnalyzeImage(c *gin.Context) {
	var req domain.SafetyAnalysisRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payload không hợp lệ: " + err.Error()})
		return
	}

	// Giải mã ảnh base64
	imageBytes, err := base64.StdEncoding.DecodeString(req.ImageBase64)
	if err != nil {
		log.Printf("SafetyHandler: Lỗi giải mã ảnh base64: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dữ liệu ảnh không hợp lệ"})
		return
	}

	if len(imageBytes) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dữ liệu ảnh rỗng"})
		return
	}

	result, err := h.safetyService.AnalyzeImage(c.Request.Context(), imageBytes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi phân tích ảnh", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
