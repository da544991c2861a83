package domain

// SafetyAnalysisResult - kết quả phân tích ảnh, không lưu riêng trong DB.
// Caller dùng nó để điền safety_score/safety_labels trước khi tạo spot.
type SafetyAnalysisResult struct {
	Score  float64  `json:"score"` // 2.0 - 5.0 với mock generator
	Labels []string `json:"labels"`
}

// SafetyAnalysisRequestDTO dùng khi frontend gửi ảnh lên
type SafetyAnalysisRequestDTO struct {
	// Frontend gửi ảnh dưới dạng base64 encoded string
	ImageBase64 string `json:"image_base64" binding:"required"`
}
