package service

import (
	"context"
	"fmt"
	"log"
	"math/rand"

	"nexlot/internal/domain"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

// SafetyService chấm điểm an toàn 0-5 cho ảnh của một spot.
// Không có Rekognition client thì dùng mock generator (score 2-5 với
// bộ label cố định), đủ cho môi trường dev không có AWS credential.
type SafetyService struct {
	rekognitionClient *rekognition.Client
}

func NewSafetyService(rekClient *rekognition.Client) *SafetyService {
	return &SafetyService{rekognitionClient: rekClient}
}

func (s *SafetyService) AnalyzeImage(ctx context.Context, imageBytes []byte) (*domain.SafetyAnalysisResult, error) {
	if s.rekognitionClient == nil {
		return s.mockAnalysis(), nil
	}
	return s.rekognitionAnalysis(ctx, imageBytes)
}

// mockAnalysis trả về kết quả ngẫu nhiên trong khoảng cố định, giữ nguyên
// bộ từ vựng label của frontend demo.
func (s *SafetyService) mockAnalysis() *domain.SafetyAnalysisResult {
	result := &domain.SafetyAnalysisResult{
		Score:  rand.Float64()*3 + 2, // 2.0 - 5.0
		Labels: []string{"Well-lit", "Residential"},
	}

	if result.Score > 4 {
		result.Labels = append(result.Labels, "Secured")
	}

	if rand.Float64() > 0.5 {
		result.Labels = append(result.Labels, "Indoor")
	} else {
		result.Labels = append(result.Labels, "Outdoor")
	}
	return result
}

// Ánh xạ label của Rekognition sang label/điểm cộng an toàn của marketplace
var safetySignals = []struct {
	rekLabel string
	tag      string
	bonus    float64
}{
	{"Lighting", "Well-lit", 0.6},
	{"Security", "Guarded", 0.5},
	{"Person", "Guarded", 0.3},
	{"Garage", "Indoor", 0.4},
	{"Indoors", "Indoor", 0.4},
	{"Outdoors", "Outdoor", 0.0},
	{"Fence", "Secured", 0.3},
	{"Gate", "Secured", 0.3},
	{"Neighborhood", "Residential", 0.2},
}

func (s *SafetyService) rekognitionAnalysis(ctx context.Context, imageBytes []byte) (*domain.SafetyAnalysisResult, error) {
	input := &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: imageBytes},
		MaxLabels:     aws.Int32(20),
		MinConfidence: aws.Float32(70),
	}

	log.Println("SafetyService: Đang gọi Rekognition DetectLabels...")
	output, err := s.rekognitionClient.DetectLabels(ctx, input)
	if err != nil {
		log.Printf("SafetyService: Lỗi khi gọi Rekognition DetectLabels: %v", err)
		return nil, fmt.Errorf("lỗi Rekognition: %w", err)
	}

	score := 2.5 // điểm nền cho spot không có tín hiệu nào
	seen := make(map[string]bool)
	var labels []string

	for _, detected := range output.Labels {
		if detected.Name == nil {
			continue
		}
		for _, signal := range safetySignals {
			if *detected.Name != signal.rekLabel || seen[signal.tag] {
				continue
			}
			seen[signal.tag] = true
			labels = append(labels, signal.tag)
			score += signal.bonus
		}
	}

	if score > 5 {
		score = 5
	}

	log.Printf("SafetyService: Rekognition trả về %d label, điểm an toàn %.1f", len(output.Labels), score)
	return &domain.SafetyAnalysisResult{Score: score, Labels: labels}, nil
}
