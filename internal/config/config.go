package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string

	// Để trống DB_HOST để chạy với storage in-memory (mock)
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	AWSRegion      string
	SafetyProvider string // "mock" hoặc "rekognition"

	SessionFile   string        // file lưu phiên đăng nhập hiện tại (thay cho localStorage)
	MockLatency   time.Duration // độ trễ giả lập của storage in-memory
	JWTSecret     string
	JWTExpiration time.Duration
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Cảnh báo: Không thể tải file .env: %v", err)
	}

	dbPort, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	jwtExpHours, _ := strconv.Atoi(getEnv("JWT_EXPIRATION_HOURS", "24"))
	mockLatencyMs, _ := strconv.Atoi(getEnv("MOCK_LATENCY_MS", "1000"))

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),

		DBHost:     getEnv("DB_HOST", ""),
		DBPort:     dbPort,
		DBUser:     getEnv("DB_USER", "nexlot"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "nexlot_db"),
		DBSslMode:  getEnv("DB_SSLMODE", "disable"),

		AWSRegion:      getEnv("AWS_REGION", "ap-south-1"),
		SafetyProvider: getEnv("SAFETY_PROVIDER", "mock"),

		SessionFile: getEnv("SESSION_FILE", ".nexlot_session.json"),
		MockLatency: time.Duration(mockLatencyMs) * time.Millisecond,

		JWTSecret:     getEnv("JWT_SECRET", "nexlot-dev-secret-change-me"),
		JWTExpiration: time.Duration(jwtExpHours) * time.Hour,
	}
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
