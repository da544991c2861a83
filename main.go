package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nexlot/internal/api"
	"nexlot/internal/api/handler"
	"nexlot/internal/api/middleware"
	"nexlot/internal/config"
	"nexlot/internal/repository"
	"nexlot/internal/repository/localstore"
	"nexlot/internal/repository/memory"
	"nexlot/internal/repository/postgresql"
	"nexlot/internal/service"

	awsgo_config "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()
	log.Println("Cấu hình đã được tải.")

	// 2. Initialize Repositories
	// Để trống DB_HOST để chạy với storage in-memory (mock catalog + booking)
	var userRepo repository.UserRepository
	var spotRepo repository.ParkingSpotRepository
	var bookingRepo repository.BookingRepository

	if cfg.DBHost == "" {
		log.Println("DB_HOST chưa được cấu hình. Dùng storage in-memory với catalog mẫu.")
		userRepo = memory.NewMemUserRepository(cfg.MockLatency)
		spotRepo = memory.NewMemParkingSpotRepository(cfg.MockLatency)
		bookingRepo = memory.NewMemBookingRepository(cfg.MockLatency)
	} else {
		db, err := postgresql.NewDB(cfg)
		if err != nil {
			log.Fatalf("Không thể kết nối database: %v", err)
		}
		defer db.Close()
		log.Println("Đã kết nối database thành công!")

		userRepo = postgresql.NewPgUserRepository(db)
		spotRepo = postgresql.NewPgParkingSpotRepository(db)
		bookingRepo = postgresql.NewPgBookingRepository(db)
	}

	sessionRepo := localstore.NewFileSessionRepository(cfg.SessionFile)

	// 3. Khởi tạo Rekognition client nếu được bật
	var rekognitionClient *rekognition.Client
	if cfg.SafetyProvider == "rekognition" {
		awsSDKCfg, err := awsgo_config.LoadDefaultConfig(context.TODO(), awsgo_config.WithRegion(cfg.AWSRegion))
		if err != nil {
			log.Fatalf("Không thể tải AWS SDK config: %v", err)
		}
		rekognitionClient = rekognition.NewFromConfig(awsSDKCfg)
		log.Println("Đã khởi tạo Rekognition client cho region:", cfg.AWSRegion)
	} else {
		log.Println("SAFETY_PROVIDER=mock. Phân tích ảnh dùng mock generator.")
	}

	// init websocket manager
	webSocketManager := handler.NewWebSocketManager()
	go webSocketManager.Start()
	log.Println("WebSocket Manager đã được khởi động.")

	// 4. Initialize Services
	authService := service.NewAuthService(userRepo, sessionRepo, cfg.JWTSecret, cfg.JWTExpiration)
	parkingService := service.NewParkingService(spotRepo, bookingRepo, webSocketManager)
	safetyService := service.NewSafetyService(rekognitionClient)

	// 5. Initialize Auth Middleware
	authMiddleware := middleware.NewAuthMiddleware(authService)

	// 6. Setup HTTP Router
	router := api.SetupRouter(authService, parkingService, safetyService, authMiddleware, webSocketManager)

	// 7. Start HTTP Server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server đang chạy trên port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Lỗi ListenAndServe(): %v", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Đang tắt server...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server buộc phải tắt: %v", err)
	}

	log.Println("Server đã tắt.")
}
