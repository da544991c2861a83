package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"nexlot/internal/domain"
	"nexlot/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService là nơi duy nhất nắm "ai đang dùng app": tối đa một User
// authenticated tại một thời điểm, được persist qua SessionRepository.
type AuthService struct {
	mu            sync.Mutex
	currentUser   *domain.User
	userRepo      repository.UserRepository
	sessionRepo   repository.SessionRepository
	jwtSecret     string
	jwtExpiration time.Duration
}

func NewAuthService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository,
	jwtSecret string, jwtExpiration time.Duration) *AuthService {
	s := &AuthService{
		userRepo:      userRepo,
		sessionRepo:   sessionRepo,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
	// Khôi phục phiên trước đó nếu có; thiếu hoặc hỏng = anonymous
	user, err := sessionRepo.Load()
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Printf("AuthService: không khôi phục được phiên: %v", err)
		}
		return s
	}
	s.currentUser = user
	log.Printf("AuthService: đã khôi phục phiên của '%s'", user.Email)
	return s
}

// Login là mock: chấp nhận mọi credential không rỗng và tạo User mới với
// role vehicle_owner. Backend auth thật sẽ thay phần này bằng kiểm tra
// credential và trả về ErrInvalidCredentials khi không khớp.
func (s *AuthService) Login(ctx context.Context, dto domain.LoginDTO) (*domain.AuthResponseDTO, error) {
	if dto.Email == "" || dto.Password == "" {
		return nil, fmt.Errorf("%w: cần email và mật khẩu", ErrValidation)
	}

	user := &domain.User{
		ID:        "user_" + uuid.NewString(),
		Email:     dto.Email,
		UserType:  domain.UserTypeVehicleOwner,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.setSession(user); err != nil {
		return nil, err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &domain.AuthResponseDTO{Token: token, User: user}, nil
}

func (s *AuthService) Signup(ctx context.Context, dto domain.SignupDTO) (*domain.AuthResponseDTO, error) {
	if dto.Email == "" || dto.Password == "" {
		return nil, fmt.Errorf("%w: cần email và mật khẩu", ErrValidation)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("lỗi hash mật khẩu: %w", err)
	}

	user := &domain.User{
		ID:        "user_" + uuid.NewString(),
		Email:     dto.Email,
		Password:  string(hashedPassword),
		UserType:  domain.UserType(dto.UserType),
		CreatedAt: time.Now().UTC(),
	}

	createdUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("lỗi khi tạo người dùng: %w", err)
	}
	createdUser.Password = "" // Không giữ hash trong phiên

	if err := s.setSession(createdUser); err != nil {
		return nil, err
	}

	token, err := s.issueToken(createdUser)
	if err != nil {
		return nil, err
	}
	return &domain.AuthResponseDTO{Token: token, User: createdUser}, nil
}

func (s *AuthService) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentUser = nil
	if err := s.sessionRepo.Clear(); err != nil {
		return fmt.Errorf("lỗi khi xóa phiên: %w", err)
	}
	return nil
}

// UpdateUserType đổi role của user hiện tại. Trả về lỗi khi anonymous,
// không bao giờ tự tạo phiên mới.
func (s *AuthService) UpdateUserType(userType domain.UserType) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentUser == nil {
		return nil, ErrNotAuthenticated
	}
	s.currentUser.UserType = userType
	if err := s.sessionRepo.Save(s.currentUser); err != nil {
		return nil, fmt.Errorf("lỗi khi lưu phiên: %w", err)
	}
	c := *s.currentUser
	return &c, nil
}

// CurrentUser trả về user của phiên hiện tại, nil khi anonymous.
func (s *AuthService) CurrentUser() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentUser == nil {
		return nil
	}
	c := *s.currentUser
	return &c
}

func (s *AuthService) setSession(user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentUser = user
	if err := s.sessionRepo.Save(user); err != nil {
		s.currentUser = nil
		return fmt.Errorf("lỗi khi lưu phiên: %w", err)
	}
	return nil
}

func (s *AuthService) issueToken(user *domain.User) (string, error) {
	expirationTime := time.Now().Add(s.jwtExpiration)
	claims := jwt.MapClaims{
		"sub":       user.ID,
		"exp":       expirationTime.Unix(),
		"iat":       time.Now().Unix(),
		"email":     user.Email,
		"user_type": string(user.UserType),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("lỗi tạo token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken dùng cho middleware
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("phương thức ký không mong muốn: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return nil, fmt.Errorf("%w: token có định dạng sai", ErrTokenInvalid)
		} else if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: token đã hết hạn", ErrTokenInvalid)
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	if !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
