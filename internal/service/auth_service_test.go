package service

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"nexlot/internal/domain"
	"nexlot/internal/repository"
	"nexlot/internal/repository/localstore"
	"nexlot/internal/repository/memory"
)

func newTestAuthService(t *testing.T) (*AuthService, repository.UserRepository) {
	t.Helper()
	sessionFile := filepath.Join(t.TempDir(), "session.json")
	userRepo := memory.NewMemUserRepository(0)
	s := NewAuthService(userRepo, localstore.NewFileSessionRepository(sessionFile), "test-secret", time.Hour)
	return s, userRepo
}

func TestLogin_EmptyCredentials(t *testing.T) {
	s, _ := newTestAuthService(t)
	_, err := s.Login(context.Background(), domain.LoginDTO{Email: "", Password: ""})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("muốn ErrValidation, got %v", err)
	}
	if s.CurrentUser() != nil {
		t.Error("login thất bại không được tạo phiên")
	}
}

func TestLogin_FabricatesVehicleOwner(t *testing.T) {
	s, _ := newTestAuthService(t)
	resp, err := s.Login(context.Background(), domain.LoginDTO{Email: "a@example.com", Password: "pass"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Token == "" {
		t.Error("login phải trả về token")
	}
	if resp.User.UserType != domain.UserTypeVehicleOwner {
		t.Errorf("user_type = %s, muốn vehicle_owner", resp.User.UserType)
	}
	if !strings.HasPrefix(resp.User.ID, "user_") {
		t.Errorf("id phải có prefix user_, got %s", resp.User.ID)
	}

	current := s.CurrentUser()
	if current == nil || current.ID != resp.User.ID {
		t.Errorf("phiên hiện tại phải là user vừa login, got %+v", current)
	}
}

func TestSession_RoundTrip(t *testing.T) {
	sessionFile := filepath.Join(t.TempDir(), "session.json")
	userRepo := memory.NewMemUserRepository(0)

	s1 := NewAuthService(userRepo, localstore.NewFileSessionRepository(sessionFile), "test-secret", time.Hour)
	resp, err := s1.Login(context.Background(), domain.LoginDTO{Email: "a@example.com", Password: "pass"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	// Giả lập restart: service mới đọc lại cùng file phiên
	s2 := NewAuthService(userRepo, localstore.NewFileSessionRepository(sessionFile), "test-secret", time.Hour)
	restored := s2.CurrentUser()
	if restored == nil {
		t.Fatal("phiên phải được khôi phục sau restart")
	}
	if restored.ID != resp.User.ID || restored.Email != resp.User.Email || restored.UserType != resp.User.UserType {
		t.Errorf("user khôi phục khác user đã login: %+v vs %+v", restored, resp.User)
	}
}

func TestLogout_ClearsPersistedSession(t *testing.T) {
	sessionFile := filepath.Join(t.TempDir(), "session.json")
	userRepo := memory.NewMemUserRepository(0)

	s1 := NewAuthService(userRepo, localstore.NewFileSessionRepository(sessionFile), "test-secret", time.Hour)
	if _, err := s1.Login(context.Background(), domain.LoginDTO{Email: "a@example.com", Password: "pass"}); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := s1.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if s1.CurrentUser() != nil {
		t.Error("logout phải xóa phiên trong memory")
	}

	s2 := NewAuthService(userRepo, localstore.NewFileSessionRepository(sessionFile), "test-secret", time.Hour)
	if s2.CurrentUser() != nil {
		t.Error("restart sau logout phải là anonymous")
	}
}

func TestSignup(t *testing.T) {
	s, userRepo := newTestAuthService(t)
	ctx := context.Background()

	resp, err := s.Signup(ctx, domain.SignupDTO{
		Email:    "host@example.com",
		Password: "secret123",
		UserType: "space_owner",
	})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if resp.User.UserType != domain.UserTypeSpaceOwner {
		t.Errorf("user_type = %s, muốn space_owner", resp.User.UserType)
	}

	// User phải được lưu vào repo, với password đã hash (không phải plaintext)
	stored, err := userRepo.FindByEmail(ctx, "host@example.com")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if stored.Password == "" || stored.Password == "secret123" {
		t.Error("password phải được hash trước khi lưu")
	}

	// Email trùng
	_, err = s.Signup(ctx, domain.SignupDTO{Email: "host@example.com", Password: "x12345", UserType: "vehicle_owner"})
	if !errors.Is(err, ErrUserAlreadyExists) {
		t.Errorf("muốn ErrUserAlreadyExists với email trùng, got %v", err)
	}
}

func TestSignup_EmptyFields(t *testing.T) {
	s, _ := newTestAuthService(t)
	_, err := s.Signup(context.Background(), domain.SignupDTO{Email: "", Password: "", UserType: "vehicle_owner"})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("muốn ErrValidation, got %v", err)
	}
}

func TestUpdateUserType(t *testing.T) {
	s, _ := newTestAuthService(t)

	// Anonymous: lỗi, không tự tạo phiên
	if _, err := s.UpdateUserType(domain.UserTypeSpaceOwner); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("muốn ErrNotAuthenticated khi anonymous, got %v", err)
	}

	if _, err := s.Login(context.Background(), domain.LoginDTO{Email: "a@example.com", Password: "pass"}); err != nil {
		t.Fatalf("Login: %v", err)
	}
	user, err := s.UpdateUserType(domain.UserTypeSpaceOwner)
	if err != nil {
		t.Fatalf("UpdateUserType: %v", err)
	}
	if user.UserType != domain.UserTypeSpaceOwner {
		t.Errorf("user_type = %s, muốn space_owner", user.UserType)
	}
	if current := s.CurrentUser(); current.UserType != domain.UserTypeSpaceOwner {
		t.Errorf("phiên hiện tại phải có role mới, got %s", current.UserType)
	}
}

func TestValidateToken(t *testing.T) {
	s, _ := newTestAuthService(t)
	resp, err := s.Login(context.Background(), domain.LoginDTO{Email: "a@example.com", Password: "pass"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	claims, err := s.ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims["sub"] != resp.User.ID {
		t.Errorf("claim sub = %v, muốn %s", claims["sub"], resp.User.ID)
	}
	if claims["user_type"] != string(domain.UserTypeVehicleOwner) {
		t.Errorf("claim user_type = %v, muốn vehicle_owner", claims["user_type"])
	}

	if _, err := s.ValidateToken("token.giả.mạo"); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("muốn ErrTokenInvalid với token hỏng, got %v", err)
	}
}
