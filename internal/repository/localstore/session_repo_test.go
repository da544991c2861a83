package localstore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"nexlot/internal/domain"
	"nexlot/internal/repository"
)

func TestFileSessionRepository_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	repo := NewFileSessionRepository(path)

	user := &domain.User{
		ID:        "user_abc",
		Email:     "a@example.com",
		UserType:  domain.UserTypeVehicleOwner,
		CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	if err := repo.Save(user); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := repo.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.ID != user.ID || loaded.Email != user.Email || loaded.UserType != user.UserType {
		t.Errorf("user load về khác user đã save: %+v vs %+v", loaded, user)
	}
	if !loaded.CreatedAt.Equal(user.CreatedAt) {
		t.Errorf("created_at = %v, muốn %v", loaded.CreatedAt, user.CreatedAt)
	}
}

func TestFileSessionRepository_MissingFile(t *testing.T) {
	repo := NewFileSessionRepository(filepath.Join(t.TempDir(), "không_tồn_tại.json"))
	_, err := repo.Load()
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("file thiếu phải là ErrNotFound, got %v", err)
	}
}

func TestFileSessionRepository_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{đây không phải json"), 0o600); err != nil {
		t.Fatal(err)
	}

	repo := NewFileSessionRepository(path)
	// File hỏng = anonymous, không bao giờ là lỗi fatal
	_, err := repo.Load()
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("file hỏng phải xử lý như chưa có phiên, got %v", err)
	}

	// Save sau đó vẫn hoạt động bình thường
	user := &domain.User{ID: "user_x", Email: "x@example.com", UserType: domain.UserTypeSpaceOwner}
	if err := repo.Save(user); err != nil {
		t.Fatalf("Save sau file hỏng: %v", err)
	}
	loaded, err := repo.Load()
	if err != nil || loaded.ID != "user_x" {
		t.Errorf("Load sau khi ghi đè file hỏng: %v, %+v", err, loaded)
	}
}

func TestFileSessionRepository_Clear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	repo := NewFileSessionRepository(path)

	user := &domain.User{ID: "user_x", Email: "x@example.com", UserType: domain.UserTypeVehicleOwner}
	if err := repo.Save(user); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := repo.Load(); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Load sau Clear phải là ErrNotFound, got %v", err)
	}

	// Clear khi chưa có gì cũng không lỗi
	if err := repo.Clear(); err != nil {
		t.Errorf("Clear lần hai: %v", err)
	}
}
