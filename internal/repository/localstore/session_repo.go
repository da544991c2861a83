// Package localstore lưu phiên đăng nhập hiện tại vào một file JSON phẳng,
// đóng vai trò localStorage của client: một namespace cố định, ghi đè toàn bộ
// record mỗi lần thay đổi, xóa key khi logout.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"

	"nexlot/internal/domain"
	"nexlot/internal/repository"
)

const sessionKey = "nexlot_user"

type fileSessionRepository struct {
	mu   sync.Mutex
	path string
}

func NewFileSessionRepository(path string) repository.SessionRepository {
	return &fileSessionRepository{path: path}
}

// read trả về toàn bộ store; file thiếu hoặc hỏng được coi là store rỗng,
// không bao giờ là lỗi fatal.
func (r *fileSessionRepository) read() map[string]json.RawMessage {
	store := make(map[string]json.RawMessage)
	data, err := os.ReadFile(r.path)
	if err != nil {
		return store
	}
	if err := json.Unmarshal(data, &store); err != nil {
		log.Printf("SessionRepository: file phiên '%s' bị hỏng, coi như chưa đăng nhập: %v", r.path, err)
		return make(map[string]json.RawMessage)
	}
	return store
}

func (r *fileSessionRepository) write(store map[string]json.RawMessage) error {
	data, err := json.Marshal(store)
	if err != nil {
		return fmt.Errorf("SessionRepository.write: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o600); err != nil {
		return fmt.Errorf("SessionRepository.write: %w", err)
	}
	return nil
}

func (r *fileSessionRepository) Save(user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("SessionRepository.Save: %w", err)
	}
	store := r.read()
	store[sessionKey] = raw
	return r.write(store)
}

func (r *fileSessionRepository) Load() (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	store := r.read()
	raw, ok := store[sessionKey]
	if !ok {
		return nil, repository.ErrNotFound
	}
	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil {
		// Record hỏng: xử lý như chưa có phiên
		log.Printf("SessionRepository: record phiên bị hỏng, coi như chưa đăng nhập: %v", err)
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

func (r *fileSessionRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	store := r.read()
	delete(store, sessionKey)
	if len(store) == 0 {
		err := os.Remove(r.path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("SessionRepository.Clear: %w", err)
		}
		return nil
	}
	return r.write(store)
}
