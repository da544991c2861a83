package memory

import (
	"context"
	"sync"
	"time"

	"nexlot/internal/domain"
	"nexlot/internal/repository"
)

type memUserRepository struct {
	mu      sync.Mutex
	users   map[string]*domain.User // key = user ID
	latency time.Duration
}

func NewMemUserRepository(latency time.Duration) repository.UserRepository {
	return &memUserRepository{
		users:   make(map[string]*domain.User),
		latency: latency,
	}
}

func (r *memUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := wait(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return nil, repository.ErrDuplicateEntry
		}
	}
	c := *user
	r.users[user.ID] = &c
	out := c
	return &out, nil
}

func (r *memUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if err := wait(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			c := *user
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if err := wait(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c := *user
	return &c, nil
}
