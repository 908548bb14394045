package handler_test

// In-memory store fakes backing the handler tests. They implement the
// repository interfaces with the same sentinel-error contract as the MySQL
// implementations.

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/iliyamo/rock-catalog/internal/model"
	"github.com/iliyamo/rock-catalog/internal/repository"
	"github.com/iliyamo/rock-catalog/internal/utils"
)

type fakeUserStore struct {
	mu     sync.Mutex
	nextID uint64
	users  map[string]*model.User // keyed by normalized email
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*model.User{}}
}

func (s *fakeUserStore) Create(_ context.Context, email, password string, cost int) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	email = strings.ToLower(strings.TrimSpace(email))
	if _, ok := s.users[email]; ok {
		return 0, repository.ErrEmailExists
	}
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	s.nextID++
	now := time.Now()
	s.users[email] = &model.User{ID: s.nextID, Email: email, PasswordHash: hash, CreatedAt: now, UpdatedAt: now}
	return s.nextID, nil
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return u, nil
}

type fakeRockStore struct {
	mu        sync.Mutex
	nextID    uint64
	rocks     []*model.Rock
	createErr error // when set, Create fails with this error
}

func newFakeRockStore() *fakeRockStore { return &fakeRockStore{} }

func (s *fakeRockStore) ListByOwner(_ context.Context, ownerID uint64) ([]*model.Rock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*model.Rock{}
	// Insertion order is creation order; newest first.
	for i := len(s.rocks) - 1; i >= 0; i-- {
		if s.rocks[i].UserID == ownerID {
			out = append(out, s.rocks[i])
		}
	}
	return out, nil
}

func (s *fakeRockStore) Create(_ context.Context, r *model.Rock) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return s.createErr
	}
	s.nextID++
	r.ID = s.nextID
	now := time.Now()
	r.CreatedAt = now
	r.UpdatedAt = now
	s.rocks = append(s.rocks, r)
	return nil
}

func (s *fakeRockStore) DeleteByIDAndOwner(_ context.Context, id, ownerID uint64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.rocks {
		if r.ID == id && r.UserID == ownerID {
			s.rocks = append(s.rocks[:i], s.rocks[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
