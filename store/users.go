package store

import (
	"context"
	"strings"
	"sync"

	"stagelink/models"
)

type UserStore struct {
	mu    sync.RWMutex
	users []models.User
}

// Create inserts a user. Email uniqueness is case-insensitive.
func (s *UserStore) Create(_ context.Context, u models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, u.Email) {
			return models.User{}, ErrConflict
		}
	}
	s.users = append(s.users, u)
	return u, nil
}

func (s *UserStore) GetByID(_ context.Context, id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].UserID == id {
			return s.users[i], nil
		}
	}
	return models.User{}, ErrNotFound
}

func (s *UserStore) GetByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, email) {
			return s.users[i], nil
		}
	}
	return models.User{}, ErrNotFound
}

// Update applies a mutation under the collection lock, so the find-then-mutate
// sequence stays atomic with respect to concurrent requests.
func (s *UserStore) Update(_ context.Context, id string, apply func(*models.User)) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].UserID == id {
			apply(&s.users[i])
			return s.users[i], nil
		}
	}
	return models.User{}, ErrNotFound
}

func (s *UserStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].UserID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
