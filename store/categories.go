package store

import (
	"context"
	"sync"

	"stagelink/models"
)

type CategoryStore struct {
	mu         sync.RWMutex
	categories []models.Category
}

func (s *CategoryStore) List(_ context.Context) []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *CategoryStore) Replace(_ context.Context, categories []models.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.categories = make([]models.Category, len(categories))
	copy(s.categories, categories)
}
