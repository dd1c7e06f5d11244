package store

import (
	"context"
	"sync"

	"stagelink/models"
)

type ReviewStore struct {
	mu      sync.RWMutex
	reviews []models.Review
}

func (s *ReviewStore) Add(_ context.Context, r models.Review) (models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reviews = append(s.reviews, r)
	return r, nil
}

func (s *ReviewStore) ListByArtist(_ context.Context, artistID string) []models.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Review{}
	for i := range s.reviews {
		if s.reviews[i].ArtistID == artistID {
			out = append(out, s.reviews[i])
		}
	}
	return out
}

func (s *ReviewStore) DeleteByClient(_ context.Context, clientID string) {
	s.deleteWhere(func(r models.Review) bool { return r.ClientID == clientID })
}

func (s *ReviewStore) DeleteByArtist(_ context.Context, artistID string) {
	s.deleteWhere(func(r models.Review) bool { return r.ArtistID == artistID })
}

func (s *ReviewStore) deleteWhere(match func(models.Review) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.reviews[:0]
	for _, r := range s.reviews {
		if !match(r) {
			kept = append(kept, r)
		}
	}
	s.reviews = kept
}
