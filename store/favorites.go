package store

import (
	"context"
	"sync"

	"stagelink/models"
)

type FavoriteStore struct {
	mu        sync.RWMutex
	favorites []models.Favorite
}

// Add inserts the pair. Duplicate (userId, artistId) pairs are rejected.
func (s *FavoriteStore) Add(_ context.Context, f models.Favorite) (models.Favorite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.favorites {
		if s.favorites[i].UserID == f.UserID && s.favorites[i].ArtistID == f.ArtistID {
			return models.Favorite{}, ErrConflict
		}
	}
	s.favorites = append(s.favorites, f)
	return f, nil
}

func (s *FavoriteStore) Remove(_ context.Context, userID, artistID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.favorites {
		if s.favorites[i].UserID == userID && s.favorites[i].ArtistID == artistID {
			s.favorites = append(s.favorites[:i], s.favorites[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *FavoriteStore) ListByUser(_ context.Context, userID string) []models.Favorite {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Favorite{}
	for i := range s.favorites {
		if s.favorites[i].UserID == userID {
			out = append(out, s.favorites[i])
		}
	}
	return out
}

func (s *FavoriteStore) DeleteByUser(_ context.Context, userID string) {
	s.deleteWhere(func(f models.Favorite) bool { return f.UserID == userID })
}

func (s *FavoriteStore) DeleteByArtist(_ context.Context, artistID string) {
	s.deleteWhere(func(f models.Favorite) bool { return f.ArtistID == artistID })
}

func (s *FavoriteStore) deleteWhere(match func(models.Favorite) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.favorites[:0]
	for _, f := range s.favorites {
		if !match(f) {
			kept = append(kept, f)
		}
	}
	s.favorites = kept
}
