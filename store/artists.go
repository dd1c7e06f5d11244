package store

import (
	"context"
	"slices"
	"sync"

	"stagelink/models"
)

type ArtistStore struct {
	mu      sync.RWMutex
	artists []models.Artist
}

// cloneArtist deep-copies the slice fields so a value handed out can never
// alias store state.
func cloneArtist(a models.Artist) models.Artist {
	a.Genres = slices.Clone(a.Genres)
	a.Tags = slices.Clone(a.Tags)
	a.Languages = slices.Clone(a.Languages)
	if a.Contact != nil {
		c := *a.Contact
		a.Contact = &c
	}
	return a
}

// Create inserts a profile. At most one artist per user.
func (s *ArtistStore) Create(_ context.Context, a models.Artist) (models.Artist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.artists {
		if s.artists[i].UserID == a.UserID {
			return models.Artist{}, ErrConflict
		}
	}
	s.artists = append(s.artists, cloneArtist(a))
	return a, nil
}

func (s *ArtistStore) GetByID(_ context.Context, id string) (models.Artist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.artists {
		if s.artists[i].ArtistID == id {
			return cloneArtist(s.artists[i]), nil
		}
	}
	return models.Artist{}, ErrNotFound
}

func (s *ArtistStore) GetByUserID(_ context.Context, userID string) (models.Artist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.artists {
		if s.artists[i].UserID == userID {
			return cloneArtist(s.artists[i]), nil
		}
	}
	return models.Artist{}, ErrNotFound
}

// Snapshot returns a copy of the whole collection in insertion order. The
// query engine filters and sorts this copy, never the source.
func (s *ArtistStore) Snapshot(_ context.Context) []models.Artist {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Artist, 0, len(s.artists))
	for i := range s.artists {
		out = append(out, cloneArtist(s.artists[i]))
	}
	return out
}

func (s *ArtistStore) Update(_ context.Context, id string, apply func(*models.Artist)) (models.Artist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.artists {
		if s.artists[i].ArtistID == id {
			apply(&s.artists[i])
			return cloneArtist(s.artists[i]), nil
		}
	}
	return models.Artist{}, ErrNotFound
}

func (s *ArtistStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.artists {
		if s.artists[i].ArtistID == id {
			s.artists = append(s.artists[:i], s.artists[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// DeleteByUserID removes the user's profile if one exists and reports the
// removed artist id for cascade cleanup.
func (s *ArtistStore) DeleteByUserID(_ context.Context, userID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.artists {
		if s.artists[i].UserID == userID {
			id := s.artists[i].ArtistID
			s.artists = append(s.artists[:i], s.artists[i+1:]...)
			return id, true
		}
	}
	return "", false
}
