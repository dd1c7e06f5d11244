package store

import (
	"context"
	"sync"

	"stagelink/models"
)

type BookingStore struct {
	mu       sync.RWMutex
	bookings []models.Booking
}

func (s *BookingStore) Create(_ context.Context, b models.Booking) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookings = append(s.bookings, b)
	return b, nil
}

func (s *BookingStore) GetByID(_ context.Context, id string) (models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.bookings {
		if s.bookings[i].BookingID == id {
			return s.bookings[i], nil
		}
	}
	return models.Booking{}, ErrNotFound
}

func (s *BookingStore) Update(_ context.Context, id string, apply func(*models.Booking)) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].BookingID == id {
			apply(&s.bookings[i])
			return s.bookings[i], nil
		}
	}
	return models.Booking{}, ErrNotFound
}

func (s *BookingStore) ListByClient(_ context.Context, clientID string) []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Booking{}
	for i := range s.bookings {
		if s.bookings[i].ClientID == clientID {
			out = append(out, s.bookings[i])
		}
	}
	return out
}

func (s *BookingStore) ListByArtist(_ context.Context, artistID string) []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Booking{}
	for i := range s.bookings {
		if s.bookings[i].ArtistID == artistID {
			out = append(out, s.bookings[i])
		}
	}
	return out
}

func (s *BookingStore) DeleteByClient(_ context.Context, clientID string) {
	s.deleteWhere(func(b models.Booking) bool { return b.ClientID == clientID })
}

func (s *BookingStore) DeleteByArtist(_ context.Context, artistID string) {
	s.deleteWhere(func(b models.Booking) bool { return b.ArtistID == artistID })
}

func (s *BookingStore) deleteWhere(match func(models.Booking) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.bookings[:0]
	for _, b := range s.bookings {
		if !match(b) {
			kept = append(kept, b)
		}
	}
	s.bookings = kept
}
