// Package store holds every entity collection for the process lifetime.
// Collections are plain slices guarded by a mutex per collection; restart
// resets everything to the seeded dataset.
package store

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

type Store struct {
	Users      *UserStore
	Artists    *ArtistStore
	Bookings   *BookingStore
	Favorites  *FavoriteStore
	Reviews    *ReviewStore
	Categories *CategoryStore
}

func New() *Store {
	return &Store{
		Users:      &UserStore{},
		Artists:    &ArtistStore{},
		Bookings:   &BookingStore{},
		Favorites:  &FavoriteStore{},
		Reviews:    &ReviewStore{},
		Categories: &CategoryStore{},
	}
}

// DeleteUserCascade removes a user together with everything hanging off it:
// the artist profile (if any), bookings on either side, favorites, reviews.
func (s *Store) DeleteUserCascade(ctx context.Context, userID string) error {
	if err := s.Users.Delete(ctx, userID); err != nil {
		return err
	}
	if artistID, ok := s.Artists.DeleteByUserID(ctx, userID); ok {
		s.Bookings.DeleteByArtist(ctx, artistID)
		s.Favorites.DeleteByArtist(ctx, artistID)
		s.Reviews.DeleteByArtist(ctx, artistID)
	}
	s.Bookings.DeleteByClient(ctx, userID)
	s.Favorites.DeleteByUser(ctx, userID)
	s.Reviews.DeleteByClient(ctx, userID)
	return nil
}
