package store

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"stagelink/models"
)

// Seed loads the demo dataset. Called once at startup; a restart therefore
// resets the marketplace to this state.
func (s *Store) Seed(ctx context.Context) error {
	now := time.Now()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []models.User{
		{UserID: "u-priya", Name: "Priya Nair", Email: "priya@example.com", PasswordHash: string(hash), Role: models.RoleClient, Location: "Mumbai", CreatedAt: now, UpdatedAt: now},
		{UserID: "u-arjun", Name: "Arjun Rao", Email: "arjun@example.com", PasswordHash: string(hash), Role: models.RoleArtist, Location: "Bengaluru", CreatedAt: now, UpdatedAt: now},
		{UserID: "u-meera", Name: "Meera Iyer", Email: "meera@example.com", PasswordHash: string(hash), Role: models.RoleArtist, Location: "Chennai", CreatedAt: now, UpdatedAt: now},
		{UserID: "u-kabir", Name: "Kabir Shah", Email: "kabir@example.com", PasswordHash: string(hash), Role: models.RoleArtist, Location: "Delhi", CreatedAt: now, UpdatedAt: now},
	}
	for _, u := range users {
		if _, err := s.Users.Create(ctx, u); err != nil {
			return err
		}
	}

	artists := []models.Artist{
		{
			ArtistID: "a-arjun", UserID: "u-arjun",
			Name: "Arjun Rao Trio", Specialty: "Jazz fusion band", Category: "Music",
			Genres: []string{"jazz", "fusion"}, Tags: []string{"live band", "wedding"},
			Languages: []string{"English", "Kannada"},
			Location:  "Bengaluru", Price: 15000, PriceUnit: models.PerEvent,
			Availability: models.Available, Rating: 4.9, Reviews: 132, Featured: true,
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ArtistID: "a-meera", UserID: "u-meera",
			Name: "Meera Iyer", Specialty: "Bharatanatyam dancer", Category: "Dance",
			Genres: []string{"classical"}, Tags: []string{"solo", "corporate"},
			Languages: []string{"Tamil", "English"},
			Location:  "Chennai", Price: 12000, PriceUnit: models.PerEvent,
			Availability: models.Busy, Rating: 4.8, Reviews: 87,
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ArtistID: "a-kabir", UserID: "u-kabir",
			Name: "DJ Kabir", Specialty: "Club and wedding DJ", Category: "DJ",
			Genres: []string{"edm", "bollywood"}, Tags: []string{"wedding", "club night"},
			Languages: []string{"Hindi", "English"},
			Location:  "Delhi", Price: 20000, PriceUnit: models.PerDay,
			Availability: models.Available, Rating: 4.9, Reviews: 210,
			CreatedAt: now, UpdatedAt: now,
		},
	}
	for _, a := range artists {
		if _, err := s.Artists.Create(ctx, a); err != nil {
			return err
		}
	}

	s.Categories.Replace(ctx, []models.Category{
		{CategoryID: "c-music", Name: "Music", Description: "Bands, vocalists and instrumentalists"},
		{CategoryID: "c-dance", Name: "Dance", Description: "Classical and contemporary dancers"},
		{CategoryID: "c-dj", Name: "DJ", Description: "DJs for clubs, weddings and parties"},
		{CategoryID: "c-comedy", Name: "Comedy", Description: "Stand-up and improv performers"},
		{CategoryID: "c-magic", Name: "Magic", Description: "Magicians and illusionists"},
	})

	return nil
}
