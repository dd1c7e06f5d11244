package models

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// Booking is a client's request to engage an artist for an event.
// Status transitions are driven entirely by the callers; the store does not
// enforce a state machine.
type Booking struct {
	BookingID string        `json:"bookingId"`
	ClientID  string        `json:"clientId"`
	ArtistID  string        `json:"artistId"`
	EventDate string        `json:"eventDate"`
	EventType string        `json:"eventType"`
	Duration  string        `json:"duration,omitempty"`
	Location  string        `json:"location,omitempty"`
	Budget    float64       `json:"budget,omitempty"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// Favorite is a user's saved reference to an artist. The (UserID, ArtistID)
// pair is unique.
type Favorite struct {
	FavoriteID string    `json:"favoriteId"`
	UserID     string    `json:"userId"`
	ArtistID   string    `json:"artistId"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Review struct {
	ReviewID  string    `json:"reviewId"`
	ArtistID  string    `json:"artistId"`
	ClientID  string    `json:"clientId"`
	BookingID string    `json:"bookingId,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
