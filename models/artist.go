package models

import "time"

type PriceUnit string

const (
	PerHour  PriceUnit = "per_hour"
	PerEvent PriceUnit = "per_event"
	PerDay   PriceUnit = "per_day"
)

func (p PriceUnit) Valid() bool {
	return p == PerHour || p == PerEvent || p == PerDay
}

type Availability string

const (
	Available   Availability = "available"
	Busy        Availability = "busy"
	Unavailable Availability = "unavailable"
)

func (a Availability) Valid() bool {
	return a == Available || a == Busy || a == Unavailable
}

// Contact is an optional block of direct contact details on a profile.
type Contact struct {
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Website string `json:"website,omitempty"`
}

// Artist is a performer profile owned by exactly one user with role=artist.
type Artist struct {
	ArtistID     string       `json:"artistId"`
	UserID       string       `json:"userId"`
	Name         string       `json:"name"`
	Specialty    string       `json:"specialty"`
	Category     string       `json:"category"`
	Bio          string       `json:"bio,omitempty"`
	Genres       []string     `json:"genres,omitempty"`
	Tags         []string     `json:"tags,omitempty"`
	Languages    []string     `json:"languages,omitempty"`
	Location     string       `json:"location"`
	Price        float64      `json:"price"`
	PriceUnit    PriceUnit    `json:"priceUnit"`
	Availability Availability `json:"availability"`
	Rating       float64      `json:"rating"`
	Reviews      int          `json:"reviews"`
	Featured     bool         `json:"featured"`
	Photo        string       `json:"photo,omitempty"`
	Contact      *Contact     `json:"contact,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

type Category struct {
	CategoryID  string `json:"categoryId"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
