package db

import (
	"time"
)

// Venue is a bookable location. Optional text columns are stored as NULL
// when empty and read back as "".
type Venue struct {
	ID                 int64
	Name               string
	City               string
	State              string
	Address            string
	Phone              string
	Genres             Genres
	ImageLink          string
	FacebookLink       string
	Website            string
	SeekingTalent      bool
	SeekingDescription string
}

// Artist is a performer.
type Artist struct {
	ID                 int64
	Name               string
	City               string
	State              string
	Phone              string
	Genres             Genres
	ImageLink          string
	FacebookLink       string
	Website            string
	SeekingVenue       bool
	SeekingDescription string
}

// Show books one artist at one venue.
type Show struct {
	ID        int64
	ArtistID  int64
	VenueID   int64
	StartTime time.Time
}

// ShowListing is a show joined with the names and images of its parents.
type ShowListing struct {
	ID              int64
	StartTime       time.Time
	ArtistID        int64
	ArtistName      string
	ArtistImageLink string
	VenueID         int64
	VenueName       string
	VenueImageLink  string
}

// VenueLocation is the projection used to build the venues-by-area listing.
type VenueLocation struct {
	ID    int64
	Name  string
	City  string
	State string
}

// NameMatch is a search hit.
type NameMatch struct {
	ID               int64
	Name             string
	NumUpcomingShows int
}

// Assignment sets a single column in a partial update.
type Assignment struct {
	Column string
	Value  any
}
