package listings

import (
	"time"

	"github.com/justestif/go-fyyur/internal/db"
)

// ShowSummary is a show as displayed on venue, artist and show pages.
type ShowSummary struct {
	ShowID          int64
	ArtistID        int64
	ArtistName      string
	ArtistImageLink string
	VenueID         int64
	VenueName       string
	VenueImageLink  string
	StartTime       time.Time
}

// Schedule splits an entity's shows around an evaluation instant.
type Schedule struct {
	UpcomingShows      []ShowSummary
	UpcomingShowsCount int
	PastShows          []ShowSummary
	PastShowsCount     int
}

// Partition classifies shows relative to now. A show is upcoming when it
// starts strictly after now and past when it starts strictly before; a show
// starting exactly at now is in neither list. Input order is preserved.
func Partition(shows []db.ShowListing, now time.Time) Schedule {
	s := Schedule{
		UpcomingShows: []ShowSummary{},
		PastShows:     []ShowSummary{},
	}
	for _, show := range shows {
		switch {
		case show.StartTime.After(now):
			s.UpcomingShows = append(s.UpcomingShows, summarize(show))
		case show.StartTime.Before(now):
			s.PastShows = append(s.PastShows, summarize(show))
		}
	}
	s.UpcomingShowsCount = len(s.UpcomingShows)
	s.PastShowsCount = len(s.PastShows)
	return s
}

func summarize(show db.ShowListing) ShowSummary {
	return ShowSummary{
		ShowID:          show.ID,
		ArtistID:        show.ArtistID,
		ArtistName:      show.ArtistName,
		ArtistImageLink: show.ArtistImageLink,
		VenueID:         show.VenueID,
		VenueName:       show.VenueName,
		VenueImageLink:  show.VenueImageLink,
		StartTime:       show.StartTime,
	}
}

// VenueDetail is the presentation record for a venue page.
type VenueDetail struct {
	ID                 int64
	Name               string
	City               string
	State              string
	Address            string
	Phone              string
	Genres             []string
	ImageLink          string
	FacebookLink       string
	Website            string
	SeekingTalent      bool
	SeekingDescription string
	Schedule
}

// ArtistDetail is the presentation record for an artist page.
type ArtistDetail struct {
	ID                 int64
	Name               string
	City               string
	State              string
	Phone              string
	Genres             []string
	ImageLink          string
	FacebookLink       string
	Website            string
	SeekingVenue       bool
	SeekingDescription string
	Schedule
}

// NewVenueDetail builds the presentation record of v at now.
func NewVenueDetail(v *db.Venue, shows []db.ShowListing, now time.Time) *VenueDetail {
	return &VenueDetail{
		ID:                 v.ID,
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		Genres:             []string(v.Genres),
		ImageLink:          v.ImageLink,
		FacebookLink:       v.FacebookLink,
		Website:            v.Website,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
		Schedule:           Partition(shows, now),
	}
}

// NewArtistDetail builds the presentation record of a at now.
func NewArtistDetail(a *db.Artist, shows []db.ShowListing, now time.Time) *ArtistDetail {
	return &ArtistDetail{
		ID:                 a.ID,
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Genres:             []string(a.Genres),
		ImageLink:          a.ImageLink,
		FacebookLink:       a.FacebookLink,
		Website:            a.Website,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
		Schedule:           Partition(shows, now),
	}
}
