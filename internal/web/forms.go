package web

import (
	"slices"

	"github.com/justestif/go-fyyur/internal/db"
)

// FormChoices holds the select options offered by the venue and artist forms.
type FormChoices struct {
	States []string
	Genres []string
}

var defaultChoices = FormChoices{
	States: []string{
		"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
		"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
		"MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND", "OH",
		"OK", "OR", "MD", "MA", "MI", "MN", "MS", "MO", "PA", "RI",
		"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI",
		"WY",
	},
	Genres: []string{
		"Alternative", "Blues", "Classical", "Country", "Electronic",
		"Folk", "Funk", "Hip-Hop", "Heavy Metal", "Instrumental",
		"Jazz", "Musical Theatre", "Pop", "Punk", "R&B",
		"Reggae", "Rock n Roll", "Soul", "Other",
	},
}

// SeekingOption describes the seeking radio group of a form.
type SeekingOption struct {
	Field  string
	Legend string
}

var (
	venueSeeking  = SeekingOption{Field: "seeking_talent", Legend: "Looking for talent?"}
	artistSeeking = SeekingOption{Field: "seeking_venue", Legend: "Looking for venues?"}
)

// EntityForm is the set of values shown in a venue or artist form. A zero
// ID means the form creates a new record.
type EntityForm struct {
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
	Seeking            bool
	SeekingDescription string
}

// HasGenre reports whether genre is selected.
func (f EntityForm) HasGenre(genre string) bool {
	return slices.Contains(f.Genres, genre)
}

func venueForm(v *db.Venue) EntityForm {
	return EntityForm{
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
		Seeking:            v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
	}
}

func artistForm(a *db.Artist) EntityForm {
	return EntityForm{
		ID:                 a.ID,
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Genres:             []string(a.Genres),
		ImageLink:          a.ImageLink,
		FacebookLink:       a.FacebookLink,
		Website:            a.Website,
		Seeking:            a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
	}
}
