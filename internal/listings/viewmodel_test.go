package listings

import (
	"testing"
	"time"

	"github.com/justestif/go-fyyur/internal/db"
)

func TestPartition(t *testing.T) {
	now := time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC)
	show := func(id int64, start time.Time) db.ShowListing {
		return db.ShowListing{ID: id, ArtistID: 1, VenueID: 1, StartTime: start}
	}

	tests := []struct {
		name         string
		shows        []db.ShowListing
		wantUpcoming []int64
		wantPast     []int64
	}{
		{
			name:         "no shows",
			shows:        nil,
			wantUpcoming: nil,
			wantPast:     nil,
		},
		{
			name: "split around now",
			shows: []db.ShowListing{
				show(1, now.Add(-48*time.Hour)),
				show(2, now.Add(time.Hour)),
				show(3, now.Add(-time.Minute)),
				show(4, now.AddDate(1, 0, 0)),
			},
			wantUpcoming: []int64{2, 4},
			wantPast:     []int64{1, 3},
		},
		{
			name: "show starting exactly now is in neither list",
			shows: []db.ShowListing{
				show(1, now),
				show(2, now.Add(time.Nanosecond)),
				show(3, now.Add(-time.Nanosecond)),
			},
			wantUpcoming: []int64{2},
			wantPast:     []int64{3},
		},
		{
			name: "same instant in another zone is still the boundary",
			shows: []db.ShowListing{
				show(1, now.In(time.FixedZone("EST", -5*3600))),
			},
			wantUpcoming: nil,
			wantPast:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Partition(tt.shows, now)

			if got.UpcomingShowsCount != len(got.UpcomingShows) {
				t.Errorf("upcoming count %d != len %d", got.UpcomingShowsCount, len(got.UpcomingShows))
			}
			if got.PastShowsCount != len(got.PastShows) {
				t.Errorf("past count %d != len %d", got.PastShowsCount, len(got.PastShows))
			}
			if got.UpcomingShows == nil || got.PastShows == nil {
				t.Error("lists should be empty, not nil")
			}

			assertIDs(t, "upcoming", got.UpcomingShows, tt.wantUpcoming)
			assertIDs(t, "past", got.PastShows, tt.wantPast)
		})
	}
}

func assertIDs(t *testing.T, label string, shows []ShowSummary, want []int64) {
	t.Helper()
	if len(shows) != len(want) {
		t.Fatalf("%s: got %d shows, want %d", label, len(shows), len(want))
	}
	for i, id := range want {
		if shows[i].ShowID != id {
			t.Errorf("%s[%d]: got show %d, want %d", label, i, shows[i].ShowID, id)
		}
	}
}

func TestNewVenueDetail(t *testing.T) {
	now := time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC)
	v := &db.Venue{
		ID:            1,
		Name:          "The Musical Hop",
		City:          "San Francisco",
		State:         "CA",
		Address:       "1015 Folsom Street",
		Genres:        db.Genres{"Jazz", "Reggae", "Swing"},
		SeekingTalent: true,
	}
	shows := []db.ShowListing{
		{ID: 1, ArtistID: 4, ArtistName: "Guns N Petals", VenueID: 1, StartTime: now.Add(-time.Hour)},
		{ID: 2, ArtistID: 5, ArtistName: "Matt Quevedo", VenueID: 1, StartTime: now.Add(time.Hour)},
	}

	d := NewVenueDetail(v, shows, now)

	if d.Name != v.Name || d.Address != v.Address || !d.SeekingTalent {
		t.Errorf("persisted fields not copied: %+v", d)
	}
	if len(d.Genres) != 3 || d.Genres[2] != "Swing" {
		t.Errorf("unexpected genres %v", d.Genres)
	}
	if d.PastShowsCount != 1 || d.PastShows[0].ArtistName != "Guns N Petals" {
		t.Errorf("unexpected past shows %+v", d.PastShows)
	}
	if d.UpcomingShowsCount != 1 || d.UpcomingShows[0].ArtistID != 5 {
		t.Errorf("unexpected upcoming shows %+v", d.UpcomingShows)
	}
}

func TestNewArtistDetail(t *testing.T) {
	now := time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC)
	a := &db.Artist{ID: 4, Name: "Guns N Petals", Genres: db.Genres{"Rock n Roll"}, SeekingVenue: true}

	d := NewArtistDetail(a, nil, now)

	if !d.SeekingVenue || d.Name != "Guns N Petals" {
		t.Errorf("persisted fields not copied: %+v", d)
	}
	if d.UpcomingShowsCount != 0 || d.PastShowsCount != 0 {
		t.Errorf("expected empty schedule, got %+v", d.Schedule)
	}
}
