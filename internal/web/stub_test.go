package web

import (
	"context"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/justestif/go-fyyur/internal/db"
	"github.com/justestif/go-fyyur/internal/listings"
	webfs "github.com/justestif/go-fyyur/web"
)

// stubListings records calls and returns canned results.
type stubListings struct {
	err      error
	pingErr  error
	panicMsg string

	areas   []listings.Area
	artists []db.NameMatch
	search  listings.SearchResult
	venue   *listings.VenueDetail
	artist  *listings.ArtistDetail
	rawVen  *db.Venue
	rawArt  *db.Artist
	shows   []listings.ShowSummary
	newID   int64

	calls       []string
	term        string
	venueInput  listings.VenueInput
	venuePatch  listings.VenuePatch
	artistInput listings.ArtistInput
	artistPatch listings.ArtistPatch
	showInput   listings.ShowInput
	targetID    int64
}

func (s *stubListings) record(call string) {
	s.calls = append(s.calls, call)
}

func (s *stubListings) called(call string) bool {
	for _, c := range s.calls {
		if c == call {
			return true
		}
	}
	return false
}

func (s *stubListings) Ping(context.Context) error {
	s.record("Ping")
	return s.pingErr
}

func (s *stubListings) VenueAreas(context.Context) ([]listings.Area, error) {
	s.record("VenueAreas")
	return s.areas, s.err
}

func (s *stubListings) SearchVenues(_ context.Context, term string) (listings.SearchResult, error) {
	s.record("SearchVenues")
	s.term = term
	return s.search, s.err
}

func (s *stubListings) Venue(_ context.Context, id int64) (*listings.VenueDetail, error) {
	s.record("Venue")
	s.targetID = id
	return s.venue, s.err
}

func (s *stubListings) GetVenue(_ context.Context, id int64) (*db.Venue, error) {
	s.record("GetVenue")
	s.targetID = id
	return s.rawVen, s.err
}

func (s *stubListings) CreateVenue(_ context.Context, in listings.VenueInput) (int64, error) {
	s.record("CreateVenue")
	s.venueInput = in
	return s.newID, s.err
}

func (s *stubListings) UpdateVenue(_ context.Context, id int64, patch listings.VenuePatch) error {
	s.record("UpdateVenue")
	s.targetID = id
	s.venuePatch = patch
	return s.err
}

func (s *stubListings) DeleteVenue(_ context.Context, id int64) error {
	s.record("DeleteVenue")
	s.targetID = id
	return s.err
}

func (s *stubListings) Artists(context.Context) ([]db.NameMatch, error) {
	s.record("Artists")
	if s.panicMsg != "" {
		panic(s.panicMsg)
	}
	return s.artists, s.err
}

func (s *stubListings) SearchArtists(_ context.Context, term string) (listings.SearchResult, error) {
	s.record("SearchArtists")
	s.term = term
	return s.search, s.err
}

func (s *stubListings) Artist(_ context.Context, id int64) (*listings.ArtistDetail, error) {
	s.record("Artist")
	s.targetID = id
	return s.artist, s.err
}

func (s *stubListings) GetArtist(_ context.Context, id int64) (*db.Artist, error) {
	s.record("GetArtist")
	s.targetID = id
	return s.rawArt, s.err
}

func (s *stubListings) CreateArtist(_ context.Context, in listings.ArtistInput) (int64, error) {
	s.record("CreateArtist")
	s.artistInput = in
	return s.newID, s.err
}

func (s *stubListings) UpdateArtist(_ context.Context, id int64, patch listings.ArtistPatch) error {
	s.record("UpdateArtist")
	s.targetID = id
	s.artistPatch = patch
	return s.err
}

func (s *stubListings) DeleteArtist(_ context.Context, id int64) error {
	s.record("DeleteArtist")
	s.targetID = id
	return s.err
}

func (s *stubListings) Shows(context.Context) ([]listings.ShowSummary, error) {
	s.record("Shows")
	return s.shows, s.err
}

func (s *stubListings) CreateShow(_ context.Context, in listings.ShowInput) (int64, error) {
	s.record("CreateShow")
	s.showInput = in
	return s.newID, s.err
}

// newTestServer builds a server over the embedded templates and assets.
func newTestServer(t *testing.T, stub *stubListings) *Server {
	t.Helper()

	templates, err := fs.Sub(webfs.TemplatesFS, "templates")
	if err != nil {
		t.Fatalf("templates fs: %v", err)
	}
	static, err := fs.Sub(webfs.StaticFS, "static")
	if err != nil {
		t.Fatalf("static fs: %v", err)
	}

	s, err := NewServer(ServerConfig{
		Addr:        "127.0.0.1:0",
		TemplatesFS: templates,
		StaticFS:    static,
		Listings:    stub,
		Logger:      zerolog.Nop(),
	})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	return s
}

func doRequest(t *testing.T, s *Server, method, target, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func flashCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == flashCookieName && c.MaxAge > 0 {
			return c
		}
	}
	t.Fatal("no flash cookie set")
	return nil
}
