// Package listings implements the venue, artist and show workflows of the
// booking directory on top of the store.
package listings

import (
	"context"
	"time"

	"github.com/justestif/go-fyyur/internal/db"
)

// Service handles listing queries and mutations.
type Service struct {
	db  *db.DB
	now func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the wall clock used to split shows into past and
// upcoming.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New creates a new listings service.
func New(database *db.DB, opts ...Option) *Service {
	s := &Service{db: database, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SearchResult is the outcome of a name search.
type SearchResult struct {
	Count int
	Data  []db.NameMatch
}

// likePattern wraps term for an unanchored LIKE match. The term is not
// escaped: '%' and '_' inside it act as wildcards.
func likePattern(term string) string {
	return "%" + term + "%"
}

func newSearchResult(matches []db.NameMatch) SearchResult {
	if matches == nil {
		matches = []db.NameMatch{}
	}
	return SearchResult{Count: len(matches), Data: matches}
}

// Ping checks that the store is reachable.
func (s *Service) Ping(ctx context.Context) error {
	return wrap("ping", s.db.Ping(ctx))
}

// command runs a single mutation inside a store transaction.
func (s *Service) command(ctx context.Context, op string, fn func(*db.Tx) error) error {
	return wrap(op, s.db.WithTx(ctx, fn))
}

// Venues

// VenueAreas lists all venues grouped by city and state.
func (s *Service) VenueAreas(ctx context.Context) ([]Area, error) {
	venues, err := s.db.Venues().ListLocations(ctx)
	if err != nil {
		return nil, wrap("list venues", err)
	}
	return GroupByLocation(venues), nil
}

// SearchVenues returns venues whose name contains term. LIKE in PostgreSQL
// is case-sensitive.
func (s *Service) SearchVenues(ctx context.Context, term string) (SearchResult, error) {
	matches, err := s.db.Venues().SearchByName(ctx, likePattern(term), s.now())
	if err != nil {
		return SearchResult{}, wrap("search venues", err)
	}
	return newSearchResult(matches), nil
}

// Venue returns the presentation record for a venue.
func (s *Service) Venue(ctx context.Context, id int64) (*VenueDetail, error) {
	v, err := s.db.Venues().Get(ctx, id)
	if err != nil {
		return nil, wrap("show venue", err)
	}
	shows, err := s.db.Shows().ListForVenue(ctx, id)
	if err != nil {
		return nil, wrap("show venue", err)
	}
	return NewVenueDetail(v, shows, s.now()), nil
}

// GetVenue returns the stored venue, for pre-filling the edit form.
func (s *Service) GetVenue(ctx context.Context, id int64) (*db.Venue, error) {
	v, err := s.db.Venues().Get(ctx, id)
	if err != nil {
		return nil, wrap("edit venue", err)
	}
	return v, nil
}

// CreateVenue inserts a venue and returns its ID.
func (s *Service) CreateVenue(ctx context.Context, in VenueInput) (int64, error) {
	const op = "create venue"
	if err := validateInput(op, in); err != nil {
		return 0, err
	}
	v := in.venue()
	err := s.command(ctx, op, func(tx *db.Tx) error {
		return tx.Venues().Create(ctx, v)
	})
	if err != nil {
		return 0, err
	}
	return v.ID, nil
}

// UpdateVenue applies the set fields of patch to a venue.
func (s *Service) UpdateVenue(ctx context.Context, id int64, patch VenuePatch) error {
	const op = "update venue"
	if err := validateInput(op, patch); err != nil {
		return err
	}
	return s.command(ctx, op, func(tx *db.Tx) error {
		return tx.Venues().Update(ctx, id, patch.assignments())
	})
}

// DeleteVenue removes a venue together with its shows.
func (s *Service) DeleteVenue(ctx context.Context, id int64) error {
	return s.command(ctx, "delete venue", func(tx *db.Tx) error {
		return tx.Venues().Delete(ctx, id)
	})
}

// Artists

// Artists lists every artist's id and name.
func (s *Service) Artists(ctx context.Context) ([]db.NameMatch, error) {
	artists, err := s.db.Artists().List(ctx)
	if err != nil {
		return nil, wrap("list artists", err)
	}
	return artists, nil
}

// SearchArtists returns artists whose name contains term.
func (s *Service) SearchArtists(ctx context.Context, term string) (SearchResult, error) {
	matches, err := s.db.Artists().SearchByName(ctx, likePattern(term), s.now())
	if err != nil {
		return SearchResult{}, wrap("search artists", err)
	}
	return newSearchResult(matches), nil
}

// Artist returns the presentation record for an artist.
func (s *Service) Artist(ctx context.Context, id int64) (*ArtistDetail, error) {
	a, err := s.db.Artists().Get(ctx, id)
	if err != nil {
		return nil, wrap("show artist", err)
	}
	shows, err := s.db.Shows().ListForArtist(ctx, id)
	if err != nil {
		return nil, wrap("show artist", err)
	}
	return NewArtistDetail(a, shows, s.now()), nil
}

// GetArtist returns the stored artist, for pre-filling the edit form.
func (s *Service) GetArtist(ctx context.Context, id int64) (*db.Artist, error) {
	a, err := s.db.Artists().Get(ctx, id)
	if err != nil {
		return nil, wrap("edit artist", err)
	}
	return a, nil
}

// CreateArtist inserts an artist and returns its ID.
func (s *Service) CreateArtist(ctx context.Context, in ArtistInput) (int64, error) {
	const op = "create artist"
	if err := validateInput(op, in); err != nil {
		return 0, err
	}
	a := in.artist()
	err := s.command(ctx, op, func(tx *db.Tx) error {
		return tx.Artists().Create(ctx, a)
	})
	if err != nil {
		return 0, err
	}
	return a.ID, nil
}

// UpdateArtist applies the set fields of patch to an artist.
func (s *Service) UpdateArtist(ctx context.Context, id int64, patch ArtistPatch) error {
	const op = "update artist"
	if err := validateInput(op, patch); err != nil {
		return err
	}
	return s.command(ctx, op, func(tx *db.Tx) error {
		return tx.Artists().Update(ctx, id, patch.assignments())
	})
}

// DeleteArtist removes an artist together with its shows.
func (s *Service) DeleteArtist(ctx context.Context, id int64) error {
	return s.command(ctx, "delete artist", func(tx *db.Tx) error {
		return tx.Artists().Delete(ctx, id)
	})
}

// Shows

// Shows lists every show with its artist and venue.
func (s *Service) Shows(ctx context.Context) ([]ShowSummary, error) {
	shows, err := s.db.Shows().List(ctx)
	if err != nil {
		return nil, wrap("list shows", err)
	}
	summaries := make([]ShowSummary, len(shows))
	for i, show := range shows {
		summaries[i] = summarize(show)
	}
	return summaries, nil
}

// CreateShow books an artist at a venue and returns the show ID.
func (s *Service) CreateShow(ctx context.Context, in ShowInput) (int64, error) {
	const op = "create show"
	if err := validateInput(op, in); err != nil {
		return 0, err
	}
	show := &db.Show{
		ArtistID:  int64(in.ArtistID),
		VenueID:   int64(in.VenueID),
		StartTime: in.StartTime.Time,
	}
	err := s.command(ctx, op, func(tx *db.Tx) error {
		return tx.Shows().Create(ctx, show)
	})
	if err != nil {
		return 0, err
	}
	return show.ID, nil
}
