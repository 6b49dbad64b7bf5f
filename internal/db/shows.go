package db

import (
	"context"
	"database/sql"
	"fmt"
)

// ShowRepository handles show database operations.
type ShowRepository struct {
	q querier
}

const showListingSQL = `
		SELECT s.id, s.start_time,
		       a.id, a.name, COALESCE(a.image_link, ''),
		       v.id, v.name, COALESCE(v.image_link, '')
		FROM shows s
		JOIN artists a ON a.id = s.artist_id
		JOIN venues v ON v.id = s.venue_id
`

// Create inserts a new show and sets its ID. Unknown artist or venue IDs are
// rejected by the foreign keys with ErrConstraint.
func (r *ShowRepository) Create(ctx context.Context, s *Show) error {
	query := `
		INSERT INTO shows (artist_id, venue_id, start_time)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.q.QueryRowContext(ctx, query, s.ArtistID, s.VenueID, s.StartTime).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("inserting show: %w", classify(err))
	}
	return nil
}

// List returns every show with artist and venue names, by start time.
func (r *ShowRepository) List(ctx context.Context) ([]ShowListing, error) {
	query := showListingSQL + `
		ORDER BY s.start_time, s.id
	`
	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying shows: %w", classify(err))
	}
	return scanShowListings(rows)
}

// ListForVenue returns the shows booked at a venue.
func (r *ShowRepository) ListForVenue(ctx context.Context, venueID int64) ([]ShowListing, error) {
	query := showListingSQL + `
		WHERE s.venue_id = $1
		ORDER BY s.start_time, s.id
	`
	rows, err := r.q.QueryContext(ctx, query, venueID)
	if err != nil {
		return nil, fmt.Errorf("querying venue shows: %w", classify(err))
	}
	return scanShowListings(rows)
}

// ListForArtist returns the shows an artist plays.
func (r *ShowRepository) ListForArtist(ctx context.Context, artistID int64) ([]ShowListing, error) {
	query := showListingSQL + `
		WHERE s.artist_id = $1
		ORDER BY s.start_time, s.id
	`
	rows, err := r.q.QueryContext(ctx, query, artistID)
	if err != nil {
		return nil, fmt.Errorf("querying artist shows: %w", classify(err))
	}
	return scanShowListings(rows)
}

func scanShowListings(rows *sql.Rows) ([]ShowListing, error) {
	defer rows.Close()

	var shows []ShowListing
	for rows.Next() {
		var s ShowListing
		if err := rows.Scan(
			&s.ID,
			&s.StartTime,
			&s.ArtistID,
			&s.ArtistName,
			&s.ArtistImageLink,
			&s.VenueID,
			&s.VenueName,
			&s.VenueImageLink,
		); err != nil {
			return nil, fmt.Errorf("scanning show: %w", classify(err))
		}
		shows = append(shows, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating shows: %w", classify(err))
	}
	return shows, nil
}
