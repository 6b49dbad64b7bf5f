package db

import (
	"context"
	"fmt"
	"time"
)

// VenueRepository handles venue database operations.
type VenueRepository struct {
	q querier
}

const venueColumnsSQL = `id, name, city, state, address, COALESCE(phone, ''), genres,
		       COALESCE(image_link, ''), COALESCE(facebook_link, ''), COALESCE(website, ''),
		       seeking_talent, COALESCE(seeking_description, '')`

// Create inserts a new venue and sets its ID.
func (r *VenueRepository) Create(ctx context.Context, v *Venue) error {
	query := `
		INSERT INTO venues (name, city, state, address, phone, genres, image_link,
		                    facebook_link, website, seeking_talent, seeking_description)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, NULLIF($7, ''),
		        NULLIF($8, ''), NULLIF($9, ''), $10, NULLIF($11, ''))
		RETURNING id
	`
	err := r.q.QueryRowContext(ctx, query,
		v.Name,
		v.City,
		v.State,
		v.Address,
		v.Phone,
		v.Genres,
		v.ImageLink,
		v.FacebookLink,
		v.Website,
		v.SeekingTalent,
		v.SeekingDescription,
	).Scan(&v.ID)
	if err != nil {
		return fmt.Errorf("inserting venue: %w", classify(err))
	}
	return nil
}

// Get retrieves a venue by ID.
func (r *VenueRepository) Get(ctx context.Context, id int64) (*Venue, error) {
	query := `
		SELECT ` + venueColumnsSQL + `
		FROM venues
		WHERE id = $1
	`
	var v Venue
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&v.ID,
		&v.Name,
		&v.City,
		&v.State,
		&v.Address,
		&v.Phone,
		&v.Genres,
		&v.ImageLink,
		&v.FacebookLink,
		&v.Website,
		&v.SeekingTalent,
		&v.SeekingDescription,
	)
	if err != nil {
		return nil, fmt.Errorf("querying venue %d: %w", id, classify(err))
	}
	return &v, nil
}

// ListLocations returns every venue's id, name and location ordered by
// state, then city, then id.
func (r *VenueRepository) ListLocations(ctx context.Context) ([]VenueLocation, error) {
	query := `
		SELECT id, name, city, state
		FROM venues
		ORDER BY state, city, id
	`
	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying venue locations: %w", classify(err))
	}
	defer rows.Close()

	var venues []VenueLocation
	for rows.Next() {
		var v VenueLocation
		if err := rows.Scan(&v.ID, &v.Name, &v.City, &v.State); err != nil {
			return nil, fmt.Errorf("scanning venue location: %w", classify(err))
		}
		venues = append(venues, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating venue locations: %w", classify(err))
	}
	return venues, nil
}

// SearchByName returns venues whose name matches the LIKE pattern, each with
// its number of shows starting after now.
func (r *VenueRepository) SearchByName(ctx context.Context, pattern string, now time.Time) ([]NameMatch, error) {
	query := `
		SELECT v.id, v.name,
		       (SELECT COUNT(*) FROM shows s WHERE s.venue_id = v.id AND s.start_time > $2)
		FROM venues v
		WHERE v.name LIKE $1
		ORDER BY v.id
	`
	return searchByName(ctx, r.q, query, pattern, now)
}

// Update applies a partial update to the venue with the given ID.
func (r *VenueRepository) Update(ctx context.Context, id int64, set []Assignment) error {
	return updateByID(ctx, r.q, "venues", venueColumns, id, set)
}

// Delete removes a venue and, by cascade, its shows.
func (r *VenueRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.q, "venues", id)
}
