package db

import (
	"context"
	"fmt"
	"time"
)

// ArtistRepository handles artist database operations.
type ArtistRepository struct {
	q querier
}

// Create inserts a new artist and sets its ID.
func (r *ArtistRepository) Create(ctx context.Context, a *Artist) error {
	query := `
		INSERT INTO artists (name, city, state, phone, genres, image_link,
		                     facebook_link, website, seeking_venue, seeking_description)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, ''),
		        NULLIF($7, ''), NULLIF($8, ''), $9, NULLIF($10, ''))
		RETURNING id
	`
	err := r.q.QueryRowContext(ctx, query,
		a.Name,
		a.City,
		a.State,
		a.Phone,
		a.Genres,
		a.ImageLink,
		a.FacebookLink,
		a.Website,
		a.SeekingVenue,
		a.SeekingDescription,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("inserting artist: %w", classify(err))
	}
	return nil
}

// Get retrieves an artist by ID.
func (r *ArtistRepository) Get(ctx context.Context, id int64) (*Artist, error) {
	query := `
		SELECT id, name, city, state, COALESCE(phone, ''), genres,
		       COALESCE(image_link, ''), COALESCE(facebook_link, ''), COALESCE(website, ''),
		       seeking_venue, COALESCE(seeking_description, '')
		FROM artists
		WHERE id = $1
	`
	var a Artist
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&a.ID,
		&a.Name,
		&a.City,
		&a.State,
		&a.Phone,
		&a.Genres,
		&a.ImageLink,
		&a.FacebookLink,
		&a.Website,
		&a.SeekingVenue,
		&a.SeekingDescription,
	)
	if err != nil {
		return nil, fmt.Errorf("querying artist %d: %w", id, classify(err))
	}
	return &a, nil
}

// List returns the id and name of every artist, ordered by id.
func (r *ArtistRepository) List(ctx context.Context) ([]NameMatch, error) {
	query := `SELECT id, name FROM artists ORDER BY id`
	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying artists: %w", classify(err))
	}
	defer rows.Close()

	var artists []NameMatch
	for rows.Next() {
		var a NameMatch
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, fmt.Errorf("scanning artist: %w", classify(err))
		}
		artists = append(artists, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating artists: %w", classify(err))
	}
	return artists, nil
}

// SearchByName returns artists whose name matches the LIKE pattern, each
// with its number of shows starting after now.
func (r *ArtistRepository) SearchByName(ctx context.Context, pattern string, now time.Time) ([]NameMatch, error) {
	query := `
		SELECT a.id, a.name,
		       (SELECT COUNT(*) FROM shows s WHERE s.artist_id = a.id AND s.start_time > $2)
		FROM artists a
		WHERE a.name LIKE $1
		ORDER BY a.id
	`
	return searchByName(ctx, r.q, query, pattern, now)
}

// Update applies a partial update to the artist with the given ID.
func (r *ArtistRepository) Update(ctx context.Context, id int64, set []Assignment) error {
	return updateByID(ctx, r.q, "artists", artistColumns, id, set)
}

// Delete removes an artist and, by cascade, its shows.
func (r *ArtistRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.q, "artists", id)
}

// searchByName runs a name search query taking (pattern, now).
func searchByName(ctx context.Context, q querier, query, pattern string, now time.Time) ([]NameMatch, error) {
	rows, err := q.QueryContext(ctx, query, pattern, now)
	if err != nil {
		return nil, fmt.Errorf("searching by name: %w", classify(err))
	}
	defer rows.Close()

	var matches []NameMatch
	for rows.Next() {
		var m NameMatch
		if err := rows.Scan(&m.ID, &m.Name, &m.NumUpcomingShows); err != nil {
			return nil, fmt.Errorf("scanning search match: %w", classify(err))
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating search matches: %w", classify(err))
	}
	return matches, nil
}
