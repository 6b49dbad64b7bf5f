package listings

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/justestif/go-fyyur/internal/db"
)

// AffirmativeToken is the only seeking-flag value that means true.
const AffirmativeToken = "True"

// CoerceFlag converts a form token to a boolean. Only AffirmativeToken is
// true; every other value, including "", "true" and "1", is false.
func CoerceFlag(token string) bool {
	return token == AffirmativeToken
}

// SeekingFlag is a boolean submitted as a string token.
type SeekingFlag bool

// UnmarshalJSON implements json.Unmarshaler. Non-string JSON values,
// including booleans and null, decode as false.
func (f *SeekingFlag) UnmarshalJSON(b []byte) error {
	var token string
	if err := json.Unmarshal(b, &token); err != nil {
		*f = false
		return nil
	}
	*f = SeekingFlag(CoerceFlag(token))
	return nil
}

// ID is an integer key that may be submitted either as a JSON number or as a
// numeric string, as select inputs produce.
type ID int64

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %s", b)
	}
	*id = ID(n)
	return nil
}

// timestampLayouts are tried in order when decoding a show start time.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
}

// Timestamp is a start time accepting RFC 3339 or the form's
// "YYYY-MM-DD HH:MM:SS" layout, read in local time when no zone is given.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("start time must be a string: %w", err)
	}
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		parsed, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unrecognized start time %q", s)
}

// VenueInput is the payload for creating a venue.
type VenueInput struct {
	Name               string      `json:"name" validate:"required"`
	City               string      `json:"city" validate:"required"`
	State              string      `json:"state" validate:"required"`
	Address            string      `json:"address" validate:"required"`
	Phone              string      `json:"phone"`
	Genres             []string    `json:"genres"`
	ImageLink          string      `json:"image_link"`
	FacebookLink       string      `json:"facebook_link"`
	Website            string      `json:"website"`
	SeekingTalent      SeekingFlag `json:"seeking_talent"`
	SeekingDescription string      `json:"seeking_description"`
}

// VenuePatch is the payload for a partial venue update. Nil fields are left
// unchanged.
type VenuePatch struct {
	Name               *string      `json:"name" validate:"omitnil,min=1"`
	City               *string      `json:"city" validate:"omitnil,min=1"`
	State              *string      `json:"state" validate:"omitnil,min=1"`
	Address            *string      `json:"address" validate:"omitnil,min=1"`
	Phone              *string      `json:"phone"`
	Genres             *[]string    `json:"genres"`
	ImageLink          *string      `json:"image_link"`
	FacebookLink       *string      `json:"facebook_link"`
	Website            *string      `json:"website"`
	SeekingTalent      *SeekingFlag `json:"seeking_talent"`
	SeekingDescription *string      `json:"seeking_description"`
}

// ArtistInput is the payload for creating an artist.
type ArtistInput struct {
	Name               string      `json:"name" validate:"required"`
	City               string      `json:"city" validate:"required"`
	State              string      `json:"state" validate:"required"`
	Phone              string      `json:"phone"`
	Genres             []string    `json:"genres"`
	ImageLink          string      `json:"image_link"`
	FacebookLink       string      `json:"facebook_link"`
	Website            string      `json:"website"`
	SeekingVenue       SeekingFlag `json:"seeking_venue"`
	SeekingDescription string      `json:"seeking_description"`
}

// ArtistPatch is the payload for a partial artist update.
type ArtistPatch struct {
	Name               *string      `json:"name" validate:"omitnil,min=1"`
	City               *string      `json:"city" validate:"omitnil,min=1"`
	State              *string      `json:"state" validate:"omitnil,min=1"`
	Phone              *string      `json:"phone"`
	Genres             *[]string    `json:"genres"`
	ImageLink          *string      `json:"image_link"`
	FacebookLink       *string      `json:"facebook_link"`
	Website            *string      `json:"website"`
	SeekingVenue       *SeekingFlag `json:"seeking_venue"`
	SeekingDescription *string      `json:"seeking_description"`
}

// ShowInput is the payload for creating a show.
type ShowInput struct {
	ArtistID  ID        `json:"artist_id" validate:"required"`
	VenueID   ID        `json:"venue_id" validate:"required"`
	StartTime Timestamp `json:"start_time" validate:"required"`
}

// Decode reads a single JSON object into dst, rejecting unknown fields.
// Failures are reported as KindValidation.
func Decode(op string, r io.Reader, dst any) error {
	body, err := io.ReadAll(r)
	if err != nil {
		return invalid(op, fmt.Errorf("reading payload: %w", err))
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return invalid(op, fmt.Errorf("decoding payload: %w", err))
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return invalid(op, errors.New("decoding payload: unexpected data after JSON object"))
	}
	return nil
}

// PayloadName extracts the "name" member of a JSON payload for use in
// messages. It returns "" when the payload is not an object or has no name.
func PayloadName(body []byte) string {
	var probe struct {
		Name any `json:"name"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return ""
	}
	name, _ := probe.Name.(string)
	return name
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func validateInput(op string, v any) error {
	if err := validate.Struct(v); err != nil {
		return invalid(op, err)
	}
	return nil
}

func (in VenueInput) venue() *db.Venue {
	return &db.Venue{
		Name:               in.Name,
		City:               in.City,
		State:              in.State,
		Address:            in.Address,
		Phone:              in.Phone,
		Genres:             db.Genres(in.Genres),
		ImageLink:          in.ImageLink,
		FacebookLink:       in.FacebookLink,
		Website:            in.Website,
		SeekingTalent:      bool(in.SeekingTalent),
		SeekingDescription: in.SeekingDescription,
	}
}

func (in ArtistInput) artist() *db.Artist {
	return &db.Artist{
		Name:               in.Name,
		City:               in.City,
		State:              in.State,
		Phone:              in.Phone,
		Genres:             db.Genres(in.Genres),
		ImageLink:          in.ImageLink,
		FacebookLink:       in.FacebookLink,
		Website:            in.Website,
		SeekingVenue:       bool(in.SeekingVenue),
		SeekingDescription: in.SeekingDescription,
	}
}

// assignments lists the set fields in declaration order.
func (p VenuePatch) assignments() []db.Assignment {
	var set []db.Assignment
	set = appendString(set, "name", p.Name)
	set = appendString(set, "city", p.City)
	set = appendString(set, "state", p.State)
	set = appendString(set, "address", p.Address)
	set = appendString(set, "phone", p.Phone)
	set = appendGenres(set, p.Genres)
	set = appendString(set, "image_link", p.ImageLink)
	set = appendString(set, "facebook_link", p.FacebookLink)
	set = appendString(set, "website", p.Website)
	set = appendFlag(set, "seeking_talent", p.SeekingTalent)
	set = appendString(set, "seeking_description", p.SeekingDescription)
	return set
}

func (p ArtistPatch) assignments() []db.Assignment {
	var set []db.Assignment
	set = appendString(set, "name", p.Name)
	set = appendString(set, "city", p.City)
	set = appendString(set, "state", p.State)
	set = appendString(set, "phone", p.Phone)
	set = appendGenres(set, p.Genres)
	set = appendString(set, "image_link", p.ImageLink)
	set = appendString(set, "facebook_link", p.FacebookLink)
	set = appendString(set, "website", p.Website)
	set = appendFlag(set, "seeking_venue", p.SeekingVenue)
	set = appendString(set, "seeking_description", p.SeekingDescription)
	return set
}

func appendString(set []db.Assignment, column string, v *string) []db.Assignment {
	if v == nil {
		return set
	}
	return append(set, db.Assignment{Column: column, Value: *v})
}

func appendGenres(set []db.Assignment, v *[]string) []db.Assignment {
	if v == nil {
		return set
	}
	return append(set, db.Assignment{Column: "genres", Value: db.Genres(*v)})
}

func appendFlag(set []db.Assignment, column string, v *SeekingFlag) []db.Assignment {
	if v == nil {
		return set
	}
	return append(set, db.Assignment{Column: column, Value: bool(*v)})
}
