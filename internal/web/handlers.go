package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/justestif/go-fyyur/internal/db"
	"github.com/justestif/go-fyyur/internal/listings"
)

// maxPayloadBytes caps JSON submissions.
const maxPayloadBytes = 1 << 20

// Listings is the subset of the listings service used by the handlers.
type Listings interface {
	Ping(ctx context.Context) error

	VenueAreas(ctx context.Context) ([]listings.Area, error)
	SearchVenues(ctx context.Context, term string) (listings.SearchResult, error)
	Venue(ctx context.Context, id int64) (*listings.VenueDetail, error)
	GetVenue(ctx context.Context, id int64) (*db.Venue, error)
	CreateVenue(ctx context.Context, in listings.VenueInput) (int64, error)
	UpdateVenue(ctx context.Context, id int64, patch listings.VenuePatch) error
	DeleteVenue(ctx context.Context, id int64) error

	Artists(ctx context.Context) ([]db.NameMatch, error)
	SearchArtists(ctx context.Context, term string) (listings.SearchResult, error)
	Artist(ctx context.Context, id int64) (*listings.ArtistDetail, error)
	GetArtist(ctx context.Context, id int64) (*db.Artist, error)
	CreateArtist(ctx context.Context, in listings.ArtistInput) (int64, error)
	UpdateArtist(ctx context.Context, id int64, patch listings.ArtistPatch) error
	DeleteArtist(ctx context.Context, id int64) error

	Shows(ctx context.Context) ([]listings.ShowSummary, error)
	CreateShow(ctx context.Context, in listings.ShowInput) (int64, error)
}

var _ Listings = (*listings.Service)(nil)

// Handlers contains HTTP handlers for the web application.
type Handlers struct {
	listings  Listings
	templates *Templates
	flashes   *FlashStore
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(svc Listings, templates *Templates, flashes *FlashStore) *Handlers {
	return &Handlers{
		listings:  svc,
		templates: templates,
		flashes:   flashes,
	}
}

// Home handles the landing page (GET /).
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "home", h.page(w, r, "Fyyur"))
}

// Health reports whether the store is reachable (GET /healthz).
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	status, body := http.StatusOK, map[string]string{"status": "ok"}
	if err := h.listings.Ping(r.Context()); err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("health check failed")
		status, body = http.StatusServiceUnavailable, map[string]string{"status": "unavailable"}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// NotFound renders the 404 page.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, "404", h.page(w, r, "Not Found"))
}

// serverError renders the 500 page, carrying msg when set.
func (h *Handlers) serverError(w http.ResponseWriter, r *http.Request, msg string) {
	data := PageData{Title: "Server Error", CurrentPath: r.URL.Path}
	if msg != "" {
		data.Flash = &FlashMessage{Type: "error", Message: msg}
	}
	h.render(w, r, http.StatusInternalServerError, "500", data)
}

// page builds the common page data, consuming any pending flash message.
func (h *Handlers) page(w http.ResponseWriter, r *http.Request, title string) PageData {
	return PageData{
		Title:       title,
		Flash:       h.flashes.Pop(w, r),
		CurrentPath: r.URL.Path,
	}
}

func (h *Handlers) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	var buf bytes.Buffer
	if err := h.templates.Render(&buf, page, data); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("page", page).Msg("render failed")
		http.Error(w, "Failed to render template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// lookupFailed answers a failed read: 404 for unknown records, the 500 page
// with the failure message otherwise.
func (h *Handlers) lookupFailed(w http.ResponseWriter, r *http.Request, err error) {
	if listings.IsNotFound(err) {
		h.NotFound(w, r)
		return
	}
	logFailure(r, err, "lookup failed")

	msg := listings.GenericFailure
	var lerr *listings.Error
	if errors.As(err, &lerr) {
		msg = lerr.Message()
	}
	h.serverError(w, r, msg)
}

// mutationFailed logs err with its kind and renders the 500 page with msg.
// The user only ever sees msg.
func (h *Handlers) mutationFailed(w http.ResponseWriter, r *http.Request, err error, msg string) {
	logFailure(r, err, "mutation failed")
	h.serverError(w, r, msg)
}

// succeeded flashes msg and redirects to location.
func (h *Handlers) succeeded(w http.ResponseWriter, r *http.Request, msg, location string) {
	h.flashes.Set(w, FlashMessage{Type: "success", Message: msg})
	http.Redirect(w, r, location, http.StatusSeeOther)
}

func logFailure(r *http.Request, err error, msg string) {
	zerolog.Ctx(r.Context()).Error().
		Err(err).
		Stringer("kind", listings.KindOf(err)).
		Msg(msg)
}

// readPayload reads the request body of a JSON submission.
func readPayload(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPayloadBytes))
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return body, nil
}

// decodePayload reads and decodes a JSON submission into dst. The submitted
// name, when present, is returned even if decoding fails.
func decodePayload(w http.ResponseWriter, r *http.Request, op string, dst any) (string, error) {
	body, err := readPayload(w, r)
	if err != nil {
		return "", &listings.Error{Op: op, Kind: listings.KindValidation, Err: err}
	}
	return listings.PayloadName(body), listings.Decode(op, bytes.NewReader(body), dst)
}

// idParam parses the {id} URL parameter.
func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// unknownID reports an {id} parameter that cannot name a record.
func unknownID(op, raw string) error {
	return &listings.Error{Op: op, Kind: listings.KindNotFound, Err: fmt.Errorf("invalid id %q", raw)}
}

// subject names an entity in a flash message: "Venue The Hop", or just
// "Venue" when no label is known.
func subject(entity, label string) string {
	if label == "" {
		return entity
	}
	return entity + " " + label
}
