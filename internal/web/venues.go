package web

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/justestif/go-fyyur/internal/listings"
)

// ListVenues handles GET /venues.
func (h *Handlers) ListVenues(w http.ResponseWriter, r *http.Request) {
	areas, err := h.listings.VenueAreas(r.Context())
	if err != nil {
		h.lookupFailed(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "venues", VenuesPageData{
		PageData: h.page(w, r, "Venues"),
		Areas:    areas,
	})
}

// SearchVenues handles POST /venues/search.
func (h *Handlers) SearchVenues(w http.ResponseWriter, r *http.Request) {
	term := r.PostFormValue("search_term")
	results, err := h.listings.SearchVenues(r.Context(), term)
	if err != nil {
		h.lookupFailed(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "search_venues", SearchPageData{
		PageData:   h.page(w, r, "Venue Search"),
		SearchTerm: term,
		Results:    results,
	})
}

// ShowVenue handles GET /venues/{id}.
func (h *Handlers) ShowVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.NotFound(w, r)
		return
	}
	venue, err := h.listings.Venue(r.Context(), id)
	if err != nil {
		h.lookupFailed(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "show_venue", VenuePageData{
		PageData: h.page(w, r, venue.Name),
		Venue:    venue,
	})
}

// NewVenueForm handles GET /venues/create.
func (h *Handlers) NewVenueForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "new_venue", FormPageData{
		PageData: h.page(w, r, "New Venue"),
		Choices:  defaultChoices,
		Seeking:  venueSeeking,
	})
}

// CreateVenue handles POST /venues/create.
func (h *Handlers) CreateVenue(w http.ResponseWriter, r *http.Request) {
	var in listings.VenueInput
	name, err := decodePayload(w, r, "create venue", &in)

	var id int64
	if err == nil {
		id, err = h.listings.CreateVenue(r.Context(), in)
	}
	if err != nil {
		h.mutationFailed(w, r, err,
			fmt.Sprintf("An error occurred. %s could not be listed.", subject("Venue", name)))
		return
	}

	h.succeeded(w, r,
		fmt.Sprintf("%s was successfully listed!", subject("Venue", in.Name)),
		fmt.Sprintf("/venues/%d", id))
}

// EditVenueForm handles GET /venues/{id}/edit.
func (h *Handlers) EditVenueForm(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.NotFound(w, r)
		return
	}
	venue, err := h.listings.GetVenue(r.Context(), id)
	if err != nil {
		h.lookupFailed(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "edit_venue", FormPageData{
		PageData: h.page(w, r, "Edit "+venue.Name),
		Form:     venueForm(venue),
		Choices:  defaultChoices,
		Seeking:  venueSeeking,
	})
}

// UpdateVenue handles POST /venues/{id}/edit.
func (h *Handlers) UpdateVenue(w http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "id")
	var patch listings.VenuePatch
	name, err := decodePayload(w, r, "update venue", &patch)
	if name == "" {
		name = rawID
	}

	id, ok := idParam(r)
	if err == nil && !ok {
		err = unknownID("update venue", rawID)
	}
	if err == nil {
		err = h.listings.UpdateVenue(r.Context(), id, patch)
	}
	if err != nil {
		h.mutationFailed(w, r, err,
			fmt.Sprintf("An error occurred. %s could not be updated.", subject("Venue", name)))
		return
	}

	h.succeeded(w, r,
		fmt.Sprintf("%s was successfully updated!", subject("Venue", name)),
		"/venues/"+strconv.FormatInt(id, 10))
}

// DeleteVenue handles POST /venues/{id}.
func (h *Handlers) DeleteVenue(w http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "id")

	id, ok := idParam(r)
	var err error
	if !ok {
		err = unknownID("delete venue", rawID)
	} else {
		err = h.listings.DeleteVenue(r.Context(), id)
	}
	if err != nil {
		h.mutationFailed(w, r, err,
			fmt.Sprintf("An error occurred. %s could not be deleted.", subject("Venue", rawID)))
		return
	}

	h.succeeded(w, r, fmt.Sprintf("%s was successfully deleted!", subject("Venue", rawID)), "/")
}
