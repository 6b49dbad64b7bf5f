package web

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/justestif/go-fyyur/internal/listings"
)

// ListArtists handles GET /artists.
func (h *Handlers) ListArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := h.listings.Artists(r.Context())
	if err != nil {
		h.lookupFailed(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "artists", ArtistsPageData{
		PageData: h.page(w, r, "Artists"),
		Artists:  artists,
	})
}

// SearchArtists handles POST /artists/search.
func (h *Handlers) SearchArtists(w http.ResponseWriter, r *http.Request) {
	term := r.PostFormValue("search_term")
	results, err := h.listings.SearchArtists(r.Context(), term)
	if err != nil {
		h.lookupFailed(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "search_artists", SearchPageData{
		PageData:   h.page(w, r, "Artist Search"),
		SearchTerm: term,
		Results:    results,
	})
}

// ShowArtist handles GET /artists/{id}.
func (h *Handlers) ShowArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.NotFound(w, r)
		return
	}
	artist, err := h.listings.Artist(r.Context(), id)
	if err != nil {
		h.lookupFailed(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "show_artist", ArtistPageData{
		PageData: h.page(w, r, artist.Name),
		Artist:   artist,
	})
}

// NewArtistForm handles GET /artists/create.
func (h *Handlers) NewArtistForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "new_artist", FormPageData{
		PageData: h.page(w, r, "New Artist"),
		Choices:  defaultChoices,
		Seeking:  artistSeeking,
	})
}

// CreateArtist handles POST /artists/create.
func (h *Handlers) CreateArtist(w http.ResponseWriter, r *http.Request) {
	var in listings.ArtistInput
	name, err := decodePayload(w, r, "create artist", &in)

	var id int64
	if err == nil {
		id, err = h.listings.CreateArtist(r.Context(), in)
	}
	if err != nil {
		h.mutationFailed(w, r, err,
			fmt.Sprintf("An error occurred. %s could not be listed.", subject("Artist", name)))
		return
	}

	h.succeeded(w, r,
		fmt.Sprintf("%s was successfully listed!", subject("Artist", in.Name)),
		fmt.Sprintf("/artists/%d", id))
}

// EditArtistForm handles GET /artists/{id}/edit.
func (h *Handlers) EditArtistForm(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.NotFound(w, r)
		return
	}
	artist, err := h.listings.GetArtist(r.Context(), id)
	if err != nil {
		h.lookupFailed(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "edit_artist", FormPageData{
		PageData: h.page(w, r, "Edit "+artist.Name),
		Form:     artistForm(artist),
		Choices:  defaultChoices,
		Seeking:  artistSeeking,
	})
}

// UpdateArtist handles POST /artists/{id}/edit.
func (h *Handlers) UpdateArtist(w http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "id")
	var patch listings.ArtistPatch
	name, err := decodePayload(w, r, "update artist", &patch)
	if name == "" {
		name = rawID
	}

	id, ok := idParam(r)
	if err == nil && !ok {
		err = unknownID("update artist", rawID)
	}
	if err == nil {
		err = h.listings.UpdateArtist(r.Context(), id, patch)
	}
	if err != nil {
		h.mutationFailed(w, r, err,
			fmt.Sprintf("An error occurred. %s could not be updated.", subject("Artist", name)))
		return
	}

	h.succeeded(w, r,
		fmt.Sprintf("%s was successfully updated!", subject("Artist", name)),
		"/artists/"+strconv.FormatInt(id, 10))
}

// DeleteArtist handles POST /artists/{id}.
func (h *Handlers) DeleteArtist(w http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "id")

	id, ok := idParam(r)
	var err error
	if !ok {
		err = unknownID("delete artist", rawID)
	} else {
		err = h.listings.DeleteArtist(r.Context(), id)
	}
	if err != nil {
		h.mutationFailed(w, r, err,
			fmt.Sprintf("An error occurred. %s could not be deleted.", subject("Artist", rawID)))
		return
	}

	h.succeeded(w, r, fmt.Sprintf("%s was successfully deleted!", subject("Artist", rawID)), "/")
}
