package web

import (
	"net/http"
	"time"

	"github.com/justestif/go-fyyur/internal/listings"
)

// showFormLayout is the start time format pre-filled in the show form.
const showFormLayout = "2006-01-02 15:04:05"

// ListShows handles GET /shows.
func (h *Handlers) ListShows(w http.ResponseWriter, r *http.Request) {
	shows, err := h.listings.Shows(r.Context())
	if err != nil {
		h.lookupFailed(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "shows", ShowsPageData{
		PageData: h.page(w, r, "Shows"),
		Shows:    shows,
	})
}

// NewShowForm handles GET /shows/create.
func (h *Handlers) NewShowForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "new_show", ShowFormPageData{
		PageData:         h.page(w, r, "New Show"),
		DefaultStartTime: time.Now().Format(showFormLayout),
	})
}

// CreateShow handles POST /shows/create.
func (h *Handlers) CreateShow(w http.ResponseWriter, r *http.Request) {
	var in listings.ShowInput
	_, err := decodePayload(w, r, "create show", &in)
	if err == nil {
		_, err = h.listings.CreateShow(r.Context(), in)
	}
	if err != nil {
		h.mutationFailed(w, r, err, "An error occurred. Show could not be listed.")
		return
	}

	h.succeeded(w, r, "Show was successfully listed!", "/")
}
