// Package web provides the HTTP server and web UI for the booking directory.
package web

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

const flashCookieName = "fyyur_flash"

// FlashStore carries one message across a redirect in a short-lived cookie.
type FlashStore struct {
	secure bool
}

// NewFlashStore creates a flash store. secure marks the cookie HTTPS-only.
func NewFlashStore(secure bool) *FlashStore {
	return &FlashStore{secure: secure}
}

// Set stores msg for the next request.
func (f *FlashStore) Set(w http.ResponseWriter, msg FlashMessage) {
	raw, err := json.Marshal(msg)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    base64.URLEncoding.EncodeToString(raw),
		Path:     "/",
		HttpOnly: true,
		Secure:   f.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   60,
	})
}

// Pop returns the pending message, if any, and clears it. A cookie that
// cannot be decoded is discarded.
func (f *FlashStore) Pop(w http.ResponseWriter, r *http.Request) *FlashMessage {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return nil
	}

	f.clear(w)

	raw, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	var msg FlashMessage
	if err := json.Unmarshal(raw, &msg); err != nil || msg.Message == "" {
		return nil
	}
	return &msg
}

func (f *FlashStore) clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   f.secure,
		MaxAge:   -1,
	})
}
