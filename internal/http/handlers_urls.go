package httpx

import (
	"log/slog"
	"net/http"

	"github.com/linkly/linkly-ui/internal/service"
)

// URLHandlers serves the shortened-URL listing, the shorten form, and
// per-code analytics.
type URLHandlers struct {
	Svc    *service.URLService
	Logger *slog.Logger
}

// List handles GET /urls. An optional "search" query narrows the listing.
func (h *URLHandlers) List(w http.ResponseWriter, r *http.Request) {
	urls, err := h.Svc.FetchURLs(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"urls": urls})
}

type shortenPayload struct {
	URL           string `json:"url"`
	ExpiresInDays int    `json:"expires_in_days,omitempty"`
}

// Shorten handles POST /shorten.
func (h *URLHandlers) Shorten(w http.ResponseWriter, r *http.Request) {
	var payload shortenPayload
	if !DecodeJSON(w, r, &payload) {
		return
	}
	if payload.URL == "" {
		WriteError(w, http.StatusBadRequest, "url is required")
		return
	}

	res, err := h.Svc.Shorten(r.Context(), payload.URL, payload.ExpiresInDays)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, res)
}

// Analytics handles GET /analytics and GET /analytics/{code}. Without a code
// it serves the empty lookup state so the page is still reachable.
func (h *URLHandlers) Analytics(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	if code == "" {
		WriteJSON(w, http.StatusOK, map[string]any{"analytics": nil})
		return
	}

	stats, err := h.Svc.Analytics(r.Context(), code)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, stats)
}
