package model

// Package model holds the wire records exchanged with the shortener API.
// Field names follow the API's JSON contract; timestamps are Unix seconds.

// ShortenedURL is a single entry in the URL listing.
type ShortenedURL struct {
	ID                 string `json:"id,omitempty"`
	OriginalURL        string `json:"original_url"`
	ShortCode          string `json:"short_code"`
	CreatedAt          int64  `json:"created_at,omitempty"`
	ExpiresAt          *int64 `json:"expires_at,omitempty"`
	HasShortenedQR     bool   `json:"has_shortened_qr"`
	HasOriginalQR      bool   `json:"has_original_qr"`
	Clicks             int64  `json:"clicks"`
	UniqueClicks       int64  `json:"unique_clicks"`
	OwnedByCurrentUser bool   `json:"owned_by_current_user"`
}

// ShortenRequest asks the API to shorten a URL.
type ShortenRequest struct {
	URL           string `json:"url"`
	ExpiresInDays int    `json:"expires_in_days,omitempty"`
}

// ShortenResponse is the API's answer to a shorten request.
type ShortenResponse struct {
	OriginalURL string `json:"original_url"`
	ShortURL    string `json:"short_url"`
	ShortCode   string `json:"short_code"`
	ExpiresAt   *int64 `json:"expires_at,omitempty"`
}

// URLAnalytics is the analytics record for a short code.
type URLAnalytics struct {
	ShortCode              string `json:"short_code"`
	OriginalURL            string `json:"original_url"`
	CreatedAt              int64  `json:"created_at,omitempty"`
	ExpiresAt              *int64 `json:"expires_at,omitempty"`
	Clicks                 int64  `json:"clicks"`
	UniqueClicks           int64  `json:"unique_clicks"`
	HasShortenedQR         bool   `json:"has_shortened_qr"`
	HasOriginalQR          bool   `json:"has_original_qr"`
	ShortenedQRGeneratedAt *int64 `json:"shortened_qr_generated_at,omitempty"`
	OriginalQRGeneratedAt  *int64 `json:"original_qr_generated_at,omitempty"`
}
