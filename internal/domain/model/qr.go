package model

// QRTargetType selects which URL a QR code points at.
type QRTargetType string

const (
	QRTargetOriginal  QRTargetType = "original"
	QRTargetShortened QRTargetType = "shortened"
)

// QRCode is a single entry in the QR code listing.
type QRCode struct {
	ID          string `json:"id,omitempty"`
	ShortCode   string `json:"short_code"`
	TargetURL   string `json:"target_url"`
	URLType     string `json:"url_type"`
	GeneratedAt int64  `json:"generated_at,omitempty"`
	Size        int    `json:"size,omitempty"`
}

// QRCodeRequest asks the API to render a QR image directly for a URL.
type QRCodeRequest struct {
	URL             string `json:"url"`
	Size            int    `json:"size,omitempty"`
	ForceRegenerate bool   `json:"force_regenerate,omitempty"`
}

// QRInfo is the non-binary descriptive payload for a short code's QR codes.
type QRInfo struct {
	ShortCode   string `json:"short_code"`
	URLType     string `json:"url_type"`
	TargetURL   string `json:"target_url"`
	GeneratedAt *int64 `json:"generated_at,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}
