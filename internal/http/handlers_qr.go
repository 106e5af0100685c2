package httpx

import (
	"log/slog"
	"net/http"

	"github.com/linkly/linkly-ui/internal/domain/model"
	apperrors "github.com/linkly/linkly-ui/internal/errors"
	"github.com/linkly/linkly-ui/internal/ports"
	"github.com/linkly/linkly-ui/internal/service"
)

// QRHandlers serves the QR code listing, per-code metadata, and image
// pass-through endpoints.
type QRHandlers struct {
	Svc    *service.QRService
	Logger *slog.Logger
}

// List handles GET /qr-codes.
func (h *QRHandlers) List(w http.ResponseWriter, r *http.Request) {
	codes, err := h.Svc.FetchQRCodes(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"qr_codes": codes})
}

// Info handles GET /qr-generator/{code}/info.
func (h *QRHandlers) Info(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	if code == "" {
		WriteAppError(w, apperrors.Validation("short code is required"))
		return
	}

	info, err := h.Svc.Info(r.Context(), code, targetType(r))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, info)
}

// Image handles GET /qr-generator/{code}/image and streams the rendered
// image bytes back unchanged.
func (h *QRHandlers) Image(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	if code == "" {
		WriteAppError(w, apperrors.Validation("short code is required"))
		return
	}

	force := r.URL.Query().Get("force") == "true"
	img, err := h.Svc.Regenerate(r.Context(), code, targetType(r), force)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	writeImage(w, img)
}

type qrCreatePayload struct {
	URL             string `json:"url"`
	Size            int    `json:"size,omitempty"`
	ForceRegenerate bool   `json:"force_regenerate,omitempty"`
}

// Create handles POST /qr: render a QR image for an arbitrary URL.
func (h *QRHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var payload qrCreatePayload
	if !DecodeJSON(w, r, &payload) {
		return
	}
	if payload.URL == "" {
		WriteError(w, http.StatusBadRequest, "url is required")
		return
	}

	img, err := h.Svc.Create(r.Context(), model.QRCodeRequest{
		URL:             payload.URL,
		Size:            payload.Size,
		ForceRegenerate: payload.ForceRegenerate,
	})
	if err != nil {
		WriteAppError(w, err)
		return
	}
	writeImage(w, img)
}

func writeImage(w http.ResponseWriter, img ports.QRImage) {
	ct := img.ContentType
	if ct == "" {
		ct = "image/png"
	}
	w.Header().Set("Content-Type", ct)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(img.Data)
}

// targetType reads the url_type query parameter, defaulting to the
// shortened URL.
func targetType(r *http.Request) model.QRTargetType {
	if r.URL.Query().Get("url_type") == string(model.QRTargetOriginal) {
		return model.QRTargetOriginal
	}
	return model.QRTargetShortened
}
