package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/linkly/linkly-ui/internal/domain/model"
	"github.com/linkly/linkly-ui/internal/ports"
)

// QRServiceOptions groups dependencies for QRService.
type QRServiceOptions struct {
	API    ports.Client
	Logger *slog.Logger
}

// QRService wraps the QR listing and image proxy operations. Image rendering
// happens server-side; this service only passes the binary payload through.
type QRService struct {
	api    ports.Client
	logger *slog.Logger

	mu      sync.RWMutex
	lastErr string
}

// NewQRService constructs a QRService.
func NewQRService(opts QRServiceOptions) *QRService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &QRService{api: opts.API, logger: logger}
}

// LastError returns the user-facing message from the most recent failure.
func (s *QRService) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

func (s *QRService) setError(msg string) {
	s.mu.Lock()
	s.lastErr = msg
	s.mu.Unlock()
}

// FetchQRCodes lists generated QR codes.
func (s *QRService) FetchQRCodes(ctx context.Context, search string) ([]model.QRCode, error) {
	codes, err := s.api.ListQRCodes(ctx, search)
	if err != nil {
		s.setError(userMessage(err, "Failed to fetch QR codes"))
		return nil, err
	}
	s.setError("")
	return codes, nil
}

// Info fetches the descriptive payload for a short code's QR variant.
func (s *QRService) Info(ctx context.Context, code string, urlType model.QRTargetType) (model.QRInfo, error) {
	info, err := s.api.QRInfo(ctx, code, urlType)
	if err != nil {
		s.setError(userMessage(err, "Failed to fetch QR code info"))
		return model.QRInfo{}, err
	}
	s.setError("")
	return info, nil
}

// Regenerate proxies a freshly rendered QR image for a short code.
func (s *QRService) Regenerate(ctx context.Context, code string, urlType model.QRTargetType, force bool) (ports.QRImage, error) {
	img, err := s.api.RegenerateQR(ctx, code, urlType, force)
	if err != nil {
		s.setError(userMessage(err, "Failed to regenerate QR code"))
		return ports.QRImage{}, err
	}
	s.setError("")
	return img, nil
}

// Create proxies a directly rendered QR image for an arbitrary URL.
func (s *QRService) Create(ctx context.Context, req model.QRCodeRequest) (ports.QRImage, error) {
	if err := ValidateTargetURL(req.URL); err != nil {
		s.setError(err.Error())
		return ports.QRImage{}, err
	}

	img, err := s.api.CreateQR(ctx, req)
	if err != nil {
		s.setError(userMessage(err, "Failed to generate QR code"))
		return ports.QRImage{}, err
	}
	s.setError("")
	return img, nil
}
