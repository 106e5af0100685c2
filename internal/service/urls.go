package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/url"
	"strings"
	"sync"

	jmespath "github.com/jmespath-community/go-jmespath"
	"golang.org/x/net/publicsuffix"

	"github.com/linkly/linkly-ui/internal/domain/model"
	apperrors "github.com/linkly/linkly-ui/internal/errors"
	"github.com/linkly/linkly-ui/internal/ports"
)

// ownedFilter keeps only entries belonging to the calling user; the listing
// endpoint returns every visible URL and the client narrows it down.
const ownedFilter = "[?owned_by_current_user]"

// JMESPathEvaluator abstracts JMESPath operations for testability.
type JMESPathEvaluator interface {
	Validate(expr string) error
	Evaluate(expr string, data any) (any, error)
}

// jmespathLibEvaluator implements JMESPathEvaluator using go-jmespath.
type jmespathLibEvaluator struct{}

func (j jmespathLibEvaluator) Validate(expr string) error {
	if strings.TrimSpace(expr) == "" {
		return nil
	}
	_, err := jmespath.Compile(expr)
	return err
}

func (j jmespathLibEvaluator) Evaluate(expr string, data any) (any, error) {
	return jmespath.Search(expr, data)
}

// URLServiceOptions groups dependencies for URLService.
type URLServiceOptions struct {
	API       ports.Client
	Evaluator JMESPathEvaluator
	Logger    *slog.Logger
}

// URLService wraps the shortening, listing, and analytics operations. API
// failures are captured as a user-facing LastError and returned; nothing
// panics or escapes past the service boundary.
type URLService struct {
	api    ports.Client
	jems   JMESPathEvaluator
	logger *slog.Logger

	mu      sync.RWMutex
	lastErr string
}

// NewURLService constructs a URLService.
func NewURLService(opts URLServiceOptions) *URLService {
	jems := opts.Evaluator
	if jems == nil {
		jems = jmespathLibEvaluator{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &URLService{api: opts.API, jems: jems, logger: logger}
}

// LastError returns the user-facing message from the most recent failure.
func (s *URLService) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

func (s *URLService) setError(msg string) {
	s.mu.Lock()
	s.lastErr = msg
	s.mu.Unlock()
}

// FetchURLs lists the caller's shortened URLs, filtered client-side to
// caller-owned entries.
func (s *URLService) FetchURLs(ctx context.Context, search string) ([]model.ShortenedURL, error) {
	urls, err := s.api.ListURLs(ctx, search)
	if err != nil {
		s.setError(userMessage(err, "Failed to fetch URLs"))
		return nil, err
	}

	owned, err := filterRecords(s.jems, ownedFilter, urls)
	if err != nil {
		// Filtering is best-effort; fall back to the unfiltered listing.
		s.logger.WarnContext(ctx, "owned-entry filter failed", "error", err)
		owned = urls
	}
	s.setError("")
	return owned, nil
}

// Shorten validates the target URL and asks the API for a short code.
func (s *URLService) Shorten(ctx context.Context, target string, expiresInDays int) (model.ShortenResponse, error) {
	if err := ValidateTargetURL(target); err != nil {
		s.setError(err.Error())
		return model.ShortenResponse{}, err
	}

	resp, err := s.api.Shorten(ctx, model.ShortenRequest{URL: target, ExpiresInDays: expiresInDays})
	if err != nil {
		s.setError(userMessage(err, "Failed to shorten URL"))
		return model.ShortenResponse{}, err
	}
	s.setError("")
	return resp, nil
}

// Analytics fetches the analytics record for a short code.
func (s *URLService) Analytics(ctx context.Context, code string) (model.URLAnalytics, error) {
	resp, err := s.api.Analytics(ctx, code)
	if err != nil {
		s.setError(userMessage(err, "Failed to fetch analytics"))
		return model.URLAnalytics{}, err
	}
	s.setError("")
	return resp, nil
}

// ValidateTargetURL accepts absolute http(s) URLs whose host is an IP,
// localhost, or a name under a known public suffix. It rejects bare words and
// schemeless input before they reach the API.
func ValidateTargetURL(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return apperrors.Validation("invalid URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return apperrors.Validation("URL must use http or https")
	}
	host := u.Hostname()
	if host == "" {
		return apperrors.Validation("URL is missing a host")
	}
	if host == "localhost" || net.ParseIP(host) != nil {
		return nil
	}
	if _, err := publicsuffix.EffectiveTLDPlusOne(host); err != nil {
		return apperrors.Validationf("URL host %q has no registrable domain", host)
	}
	return nil
}

// filterRecords applies a JMESPath filter over records by round-tripping them
// through their JSON form, which is what the expression addresses.
func filterRecords[T any](jems JMESPathEvaluator, expr string, records []T) ([]T, error) {
	raw, err := json.Marshal(records)
	if err != nil {
		return nil, err
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, err
	}

	result, err := jems.Evaluate(expr, generic)
	if err != nil {
		return nil, err
	}

	filtered, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}
	var out []T
	if err := json.Unmarshal(filtered, &out); err != nil {
		return nil, err
	}
	return out, nil
}
