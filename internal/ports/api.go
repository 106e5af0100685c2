package ports

import (
	"context"

	"github.com/linkly/linkly-ui/internal/domain/model"
)

// Client is the boundary to the remote shortener API. Every call after login
// carries the session's bearer token; SetToken arms the default Authorization
// header immediately and ClearToken disarms it.
type Client interface {
	// SetToken arms the bearer token used for subsequent requests.
	SetToken(token string)
	// ClearToken removes the armed bearer token.
	ClearToken()

	Login(ctx context.Context, creds model.Credentials) (model.AuthResponse, error)
	Signup(ctx context.Context, creds model.Credentials) (model.AuthResponse, error)

	Shorten(ctx context.Context, req model.ShortenRequest) (model.ShortenResponse, error)
	ListURLs(ctx context.Context, search string) ([]model.ShortenedURL, error)
	Analytics(ctx context.Context, code string) (model.URLAnalytics, error)

	QRInfo(ctx context.Context, code string, urlType model.QRTargetType) (model.QRInfo, error)
	RegenerateQR(ctx context.Context, code string, urlType model.QRTargetType, force bool) (QRImage, error)
	CreateQR(ctx context.Context, req model.QRCodeRequest) (QRImage, error)
	ListQRCodes(ctx context.Context, search string) ([]model.QRCode, error)

	ListUsers(ctx context.Context) ([]model.User, error)
	CreateUser(ctx context.Context, req model.CreateUserRequest) (model.User, error)
	UpdateUser(ctx context.Context, id string, req model.CreateUserRequest) (model.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// QRImage is a binary image payload proxied from the API.
type QRImage struct {
	ContentType string
	Data        []byte
}
