package httpx

import (
	"log/slog"
	"net/http"

	"github.com/linkly/linkly-ui/internal/domain/route"
	"github.com/linkly/linkly-ui/internal/service"
)

// RouterServices holds the services the HTTP router needs.
type RouterServices struct {
	Sessions *service.SessionService
	URLs     *service.URLService
	QR       *service.QRService
	Users    *service.UserService
	Logger   *slog.Logger
}

// NewRouter builds the HTTP handler graph: handlers per feature, each gated
// by the admission rules of its destination.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	sessionHandlers := &SessionHandlers{Svc: services.Sessions, Logger: services.Logger}
	urlHandlers := &URLHandlers{Svc: services.URLs, Logger: services.Logger}
	qrHandlers := &QRHandlers{Svc: services.QR, Logger: services.Logger}
	userHandlers := &UserHandlers{Svc: services.Users, Logger: services.Logger}
	dashHandlers := &DashboardHandlers{URLs: services.URLs, QR: services.QR, Logger: services.Logger}

	registerSessionRoutes(mux, sessionHandlers, services.Sessions)
	registerURLRoutes(mux, urlHandlers, services.Sessions)
	registerQRRoutes(mux, qrHandlers, services.Sessions)
	registerUserRoutes(mux, userHandlers, services.Sessions)
	registerDashboardRoutes(mux, dashHandlers, services.Sessions)

	mux.Handle("GET /healthz", http.HandlerFunc(Health))
	mux.Handle("HEAD /healthz", http.HandlerFunc(Health))

	return mux
}

// gate wraps a handler with the admission check for a named destination.
// Unknown names panic at startup rather than shipping an unguarded route.
func gate(sessions SessionSource, name route.Name, h http.HandlerFunc) http.Handler {
	intent, ok := route.Lookup(name)
	if !ok {
		panic("unknown route destination: " + string(name))
	}
	return Guard(sessions, intent)(h)
}

func registerSessionRoutes(mux *http.ServeMux, h *SessionHandlers, sessions SessionSource) {
	mux.Handle("GET /login", gate(sessions, route.Login, h.LoginPage))
	mux.Handle("POST /login", gate(sessions, route.Login, h.Login))
	mux.Handle("POST /signup", gate(sessions, route.Login, h.Signup))
	mux.Handle("POST /logout", http.HandlerFunc(h.Logout))
	mux.Handle("GET /session", http.HandlerFunc(h.Status))
}

func registerURLRoutes(mux *http.ServeMux, h *URLHandlers, sessions SessionSource) {
	mux.Handle("GET /urls", gate(sessions, route.URLs, h.List))
	mux.Handle("POST /shorten", gate(sessions, route.Shorten, h.Shorten))
	mux.Handle("GET /analytics", gate(sessions, route.Analytics, h.Analytics))
	mux.Handle("GET /analytics/{code}", gate(sessions, route.Analytics, h.Analytics))
}

func registerQRRoutes(mux *http.ServeMux, h *QRHandlers, sessions SessionSource) {
	mux.Handle("GET /qr-codes", gate(sessions, route.QRCodes, h.List))
	mux.Handle("GET /qr-generator/{code}/info", gate(sessions, route.QRGenerator, h.Info))
	mux.Handle("GET /qr-generator/{code}/image", gate(sessions, route.QRGenerator, h.Image))
	mux.Handle("POST /qr", gate(sessions, route.QRGenerator, h.Create))
}

func registerUserRoutes(mux *http.ServeMux, h *UserHandlers, sessions SessionSource) {
	mux.Handle("GET /users", gate(sessions, route.Users, h.List))
	mux.Handle("POST /users", gate(sessions, route.Users, h.Create))
	mux.Handle("PUT /users/{id}", gate(sessions, route.Users, h.Update))
	mux.Handle("DELETE /users/{id}", gate(sessions, route.Users, h.Delete))
}

func registerDashboardRoutes(mux *http.ServeMux, h *DashboardHandlers, sessions SessionSource) {
	mux.Handle("GET /{$}", gate(sessions, route.Home, h.Home))
}
