package httpx

import (
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/linkly/linkly-ui/internal/domain/auth"
	"github.com/linkly/linkly-ui/internal/domain/model"
	"github.com/linkly/linkly-ui/internal/service"
)

// DashboardHandlers renders the home summary: the sections the signed-in
// account may see, fetched concurrently.
type DashboardHandlers struct {
	URLs   *service.URLService
	QR     *service.QRService
	Logger *slog.Logger
}

// Home handles GET /. Sections the session lacks permission for are omitted
// rather than erroring.
func (h *DashboardHandlers) Home(w http.ResponseWriter, r *http.Request) {
	sess, _ := SessionFromContext(r.Context())

	var (
		urls []model.ShortenedURL
		qrs  []model.QRCode
	)

	g, ctx := errgroup.WithContext(r.Context())
	if sess.HasPermission(auth.PermViewURL) {
		g.Go(func() error {
			var err error
			urls, err = h.URLs.FetchURLs(ctx, "")
			return err
		})
	}
	if sess.HasPermission(auth.PermViewQR) {
		g.Go(func() error {
			var err error
			qrs, err = h.QR.FetchQRCodes(ctx, "")
			return err
		})
	}
	if err := g.Wait(); err != nil {
		WriteAppError(w, err)
		return
	}

	payload := map[string]any{
		"username": "",
	}
	if sess.Identity != nil {
		payload["username"] = sess.Identity.Username
	}
	if sess.HasPermission(auth.PermViewURL) {
		payload["urls"] = summarizeURLs(urls)
	}
	if sess.HasPermission(auth.PermViewQR) {
		payload["qr_codes"] = map[string]any{"total": len(qrs)}
	}
	WriteJSON(w, http.StatusOK, payload)
}

func summarizeURLs(urls []model.ShortenedURL) map[string]any {
	var clicks int64
	owned := 0
	for _, u := range urls {
		clicks += u.Clicks
		if u.OwnedByCurrentUser {
			owned++
		}
	}
	return map[string]any{
		"total":        len(urls),
		"owned":        owned,
		"total_clicks": clicks,
	}
}
