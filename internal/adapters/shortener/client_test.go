package shortener

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	memorystore "github.com/linkly/linkly-ui/internal/adapters/memory"
	"github.com/linkly/linkly-ui/internal/domain/model"
	apperrors "github.com/linkly/linkly-ui/internal/errors"
	"github.com/linkly/linkly-ui/internal/ports"
)

func TestClient_AttachesArmedBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := New(Options{BaseURL: server.URL})
	client.SetToken("tok-armed")

	_, err := client.ListURLs(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-armed", gotAuth)
}

func TestClient_FallsBackToStoredToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	storage := memorystore.NewStorage()
	require.NoError(t, storage.Set(context.Background(), ports.KeyToken, "tok-stored"))

	client := New(Options{BaseURL: server.URL, Storage: storage})

	_, err := client.ListURLs(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-stored", gotAuth)
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"token":"t","user":{"username":"amy","roles":[]}}`))
	}))
	defer server.Close()

	client := New(Options{BaseURL: server.URL})

	_, err := client.Login(context.Background(), model.Credentials{Username: "amy", Password: "pw"})
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_Login_DecodesCanonicalResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)

		var creds model.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "amy", creds.Username)

		_, _ = w.Write([]byte(`{"token":"tok","user":{"username":"amy","roles":["SuperUser"]}}`))
	}))
	defer server.Close()

	client := New(Options{BaseURL: server.URL})
	resp, err := client.Login(context.Background(), model.Credentials{Username: "amy", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "tok", resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, []string{"SuperUser"}, resp.User.Roles)
}

func TestClient_ErrorBodyMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		check   func(error) bool
		message string
	}{
		{
			name: "401 unauthorized", status: http.StatusUnauthorized,
			body: `{"error":"invalid credentials"}`, check: apperrors.IsUnauthorized,
			message: "invalid credentials",
		},
		{
			name: "403 forbidden", status: http.StatusForbidden,
			body: `{"error":"missing permission"}`, check: apperrors.IsForbidden,
			message: "missing permission",
		},
		{
			name: "404 not found", status: http.StatusNotFound,
			body: `{"error":"no such code"}`, check: apperrors.IsNotFound,
			message: "no such code",
		},
		{
			name: "409 conflict", status: http.StatusConflict,
			body: `{"error":"username already taken"}`, check: apperrors.IsConflict,
			message: "username already taken",
		},
		{
			name: "422 validation", status: http.StatusUnprocessableEntity,
			body: `{"error":"url is invalid"}`, check: apperrors.IsValidation,
			message: "url is invalid",
		},
		{
			name: "500 internal without body", status: http.StatusInternalServerError,
			body: `boom`, check: apperrors.IsInternal,
			message: "shortener API returned 500 Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := New(Options{BaseURL: server.URL})
			_, err := client.ListURLs(context.Background(), "")
			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected code for %v", err)

			var appErr *apperrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.message, appErr.Message)
		})
	}
}

func TestClient_TransportFailureIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // connection refused from here on

	client := New(Options{BaseURL: server.URL})
	_, err := client.ListURLs(context.Background(), "")
	require.Error(t, err)
	assert.True(t, apperrors.IsUnavailable(err))
}

func TestClient_RegenerateQR_BinaryPayload(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G'}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/qr/abc/regenerate", r.URL.Path)
		assert.Equal(t, "shortened", r.URL.Query().Get("url_type"))
		assert.Equal(t, "true", r.URL.Query().Get("force"))
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(png)
	}))
	defer server.Close()

	client := New(Options{BaseURL: server.URL})
	img, err := client.RegenerateQR(context.Background(), "abc", model.QRTargetShortened, true)
	require.NoError(t, err)
	assert.Equal(t, "image/png", img.ContentType)
	assert.Equal(t, png, img.Data)
}

func TestClient_SearchQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "docs", r.URL.Query().Get("search"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := New(Options{BaseURL: server.URL})
	_, err := client.ListQRCodes(context.Background(), "docs")
	require.NoError(t, err)
}

func TestClient_DeleteUser_DiscardsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/users/42", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := New(Options{BaseURL: server.URL})
	require.NoError(t, client.DeleteUser(context.Background(), "42"))
}
