package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/desertthunder/ytpl/internal/shared"
	"golang.org/x/oauth2"
)

func TestBasicRouter(t *testing.T) {
	t.Run("routes by method", func(t *testing.T) {
		router := NewBasicRouter()
		router.Handle(http.MethodGet, "/ping", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("pong"))
		}))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if rec.Code != http.StatusOK || rec.Body.String() != "pong" {
			t.Errorf("unexpected response: %d %q", rec.Code, rec.Body.String())
		}

		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/ping", nil))
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("expected 405 for wrong method, got %d", rec.Code)
		}
	})

	t.Run("applies middleware in registration order", func(t *testing.T) {
		router := NewBasicRouter()
		var order []string

		for _, name := range []string{"first", "second"} {
			name := name
			router.Use(func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					order = append(order, name)
					next.ServeHTTP(w, r)
				})
			})
		}

		router.Handle(http.MethodGet, "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		if len(order) != 2 || order[0] != "first" || order[1] != "second" {
			t.Errorf("unexpected middleware order: %v", order)
		}
	})
}

func TestOAuthHandler(t *testing.T) {
	newConfig := func(tokenURL string) *oauth2.Config {
		return &oauth2.Config{
			ClientID:     "client",
			ClientSecret: "secret",
			Endpoint:     oauth2.Endpoint{TokenURL: tokenURL},
			RedirectURL:  "http://127.0.0.1:3000/callback",
		}
	}

	t.Run("exchanges the code and reports success", func(t *testing.T) {
		tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{
				"access_token": "at-1",
				"token_type":   "Bearer",
				"expires_in":   3600,
			})
		}))
		defer tokenServer.Close()

		handler := NewOAuthHandler(newConfig(tokenServer.URL), "state-token")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/callback?state=state-token&code=auth-code", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Sign-in Complete") {
			t.Errorf("expected completion page, got %q", rec.Body.String())
		}

		result := <-handler.Result()
		if result.Error() != nil {
			t.Fatalf("unexpected error: %v", result.Error())
		}
		if result.Token == nil || result.Token.AccessToken != "at-1" {
			t.Errorf("unexpected token: %+v", result.Token)
		}
	})

	t.Run("rejects a mismatched state token", func(t *testing.T) {
		handler := NewOAuthHandler(newConfig("http://unused"), "expected")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/callback?state=forged&code=auth-code", nil))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}

		result := <-handler.Result()
		if result.Error() == nil {
			t.Fatal("expected state mismatch error")
		}
	})

	t.Run("maps access_denied to a declined consent error", func(t *testing.T) {
		handler := NewOAuthHandler(newConfig("http://unused"), "state-token")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/callback?state=state-token&error=access_denied", nil))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}

		result := <-handler.Result()
		if !errors.Is(result.Error(), shared.ErrConsentDeclined) {
			t.Errorf("expected ErrConsentDeclined, got %v", result.Error())
		}
		if !errors.Is(result.Error(), shared.ErrCredentialInvalid) {
			t.Errorf("expected declined consent to match ErrCredentialInvalid, got %v", result.Error())
		}
	})

	t.Run("handles the callback only once", func(t *testing.T) {
		handler := NewOAuthHandler(newConfig("http://unused"), "state-token")

		first := httptest.NewRecorder()
		handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/callback?state=state-token&error=access_denied", nil))

		second := httptest.NewRecorder()
		handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/callback?state=state-token&code=auth-code", nil))

		if second.Code != http.StatusBadRequest {
			t.Errorf("expected repeat callback to be rejected, got %d", second.Code)
		}
		if !strings.Contains(second.Body.String(), "already processed") {
			t.Errorf("unexpected body: %q", second.Body.String())
		}
	})

	t.Run("Routes serves the callback path", func(t *testing.T) {
		handler := NewOAuthHandler(newConfig("http://unused"), "s")
		routes := handler.Routes()
		if len(routes) != 1 || routes[0] != "/callback" {
			t.Errorf("unexpected routes: %v", routes)
		}
	})
}
