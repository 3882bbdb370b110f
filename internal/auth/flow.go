package auth

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/ytpl/internal/server"
	"github.com/desertthunder/ytpl/internal/shared"
	"golang.org/x/oauth2"
)

// Interactive runs the browser-based authorization code flow.
//
// Starts a temporary callback server on the given localhost port, opens the
// consent screen in the user's browser, and blocks until the callback
// delivers a token or ctx is done. The returned error preserves
// [shared.ErrConsentDeclined] when the user backs out of the consent screen.
func Interactive(ctx context.Context, config *oauth2.Config, port int, logger *log.Logger) (*Credential, error) {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	state := shared.GenerateID()
	handler := server.NewOAuthHandler(config, state)

	router := server.NewBasicRouter()
	router.Handler(handler)

	srv := &http.Server{
		Addr:              fmt.Sprintf("127.0.0.1:%d", port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	authURL := config.AuthCodeURL(state, oauth2.AccessTypeOffline)
	if err := shared.OpenBrowser(authURL); err != nil {
		logger.Warnf("could not open browser: %v", err)
		logger.Infof("open this URL to sign in: %s", authURL)
	}

	select {
	case result := <-handler.Result():
		if err := result.Error(); err != nil {
			return nil, err
		}
		return &Credential{Token: result.Token}, nil
	case err := <-errChan:
		return nil, fmt.Errorf("callback server failed: %w", err)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
