package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/desertthunder/ytpl/internal/shared"
	"github.com/urfave/cli/v3"
)

// AuthLogin signs the user in, reusing the stored credential when possible.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	r.logger.Info("signing in")

	if err := r.client.Authenticate(ctx); err != nil {
		switch {
		case errors.Is(err, shared.ErrMissingSecret):
			r.writePlain("✗ Client secret file not found.\n")
			r.writePlain("Download an OAuth client secret from the Google Cloud Console and\n")
			r.writePlain("set credentials.client_secret_file in config.toml.\n")
		case errors.Is(err, shared.ErrConsentDeclined):
			r.writePlain("✗ Sign-in was declined in the browser.\n")
		}
		return fmt.Errorf("authentication failed: %w", err)
	}

	profile, err := r.client.Profile(ctx)
	if err != nil {
		r.writePlain("✓ Signed in\n")
		r.logger.Warn("failed to fetch channel profile", "error", err)
		return nil
	}

	r.writePlain("✓ Signed in as %s\n", profile.Title)
	return nil
}

// AuthStatus reports the session state and whether a credential is stored.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	r.writePlain("Session: %s\n", r.client.State())

	store := r.client.Store()
	if store == nil {
		r.writePlain("Credential store: not configured\n")
		return nil
	}

	cred, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to read credential store: %w", err)
	}

	switch {
	case cred == nil:
		r.writePlain("Stored credential: none (%s)\n", store.Path())
	case cred.Usable():
		r.writePlain("Stored credential: valid until %s\n", cred.Expiry.Format("2006-01-02 15:04:05"))
	case cred.Refreshable():
		r.writePlain("Stored credential: expired, refresh token available\n")
	default:
		r.writePlain("Stored credential: expired\n")
	}

	return nil
}

// AuthLogout ends the session and removes the stored credential.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	r.client.Logout()
	return r.writePlain("✓ Signed out\n")
}
