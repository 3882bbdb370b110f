package auth

import (
	"errors"
	"fmt"
	"os"

	"github.com/desertthunder/ytpl/internal/shared"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Scope grants full playlist management; search and playlistItems mutations
// both require it.
const Scope = "https://www.googleapis.com/auth/youtube"

// LoadClientSecret reads an OAuth client secret file downloaded from the
// Google Cloud Console and returns the [oauth2.Config] for the authorization
// code flow.
//
// The file is supplied by the operator out-of-band. Its absence is a distinct,
// user-actionable condition ([shared.ErrMissingSecret]) so the UI can point at
// the expected location instead of showing a generic sign-in failure.
func LoadClientSecret(path string, redirectURL string) (*oauth2.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: expected at %s (download it from the Google Cloud Console)", shared.ErrMissingSecret, path)
		}
		return nil, fmt.Errorf("failed to read client secret file: %w", err)
	}

	config, err := google.ConfigFromJSON(data, Scope)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse client secret file %s: %v", shared.ErrInvalidConfig, path, err)
	}

	config.RedirectURL = redirectURL
	return config, nil
}
