package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/ytpl/internal/shared"
	"github.com/urfave/cli/v3"
)

// APIGet performs a raw GET against the YouTube Data API and prints the response.
//
// Debugging aid: the path is relative to the API base (e.g. "channels?part=snippet&mine=true")
// and the response body is printed verbatim. Raw calls are not included in the
// session's quota estimate.
func (r *Runner) APIGet(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("path")
	if path == "" {
		return fmt.Errorf("%w: path", shared.ErrMissingArgument)
	}

	if err := r.ensureSession(ctx); err != nil {
		return err
	}

	body, err := r.client.Raw(ctx, path)
	if err != nil {
		return err
	}

	return r.writePlain("%s\n", string(body))
}
