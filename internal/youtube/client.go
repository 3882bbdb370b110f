package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/ytpl/internal/auth"
	"github.com/desertthunder/ytpl/internal/quota"
	"github.com/desertthunder/ytpl/internal/shared"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://www.googleapis.com/youtube/v3"

// SessionState tracks where the client is in its authentication lifecycle.
type SessionState int

const (
	Unauthenticated SessionState = iota
	Authenticating
	Authenticated
)

func (s SessionState) String() string {
	switch s {
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// Client wraps the YouTube Data API v3 with credential management and
// session-local quota estimation.
//
// A Client owns one session at a time: authenticate replaces the active
// credential wholesale and logout clears it. Operations are synchronous and
// the Client is not safe for concurrent use; callers wanting responsiveness
// offload to their own goroutine and serialize access.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	store        *auth.Store
	secretFile   string
	callbackPort int
	pageSize     int

	config    *oauth2.Config
	cred      *auth.Credential
	estimator *quota.Estimator
	limiter   *rate.Limiter
	logger    *log.Logger
	state     SessionState

	// flow runs the interactive sign-in; replaced in tests.
	flow func(ctx context.Context, config *oauth2.Config, port int, logger *log.Logger) (*auth.Credential, error)
}

// Options configures a [Client].
type Options struct {
	BaseURL      string
	HTTPClient   *http.Client
	Store        *auth.Store
	SecretFile   string
	CallbackPort int
	PageSize     int
	Logger       *log.Logger
}

// NewClient creates an unauthenticated client.
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.HTTPClient == nil {
		// Transport-level default, not a caller-tunable contract.
		opts.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.CallbackPort == 0 {
		opts.CallbackPort = 3000
	}
	if opts.PageSize <= 0 || opts.PageSize > 50 {
		opts.PageSize = 50
	}

	return &Client{
		baseURL:      opts.BaseURL,
		httpClient:   opts.HTTPClient,
		store:        opts.Store,
		secretFile:   opts.SecretFile,
		callbackPort: opts.CallbackPort,
		pageSize:     opts.PageSize,
		estimator:    quota.NewEstimator(),
		limiter:      rate.NewLimiter(rate.Limit(10), 5),
		logger:       opts.Logger,
		state:        Unauthenticated,
		flow:         auth.Interactive,
	}
}

// State returns the current session state.
func (c *Client) State() SessionState {
	return c.state
}

// Store exposes the credential store, nil when none was configured.
func (c *Client) Store() *auth.Store {
	return c.store
}

// Usage returns the session's estimated quota unit total.
func (c *Client) Usage() int {
	return c.estimator.Total()
}

// UsageByOp returns the session's per-operation quota breakdown.
func (c *Client) UsageByOp() map[quota.Op]int {
	return c.estimator.ByOp()
}

// Authenticate obtains a usable credential and transitions the client to the
// authenticated state.
//
// Order of attempts: persisted credential as-is, persisted credential via the
// single expired→refresh path, then the interactive browser flow. Any failure
// to produce a credential satisfies errors.Is(err, shared.ErrCredentialInvalid);
// a missing client secret file and a declined consent screen stay
// distinguishable via [shared.ErrMissingSecret] and [shared.ErrConsentDeclined].
func (c *Client) Authenticate(ctx context.Context) error {
	c.state = Authenticating

	cred, err := c.store.Load()
	if err != nil {
		c.state = Unauthenticated
		return fmt.Errorf("%w: %v", shared.ErrCredentialInvalid, err)
	}

	if cred.Usable() {
		c.startSession(cred)
		return nil
	}

	if cred.Refreshable() {
		config, err := c.clientConfig()
		if err != nil {
			c.state = Unauthenticated
			return err
		}
		if renewed, err := c.store.EnsureValid(ctx, config, cred); err == nil {
			c.startSession(renewed)
			return nil
		}
		c.logger.Warn("token refresh failed, falling back to interactive sign-in")
	}

	config, err := c.clientConfig()
	if err != nil {
		c.state = Unauthenticated
		return err
	}

	cred, err = c.flow(ctx, config, c.callbackPort, c.logger)
	if err != nil {
		c.state = Unauthenticated
		if errors.Is(err, shared.ErrCredentialInvalid) {
			return err
		}
		return fmt.Errorf("%w: %v", shared.ErrCredentialInvalid, err)
	}

	if err := c.store.Save(cred); err != nil {
		c.logger.Warnf("failed to persist credential: %v", err)
	}

	c.startSession(cred)
	return nil
}

// startSession installs cred as the single active credential and opens a
// fresh usage ledger.
func (c *Client) startSession(cred *auth.Credential) {
	c.cred = cred
	c.estimator.Reset()
	c.state = Authenticated
}

// clientConfig lazily loads the OAuth config from the operator-supplied
// client secret file.
func (c *Client) clientConfig() (*oauth2.Config, error) {
	if c.config != nil {
		return c.config, nil
	}

	redirect := fmt.Sprintf("http://127.0.0.1:%d/callback", c.callbackPort)
	config, err := auth.LoadClientSecret(c.secretFile, redirect)
	if err != nil {
		return nil, err
	}

	c.config = config
	return config, nil
}

// Logout clears the active credential, resets the usage ledger, and deletes
// the persisted credential. Never fails the caller: persistence-deletion
// errors are logged and swallowed.
func (c *Client) Logout() {
	c.cred = nil
	c.state = Unauthenticated
	c.estimator.Reset()

	if c.store != nil {
		if err := c.store.Delete(); err != nil {
			c.logger.Warnf("failed to delete persisted credential: %v", err)
		}
	}
}

// Profile returns the signed-in user's channel identifier and display title.
func (c *Client) Profile(ctx context.Context) (*Channel, error) {
	if err := c.requireSession(); err != nil {
		return nil, err
	}

	c.estimator.Record(quota.OpChannelsList)

	query := url.Values{"part": {"snippet"}, "mine": {"true"}}

	var resp channelListResponse
	if err := c.doRequest(ctx, http.MethodGet, "/channels", query, nil, &resp); err != nil {
		return nil, err
	}

	if len(resp.Items) == 0 {
		return &Channel{}, nil
	}

	return &Channel{ID: resp.Items[0].ID, Title: resp.Items[0].Snippet.Title}, nil
}

// Playlists returns every playlist the user owns, pagination fully resolved,
// deduplicated by identifier with order preserved.
func (c *Client) Playlists(ctx context.Context) ([]Playlist, error) {
	if err := c.requireSession(); err != nil {
		return nil, err
	}

	c.estimator.Record(quota.OpPlaylistsList)

	playlists, err := CollectPages(ctx, func(ctx context.Context, pageToken string) ([]Playlist, string, error) {
		query := url.Values{
			"part":       {"snippet,contentDetails,status"},
			"mine":       {"true"},
			"maxResults": {strconv.Itoa(c.pageSize)},
		}
		if pageToken != "" {
			query.Set("pageToken", pageToken)
		}

		var resp playlistListResponse
		if err := c.doRequest(ctx, http.MethodGet, "/playlists", query, nil, &resp); err != nil {
			return nil, "", err
		}

		page := make([]Playlist, len(resp.Items))
		for i, item := range resp.Items {
			page[i] = Playlist{
				ID:        item.ID,
				Title:     item.Snippet.Title,
				ItemCount: item.ContentDetails.ItemCount,
				Privacy:   item.Status.PrivacyStatus,
			}
		}
		return page, resp.NextPageToken, nil
	})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(playlists))
	deduped := playlists[:0]
	for _, pl := range playlists {
		if seen[pl.ID] {
			continue
		}
		seen[pl.ID] = true
		deduped = append(deduped, pl)
	}

	return deduped, nil
}

// PlaylistItems returns the membership records of a playlist, pagination
// fully resolved, in the order the API returned them.
func (c *Client) PlaylistItems(ctx context.Context, playlistID string) ([]PlaylistItem, error) {
	if err := c.requireSession(); err != nil {
		return nil, err
	}
	if playlistID == "" {
		return nil, fmt.Errorf("%w: playlist id", shared.ErrMissingArgument)
	}

	c.estimator.Record(quota.OpPlaylistItemsList)

	return CollectPages(ctx, func(ctx context.Context, pageToken string) ([]PlaylistItem, string, error) {
		query := url.Values{
			"part":       {"snippet,contentDetails"},
			"playlistId": {playlistID},
			"maxResults": {strconv.Itoa(c.pageSize)},
		}
		if pageToken != "" {
			query.Set("pageToken", pageToken)
		}

		var resp playlistItemListResponse
		if err := c.doRequest(ctx, http.MethodGet, "/playlistItems", query, nil, &resp); err != nil {
			return nil, "", err
		}

		page := make([]PlaylistItem, len(resp.Items))
		for i, item := range resp.Items {
			page[i] = PlaylistItem{
				ID:       item.ID,
				VideoID:  item.ContentDetails.VideoID,
				Title:    item.Snippet.Title,
				Position: item.Snippet.Position,
			}
		}
		return page, resp.NextPageToken, nil
	})
}

// InsertItem adds a video to a playlist.
//
// No client-side dedup: whether adding an already-present video creates a
// duplicate entry is the remote service's call.
func (c *Client) InsertItem(ctx context.Context, playlistID, videoID string) error {
	if err := c.requireSession(); err != nil {
		return err
	}
	if playlistID == "" {
		return fmt.Errorf("%w: playlist id", shared.ErrMissingArgument)
	}
	if videoID == "" {
		return fmt.Errorf("%w: video id", shared.ErrMissingArgument)
	}

	c.estimator.Record(quota.OpPlaylistItemsInsert)

	query := url.Values{"part": {"snippet"}}
	return c.doRequest(ctx, http.MethodPost, "/playlistItems", query, newInsertBody(playlistID, videoID), nil)
}

// DeleteItem removes a membership record from its playlist.
//
// itemID is the playlistItem identifier, not the video identifier. An
// already-removed record yields [shared.ErrNotFound].
func (c *Client) DeleteItem(ctx context.Context, itemID string) error {
	if err := c.requireSession(); err != nil {
		return err
	}
	if itemID == "" {
		return fmt.Errorf("%w: playlist item id", shared.ErrMissingArgument)
	}

	c.estimator.Record(quota.OpPlaylistItemsDelete)

	query := url.Values{"id": {itemID}}
	return c.doRequest(ctx, http.MethodDelete, "/playlistItems", query, nil, nil)
}

// MoveItem moves a video between playlists: insert into target, then delete
// from source, in that order.
//
// The two calls hit independent remote resources and cannot be atomic. If the
// insert succeeds and the delete fails, the video is present in both
// playlists; the returned MoveResult reports Inserted=true, Deleted=false and
// the error wraps [shared.ErrPartialMove] so callers know the insert already
// happened. No compensating rollback is attempted.
func (c *Client) MoveItem(ctx context.Context, srcItemID, srcPlaylistID, dstPlaylistID, videoID string) (*MoveResult, error) {
	result := &MoveResult{}

	if err := c.InsertItem(ctx, dstPlaylistID, videoID); err != nil {
		return result, err
	}
	result.Inserted = true

	if err := c.DeleteItem(ctx, srcItemID); err != nil {
		c.logger.Warnf("video %s copied to %s but not removed from %s", videoID, dstPlaylistID, srcPlaylistID)
		return result, fmt.Errorf("%w: %v", shared.ErrPartialMove, err)
	}
	result.Deleted = true

	return result, nil
}

// Search runs a single-page catalog search for videos. Never paginated.
func (c *Client) Search(ctx context.Context, searchQuery string, limit int) ([]SearchResult, error) {
	if err := c.requireSession(); err != nil {
		return nil, err
	}
	if searchQuery == "" {
		return nil, fmt.Errorf("%w: search query", shared.ErrMissingArgument)
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive", shared.ErrInvalidInput)
	}
	if limit > 50 {
		limit = 50
	}

	c.estimator.Record(quota.OpSearchList)

	query := url.Values{
		"part":       {"snippet"},
		"type":       {"video"},
		"q":          {searchQuery},
		"maxResults": {strconv.Itoa(limit)},
	}

	var resp searchListResponse
	if err := c.doRequest(ctx, http.MethodGet, "/search", query, nil, &resp); err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.ID.VideoID == "" {
			continue
		}
		results = append(results, SearchResult{
			VideoID:      item.ID.VideoID,
			Title:        item.Snippet.Title,
			ChannelTitle: item.Snippet.ChannelTitle,
		})
	}

	return results, nil
}

// Raw performs an authenticated GET against a path relative to the API base
// and returns the response body. Debug surface for the `api` command; no
// quota recording because the operation kind is unknown.
func (c *Client) Raw(ctx context.Context, path string) ([]byte, error) {
	if err := c.requireSession(); err != nil {
		return nil, err
	}

	var raw json.RawMessage
	if err := c.doRequest(ctx, http.MethodGet, path, nil, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) requireSession() error {
	if c.state != Authenticated || c.cred == nil {
		return shared.ErrNotAuthenticated
	}
	return nil
}

// doRequest performs one authenticated call against the Data API, renewing
// the credential through the store's single refresh path when it has expired
// mid-session.
func (c *Client) doRequest(ctx context.Context, method, endpoint string, query url.Values, body, result any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if !c.cred.Usable() && c.config != nil {
		renewed, err := c.store.EnsureValid(ctx, c.config, c.cred)
		if err != nil {
			return err
		}
		c.cred = renewed
	}

	apiURL := c.baseURL + endpoint
	if len(query) > 0 {
		apiURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, apiURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.cred.AccessToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.apiErrorFrom(resp)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// apiErrorFrom maps a non-2xx response to the error taxonomy, carrying the
// API's message when the body parses as the standard error envelope.
func (c *Client) apiErrorFrom(resp *http.Response) error {
	kind := shared.ErrAPIRequest
	if resp.StatusCode == http.StatusNotFound {
		kind = shared.ErrNotFound
	}

	var envelope apiError
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error.Message != "" {
		return fmt.Errorf("%w: %s (status %d)", kind, envelope.Error.Message, resp.StatusCode)
	}

	return fmt.Errorf("%w: status %d", kind, resp.StatusCode)
}
