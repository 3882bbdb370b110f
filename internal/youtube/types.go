// YouTube Data API v3 response shapes and their normalized domain types.
//
// Field mappings follow https://developers.google.com/youtube/v3/docs
package youtube

// Channel is the signed-in user's channel identity.
type Channel struct {
	ID    string
	Title string
}

// Playlist is a playlist owned by the signed-in user.
//
// Read-only from the client's perspective: it is fetched, never locally
// mutated except by re-fetching.
type Playlist struct {
	ID        string
	Title     string
	ItemCount int
	Privacy   string // private, unlisted, public
}

// PlaylistItem is one video's membership record within a playlist.
//
// ID is the playlistItem identifier, the handle required for deletion. It is
// a different identifier space from VideoID and the two must never be
// conflated. Position is informational only; the API does not guarantee it is
// contiguous across pages.
type PlaylistItem struct {
	ID       string
	VideoID  string
	Title    string
	Position int
}

// SearchResult is a single catalog search hit. Transient; never persisted.
type SearchResult struct {
	VideoID      string
	Title        string
	ChannelTitle string
}

// MoveResult reports how far a move got.
//
// Insert-into-target and delete-from-source are independent remote calls that
// cannot be made atomic. When Inserted is true and Deleted is false the video
// exists in both playlists and the caller must reconcile; the accompanying
// error wraps [shared.ErrPartialMove].
type MoveResult struct {
	Inserted bool
	Deleted  bool
}

// apiError is the YouTube Data API error envelope.
type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Errors  []struct {
			Reason string `json:"reason"`
		} `json:"errors"`
	} `json:"error"`
}

type channelListResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title string `json:"title"`
		} `json:"snippet"`
	} `json:"items"`
}

type playlistListResponse struct {
	NextPageToken string `json:"nextPageToken"`
	Items         []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title string `json:"title"`
		} `json:"snippet"`
		ContentDetails struct {
			ItemCount int `json:"itemCount"`
		} `json:"contentDetails"`
		Status struct {
			PrivacyStatus string `json:"privacyStatus"`
		} `json:"status"`
	} `json:"items"`
}

type playlistItemListResponse struct {
	NextPageToken string `json:"nextPageToken"`
	Items         []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title    string `json:"title"`
			Position int    `json:"position"`
		} `json:"snippet"`
		ContentDetails struct {
			VideoID string `json:"videoId"`
		} `json:"contentDetails"`
	} `json:"items"`
}

type searchListResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			ChannelTitle string `json:"channelTitle"`
		} `json:"snippet"`
	} `json:"items"`
}

// playlistItemInsertBody is the request body for playlistItems.insert.
type playlistItemInsertBody struct {
	Snippet struct {
		PlaylistID string `json:"playlistId"`
		ResourceID struct {
			Kind    string `json:"kind"`
			VideoID string `json:"videoId"`
		} `json:"resourceId"`
	} `json:"snippet"`
}

func newInsertBody(playlistID, videoID string) playlistItemInsertBody {
	var body playlistItemInsertBody
	body.Snippet.PlaylistID = playlistID
	body.Snippet.ResourceID.Kind = "youtube#video"
	body.Snippet.ResourceID.VideoID = videoID
	return body
}
