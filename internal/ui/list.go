package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/ytpl/internal/youtube"
)

var (
	_ list.Item = playlistItem{}
	_ list.Item = videoItem{}
	_ list.Item = searchItem{}
)

// playlistItem wraps [youtube.Playlist] to implement [list.Item].
type playlistItem struct {
	playlist youtube.Playlist
}

func (i playlistItem) FilterValue() string { return i.playlist.Title }
func (i playlistItem) Title() string       { return i.playlist.Title }
func (i playlistItem) Description() string {
	desc := fmt.Sprintf("%d videos", i.playlist.ItemCount)
	if i.playlist.Privacy != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.playlist.Privacy)
	}
	return desc
}

// videoItem wraps [youtube.PlaylistItem] to implement [list.Item].
type videoItem struct {
	item youtube.PlaylistItem
}

func (i videoItem) FilterValue() string { return i.item.Title }
func (i videoItem) Title() string       { return i.item.Title }
func (i videoItem) Description() string {
	return fmt.Sprintf("#%d • %s", i.item.Position+1, i.item.VideoID)
}

// searchItem wraps [youtube.SearchResult] to implement [list.Item].
type searchItem struct {
	result youtube.SearchResult
}

func (i searchItem) FilterValue() string { return i.result.Title }
func (i searchItem) Title() string       { return i.result.Title }
func (i searchItem) Description() string {
	return fmt.Sprintf("%s • %s", i.result.ChannelTitle, i.result.VideoID)
}
