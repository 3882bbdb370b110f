package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/ytpl/internal/tasks"
	"github.com/desertthunder/ytpl/internal/youtube"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	PlaylistListView ViewState = iota
	VideoListView
	TargetPickView
	SearchInputView
	SearchResultView
	ConfirmView
	ProgressView
	ResultView
)

var _ API = (*youtube.Client)(nil)

// API defines the client operations the TUI needs.
// Satisfied by [youtube.Client]; narrowed for testing.
type API interface {
	Playlists(ctx context.Context) ([]youtube.Playlist, error)
	PlaylistItems(ctx context.Context, playlistID string) ([]youtube.PlaylistItem, error)
	InsertItem(ctx context.Context, playlistID, videoID string) error
	DeleteItem(ctx context.Context, itemID string) error
	MoveItem(ctx context.Context, srcItemID, srcPlaylistID, dstPlaylistID, videoID string) (*youtube.MoveResult, error)
	Search(ctx context.Context, query string, limit int) ([]youtube.SearchResult, error)
	Usage() int
}

// actionKind enumerates the pending mutations a confirm view can approve.
type actionKind int

const (
	actionDelete actionKind = iota
	actionMove
	actionCopyAll
	actionAdd
)

// pendingAction is a mutation staged for confirmation.
type pendingAction struct {
	kind   actionKind
	item   youtube.PlaylistItem
	result youtube.SearchResult
	target youtube.Playlist
}

// describe renders the confirmation prompt for the action.
func (a pendingAction) describe(source youtube.Playlist) string {
	switch a.kind {
	case actionDelete:
		return fmt.Sprintf("Delete '%s' from '%s'?", a.item.Title, source.Title)
	case actionMove:
		return fmt.Sprintf("Move '%s' to '%s'?", a.item.Title, a.target.Title)
	case actionCopyAll:
		return fmt.Sprintf("Copy all %d videos from '%s' to '%s'?", source.ItemCount, source.Title, a.target.Title)
	case actionAdd:
		return fmt.Sprintf("Add '%s' to '%s'?", a.result.Title, source.Title)
	default:
		return ""
	}
}

type playlistsFetchedMsg struct {
	playlists []youtube.Playlist
	err       error
}

type videosFetchedMsg struct {
	items []youtube.PlaylistItem
	err   error
}

type searchDoneMsg struct {
	results []youtube.SearchResult
	err     error
}

type actionDoneMsg struct {
	detail string
	err    error
}

type progressUpdateMsg tasks.ProgressUpdate

type copyCompleteMsg struct {
	result *tasks.CopyRunResult
	err    error
}

// Model represents the TUI application state.
type Model struct {
	ctx    context.Context
	view   ViewState
	api    API
	engine *tasks.CopyEngine

	width  int
	height int

	playlistList list.Model
	playlists    []youtube.Playlist
	selected     youtube.Playlist

	videoList list.Model

	targetList list.Model

	searchInput textinput.Model
	searchList  list.Model

	pending pendingAction

	progressChan chan tasks.ProgressUpdate
	progress     tasks.ProgressUpdate
	copyResult   *tasks.CopyRunResult

	status string
	err    error
	help   help.Model
	keys   keyMap
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, api API, engine *tasks.CopyEngine) *Model {
	input := textinput.New()
	input.Placeholder = "search videos..."
	input.CharLimit = 120

	return &Model{
		ctx:         ctx,
		view:        PlaylistListView,
		api:         api,
		engine:      engine,
		searchInput: input,
		help:        help.New(),
		keys:        newKeyMap(),
	}
}

// Init initializes the TUI by fetching the signed-in user's playlists.
func (m *Model) Init() tea.Cmd {
	return m.fetchPlaylists()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.playlistList.SetSize(msg.Width-4, msg.Height-8)
		m.videoList.SetSize(msg.Width-4, msg.Height-8)
		m.targetList.SetSize(msg.Width-4, msg.Height-8)
		m.searchList.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case PlaylistListView:
			return m.handlePlaylistListKeys(msg)
		case VideoListView:
			return m.handleVideoListKeys(msg)
		case TargetPickView:
			return m.handleTargetPickKeys(msg)
		case SearchInputView:
			return m.handleSearchInputKeys(msg)
		case SearchResultView:
			return m.handleSearchResultKeys(msg)
		case ConfirmView:
			return m.handleConfirmKeys(msg)
		case ResultView:
			return m.handleResultKeys(msg)
		}

	case playlistsFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.playlists = msg.playlists
		items := make([]list.Item, len(msg.playlists))
		for i, pl := range msg.playlists {
			items[i] = playlistItem{playlist: pl}
		}
		m.playlistList = list.New(items, list.NewDefaultDelegate(), m.width-4, m.height-8)
		m.playlistList.Title = "Your Playlists"
		return m, nil

	case videosFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.view = PlaylistListView
			return m, nil
		}
		items := make([]list.Item, len(msg.items))
		for i, item := range msg.items {
			items[i] = videoItem{item: item}
		}
		m.videoList = list.New(items, list.NewDefaultDelegate(), m.width-4, m.height-8)
		m.videoList.Title = fmt.Sprintf("Videos in '%s'", m.selected.Title)
		m.view = VideoListView
		return m, nil

	case searchDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			m.view = VideoListView
			return m, nil
		}
		items := make([]list.Item, len(msg.results))
		for i, result := range msg.results {
			items[i] = searchItem{result: result}
		}
		m.searchList = list.New(items, list.NewDefaultDelegate(), m.width-4, m.height-8)
		m.searchList.Title = fmt.Sprintf("Results for '%s'", m.searchInput.Value())
		m.view = SearchResultView
		return m, nil

	case actionDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			m.view = VideoListView
			return m, nil
		}
		m.err = nil
		m.status = msg.detail
		return m, m.fetchVideos(m.selected.ID)

	case progressUpdateMsg:
		m.progress = tasks.ProgressUpdate(msg)
		return m, m.waitForProgress()

	case copyCompleteMsg:
		m.copyResult = msg.result
		m.err = msg.err
		m.view = ResultView
		m.progressChan = nil
		return m, nil
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	var body string

	switch m.view {
	case PlaylistListView:
		body = m.renderPlaylistList()
	case VideoListView:
		body = m.renderVideoList()
	case TargetPickView:
		body = m.renderTargetPick()
	case SearchInputView:
		body = m.renderSearchInput()
	case SearchResultView:
		body = m.renderSearchResults()
	case ConfirmView:
		body = m.renderConfirm()
	case ProgressView:
		body = m.renderProgress()
	case ResultView:
		body = m.renderResult()
	}

	footer := styles.help.Render(fmt.Sprintf("session quota estimate: %d units", m.api.Usage()))
	return fmt.Sprintf("%s\n\n%s", body, footer)
}

func (m *Model) handlePlaylistListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter":
		if pl, ok := m.playlistList.SelectedItem().(playlistItem); ok {
			m.selected = pl.playlist
			m.status = ""
			return m, m.fetchVideos(pl.playlist.ID)
		}
	}

	var cmd tea.Cmd
	m.playlistList, cmd = m.playlistList.Update(msg)
	return m, cmd
}

func (m *Model) handleVideoListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = PlaylistListView
		m.status = ""
		return m, nil
	case "d":
		if vi, ok := m.videoList.SelectedItem().(videoItem); ok {
			m.pending = pendingAction{kind: actionDelete, item: vi.item}
			m.view = ConfirmView
		}
		return m, nil
	case "m":
		if vi, ok := m.videoList.SelectedItem().(videoItem); ok {
			m.pending = pendingAction{kind: actionMove, item: vi.item}
			m.showTargetPicker()
		}
		return m, nil
	case "c":
		m.pending = pendingAction{kind: actionCopyAll}
		m.showTargetPicker()
		return m, nil
	case "s":
		m.searchInput.SetValue("")
		m.searchInput.Focus()
		m.view = SearchInputView
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	m.videoList, cmd = m.videoList.Update(msg)
	return m, cmd
}

// showTargetPicker builds a playlist list excluding the one being browsed.
func (m *Model) showTargetPicker() {
	items := make([]list.Item, 0, len(m.playlists))
	for _, pl := range m.playlists {
		if pl.ID == m.selected.ID {
			continue
		}
		items = append(items, playlistItem{playlist: pl})
	}
	m.targetList = list.New(items, list.NewDefaultDelegate(), m.width-4, m.height-8)
	m.targetList.Title = "Pick a target playlist"
	m.view = TargetPickView
}

func (m *Model) handleTargetPickKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = VideoListView
		return m, nil
	case "enter":
		if pl, ok := m.targetList.SelectedItem().(playlistItem); ok {
			m.pending.target = pl.playlist
			m.view = ConfirmView
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.targetList, cmd = m.targetList.Update(msg)
	return m, cmd
}

func (m *Model) handleSearchInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.searchInput.Blur()
		m.view = VideoListView
		return m, nil
	case "enter":
		query := m.searchInput.Value()
		if query == "" {
			return m, nil
		}
		m.searchInput.Blur()
		return m, m.runSearch(query)
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m *Model) handleSearchResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = VideoListView
		return m, nil
	case "enter":
		if si, ok := m.searchList.SelectedItem().(searchItem); ok {
			m.pending = pendingAction{kind: actionAdd, result: si.result}
			m.view = ConfirmView
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.searchList, cmd = m.searchList.Update(msg)
	return m, cmd
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "n", "esc":
		m.view = VideoListView
		return m, nil
	case "y":
		switch m.pending.kind {
		case actionDelete:
			return m, m.deleteVideo(m.pending.item)
		case actionMove:
			return m, m.moveVideo(m.pending.item, m.pending.target)
		case actionAdd:
			return m, m.addVideo(m.pending.result)
		case actionCopyAll:
			m.view = ProgressView
			return m, m.startCopy(m.pending.target)
		}
	}
	return m, nil
}

func (m *Model) handleResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r":
		m.view = PlaylistListView
		m.copyResult = nil
		m.err = nil
		m.status = ""
		return m, m.fetchPlaylists()
	}
	return m, nil
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case PlaylistListView:
		m.playlistList, cmd = m.playlistList.Update(msg)
	case VideoListView:
		m.videoList, cmd = m.videoList.Update(msg)
	case TargetPickView:
		m.targetList, cmd = m.targetList.Update(msg)
	case SearchInputView:
		m.searchInput, cmd = m.searchInput.Update(msg)
	case SearchResultView:
		m.searchList, cmd = m.searchList.Update(msg)
	}
	return m, cmd
}

func (m *Model) fetchPlaylists() tea.Cmd {
	return func() tea.Msg {
		playlists, err := m.api.Playlists(m.ctx)
		return playlistsFetchedMsg{playlists: playlists, err: err}
	}
}

func (m *Model) fetchVideos(playlistID string) tea.Cmd {
	return func() tea.Msg {
		items, err := m.api.PlaylistItems(m.ctx, playlistID)
		return videosFetchedMsg{items: items, err: err}
	}
}

func (m *Model) runSearch(query string) tea.Cmd {
	return func() tea.Msg {
		results, err := m.api.Search(m.ctx, query, 10)
		return searchDoneMsg{results: results, err: err}
	}
}

func (m *Model) deleteVideo(item youtube.PlaylistItem) tea.Cmd {
	return func() tea.Msg {
		if err := m.api.DeleteItem(m.ctx, item.ID); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{detail: fmt.Sprintf("Deleted '%s'", item.Title)}
	}
}

func (m *Model) moveVideo(item youtube.PlaylistItem, target youtube.Playlist) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.api.MoveItem(m.ctx, item.ID, m.selected.ID, target.ID, item.VideoID); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{detail: fmt.Sprintf("Moved '%s' to '%s'", item.Title, target.Title)}
	}
}

func (m *Model) addVideo(result youtube.SearchResult) tea.Cmd {
	return func() tea.Msg {
		if err := m.api.InsertItem(m.ctx, m.selected.ID, result.VideoID); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{detail: fmt.Sprintf("Added '%s'", result.Title)}
	}
}

func (m *Model) startCopy(target youtube.Playlist) tea.Cmd {
	m.progressChan = make(chan tasks.ProgressUpdate, 50)
	progress := m.progressChan
	source := m.selected.ID

	go func() {
		result, err := m.engine.Run(m.ctx, source, target.ID, false, progress)
		m.copyResult = result
		m.err = err
		close(progress)
	}()

	return m.waitForProgress()
}

func (m *Model) waitForProgress() tea.Cmd {
	return func() tea.Msg {
		if m.progressChan == nil {
			return copyCompleteMsg{result: m.copyResult, err: m.err}
		}

		update, ok := <-m.progressChan
		if !ok {
			return copyCompleteMsg{result: m.copyResult, err: m.err}
		}
		return progressUpdateMsg(update)
	}
}

func (m *Model) renderPlaylistList() string {
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.enter, m.keys.quit})
	return fmt.Sprintf("%s\n\n%s", m.playlistList.View(), helpView)
}

func (m *Model) renderVideoList() string {
	helpView := m.help.ShortHelpView([]key.Binding{
		m.keys.remove, m.keys.move, m.keys.copyAll, m.keys.search, m.keys.back, m.keys.quit,
	})

	header := ""
	if m.status != "" {
		header = styles.ok.Render(m.status) + "\n"
	}
	if m.err != nil {
		header = styles.err.Render(fmt.Sprintf("Error: %v", m.err)) + "\n"
	}

	return fmt.Sprintf("%s%s\n\n%s", header, m.videoList.View(), helpView)
}

func (m *Model) renderTargetPick() string {
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.enter, m.keys.back, m.keys.quit})
	return fmt.Sprintf("%s\n\n%s", m.targetList.View(), helpView)
}

func (m *Model) renderSearchInput() string {
	title := styles.title.Render("Search YouTube")
	note := styles.warn.Render("Each search costs 100 quota units.")
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.enter, m.keys.back, m.keys.quit})
	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s", title, note, m.searchInput.View(), helpView)
}

func (m *Model) renderSearchResults() string {
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.enter, m.keys.back, m.keys.quit})
	return fmt.Sprintf("%s\n\n%s", m.searchList.View(), helpView)
}

func (m *Model) renderConfirm() string {
	title := styles.title.Render(m.pending.describe(m.selected))
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.yes, m.keys.no, m.keys.quit})
	return fmt.Sprintf("%s\n%s", title, helpView)
}

func (m *Model) renderProgress() string {
	title := styles.title.Render("Copying Playlist")

	var phase string
	switch m.progress.Phase {
	case tasks.FetchSource:
		phase = "Fetching source playlist..."
	case tasks.CopyItems:
		phase = fmt.Sprintf("Copying videos (%d/%d)", m.progress.Step, m.progress.Total)
	default:
		phase = "Processing..."
	}

	return fmt.Sprintf("%s\n\n%s\n%s", title, phase, m.progress.Message)
}

func (m *Model) renderResult() string {
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.restart, m.keys.quit})

	if m.err != nil {
		body := styles.err.Render(fmt.Sprintf("Copy failed: %v", m.err))
		return fmt.Sprintf("%s\n\n%s", body, helpView)
	}
	if m.copyResult == nil {
		body := styles.err.Render("No result available")
		return fmt.Sprintf("%s\n\n%s", body, helpView)
	}

	title := styles.ok.Render("✓ Copy Complete")
	info := fmt.Sprintf("\nCopied %d/%d videos to the target playlist.",
		m.copyResult.SuccessCount, m.copyResult.TotalItems)

	var failed string
	if m.copyResult.FailedCount > 0 {
		failed = "\n\n" + styles.warn.Render(fmt.Sprintf("%d videos failed:", m.copyResult.FailedCount))
		for _, item := range m.copyResult.Items {
			if item.Error != nil {
				failed += fmt.Sprintf("\n  • %s: %v", item.Item.Title, item.Error)
			}
		}
	}

	return fmt.Sprintf("%s%s%s\n\n%s", title, info, failed, helpView)
}
