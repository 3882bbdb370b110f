// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for playlist management:
//  1. [PlaylistListView] : Browse and select playlists
//  2. [VideoListView] : Browse a playlist's videos and pick an action
//  3. [TargetPickView] : Choose the target playlist for a move or bulk copy
//  4. [SearchInputView] / [SearchResultView] : Search YouTube and add a result
//  5. [ConfirmView] : Confirm a staged mutation before it runs
//  6. [ProgressView] / [ResultView] : Monitor a bulk copy and show its outcome
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// API calls run inside tea.Cmd goroutines; bulk copy progress flows through a
// channel from the CopyEngine for non-blocking status reporting. Every view
// carries a footer with the session's quota usage estimate.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, y/n, q) with
// contextual help displayed via charmbracelet/bubbles/help.
package ui
