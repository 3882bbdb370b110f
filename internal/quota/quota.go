// package quota tracks an additive, session-local estimate of YouTube Data API unit usage.
//
// Google does not expose a real remaining-quota figure, so the estimate is
// never reconciled against the server. Costs come from the published quota
// table and are subject to change upstream.
package quota

// Op identifies a remote API operation with a known unit cost.
type Op string

const (
	OpChannelsList        Op = "channels.list"
	OpPlaylistsList       Op = "playlists.list"
	OpPlaylistItemsList   Op = "playlistItems.list"
	OpPlaylistItemsInsert Op = "playlistItems.insert"
	OpPlaylistItemsUpdate Op = "playlistItems.update"
	OpPlaylistItemsDelete Op = "playlistItems.delete"
	OpSearchList          Op = "search.list"
)

// Costs maps each operation kind to its fixed unit cost per the YouTube Data API docs.
var Costs = map[Op]int{
	OpChannelsList:        1,
	OpPlaylistsList:       1,
	OpPlaylistItemsList:   1,
	OpPlaylistItemsInsert: 50,
	OpPlaylistItemsUpdate: 50,
	OpPlaylistItemsDelete: 50,
	OpSearchList:          100,
}

// Estimator accumulates estimated unit usage for a single session.
//
// Not safe for concurrent use; the owning client serializes access.
type Estimator struct {
	used map[Op]int
}

// NewEstimator creates an empty Estimator.
func NewEstimator() *Estimator {
	return &Estimator{used: make(map[Op]int)}
}

// Record adds the fixed cost for op to the ledger.
//
// Unknown operation kinds contribute zero; recording never fails the caller.
func (e *Estimator) Record(op Op) {
	e.used[op] += Costs[op]
}

// Total returns the accumulated unit estimate for this session.
func (e *Estimator) Total() int {
	total := 0
	for _, units := range e.used {
		total += units
	}
	return total
}

// ByOp returns a copy of the per-operation breakdown.
func (e *Estimator) ByOp() map[Op]int {
	out := make(map[Op]int, len(e.used))
	for op, units := range e.used {
		out[op] = units
	}
	return out
}

// Reset zeroes the ledger. Called on logout and re-authentication.
func (e *Estimator) Reset() {
	e.used = make(map[Op]int)
}
