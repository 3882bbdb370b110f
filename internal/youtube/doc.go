// Package youtube implements the quota-tracked YouTube Data API v3 client.
//
// # Session Lifecycle
//
// A [Client] moves through explicit [SessionState] values:
// Unauthenticated → Authenticating → Authenticated. [Client.Authenticate]
// tries the persisted credential, then the single expired→refresh path, then
// the interactive browser flow; [Client.Logout] tears the session down and
// deletes the persisted credential.
//
// # Pagination
//
// List endpoints are cursor-paginated with page tokens. [CollectPages] drives
// a [PageFunc] to completion so operations like [Client.Playlists] return one
// fully-materialized, in-order slice. Search is deliberately single-page.
//
// # Quota Estimation
//
// Google does not expose remaining quota, so every operation records a fixed
// unit cost with a [quota.Estimator] on dispatch, whether or not the remote
// call succeeds. The ledger is session-local and resets on logout and
// re-authentication. Paginated list operations record their cost once per
// operation; the figure is an estimate, nothing reconciles it server-side.
//
// # Error Handling
//
// Operations attempted without a session return [shared.ErrNotAuthenticated].
// Remote failures map to [shared.ErrAPIRequest], with 404s narrowed to
// [shared.ErrNotFound]. No retries are performed at this layer; every
// transient failure surfaces once and the caller decides.
//
// # Move Semantics
//
// [Client.MoveItem] is insert-then-delete across two independent resources.
// A delete-stage failure is surfaced as [shared.ErrPartialMove] with a
// [MoveResult] describing exactly how far the move got. There is no rollback.
package youtube
