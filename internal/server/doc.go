// Package server provides the localhost HTTP routing and OAuth callback handling used during sign-in.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with method filtering.
//
// # OAuth Callback Handler
//
// [OAuthHandler] implements the OAuth2 authorization code callback flow against Google's
// accounts endpoints.
//
// The handler validates the state parameter (CSRF protection), exchanges the authorization
// code for tokens, and sends the result through a channel. It only processes one callback
// to prevent replay attacks.
//
// When the user signs in, a temporary HTTP server starts on the configured localhost port,
// the browser opens to the consent screen, the handler receives the redirect, and the
// server shuts down after delivering the token. A declined consent screen surfaces as
// [shared.ErrConsentDeclined] so the UI can tell it apart from transport failures.
package server
