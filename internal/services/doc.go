// Package services defines the [Service] interface for the SenFlix movie
// server and implements it over plain JSON/HTTP.
//
// # Service Interface
//
// The server owns all state. Every mutating call returns the server's
// declared post-state, and callers render from that, never from a locally
// guessed flip.
//
// # SenFlix Implementation
//
// [SenflixService] wraps [APIService], a raw HTTP client that replays an
// imported browser session ([shared.CurlHeaders]) for cookie auth and
// throttles requests with a token-bucket limiter.
//
// Endpoints:
//
//	GET  /search_omdb?q=          combined catalog/OMDB search
//	GET  /api/categories          category reference data
//	POST /add_new_movie           wizard create payload (JSON)
//	POST /toggle_watched/:id      flip watched flag
//	POST /toggle_watchlist/:id    flip watchlist flag
//	POST /toggle_favorite/:id     flip favorite flag
//	POST /rate_movie              rating + comment (form-encoded)
//	GET  /get_movie_rating/:id    stored rating, if any
//	GET  /select_user/:id         profile sign-in
//
// # Error Handling
//
// Three failure classes, kept distinct so the UI can route them:
//   - validation: caught before any network call ([shared.ErrInvalidInput],
//     [shared.ErrQueryTooShort]); shown inline, never logged as exceptions
//   - transport: network failure or non-OK status with a non-JSON body;
//     message synthesized from the HTTP status ([shared.ErrAPIRequest])
//   - application: the server answered but reported success=false; the
//     server's message is surfaced verbatim as [*APIError]
//
// No call retries automatically; every failure requires a new user action.
package services
