// Package client contains the client-side building blocks for talking to the
// GoalKeeper backend and for bootstrapping local storage.
//
// # Overview
//
//  1. Client, the API contract used by the services: authentication,
//     profile, dashboard stats, goal CRUD and a liveness check.
//  2. HTTPClient, the REST implementation. Every request carries a JSON
//     content type, an X-Request-ID and, when the TokenSource has one, a
//     bearer token. A 401 response is reported to the AuthFailureHandler
//     exactly once before the error is returned.
//  3. InitDatabase and RunMigrations, which open the local sqlite file and
//     apply the embedded goose migrations.
//
// # Error Handling
//
// Failed calls return *APIError. Its Kind says what went wrong; errors.Is
// matches it against ErrUnavailable (no response), ErrUnauthorized (401) and
// ErrNotFound (404).
package client
