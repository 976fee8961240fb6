// Package mock provides an in-process trading-post API used to exercise the session
// manager, the bearer transport and the API client without a real service.
//
// The server mints HS256 JWT access tokens, counts calls per path and records request
// bodies, so tests can assert exactly how many refresh exchanges and business calls
// were made.
package mock
