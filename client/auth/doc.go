// Package auth contains the session manager that turns a persisted refresh token into
// a usable access token.
//
// Manager loads the credential document from a store.Store on every acquisition,
// returns the cached access token when it decodes as an unexpired JWT, and otherwise
// performs a single refresh exchange against the token endpoint and writes the new
// token back through the store.
package auth
