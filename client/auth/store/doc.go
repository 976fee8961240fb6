// Package store defines the credential store used by the session manager in the
// parent `auth` package.
//
// FileStore persists the credential document as indented JSON through
// github.com/viant/afs; the in-memory store is meant for unit tests and
// embedding scenarios where the refresh token is supplied programmatically.
package store
