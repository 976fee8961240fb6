// Package transport implements an http.RoundTripper that attaches a bearer access
// token to every outbound request.
//
// The token is obtained from a TokenProvider (usually *auth.Manager) right before the
// request is sent. When no usable token can be obtained the request is not sent and
// the provider error is returned unchanged, so callers can still match it with
// errors.As through the *url.Error added by http.Client.
package transport
