// Package session owns the authentication state of the client.
//
// A Store moves from bootstrapping to unauthenticated or authenticated and
// back to unauthenticated on logout or when the server rejects the token.
// The token is persisted through a TokenStore so that a session survives
// restarts. Credentials are handed out as snapshots; requests never read an
// ambient token.
//
// Other components learn about transitions by registering a callback with
// Subscribe.
package session
