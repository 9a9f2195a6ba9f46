// Package common contains shared constants and small helpers used across
// newsdesk components.
package common

// Header names set on every outbound API request.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"
	BearerPrefix            = "Bearer "
)

// Metadata keys of the local store. The bearer token lives under a single
// fixed key so that at most one session is ever persisted.
const (
	TokenMetadataKey        = "token"
	TokenSavedAtMetadataKey = "token_saved_at"
)
