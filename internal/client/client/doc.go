// Package client is the typed REST client of the news API.
//
// # Overview
//
// The package provides:
//  1. Per-resource contracts (AuthAPI, NewsAPI, CommentsAPI, ...) grouped
//     by the Client interface.
//  2. A concrete HTTP implementation (see HTTPClient) that sends JSON
//     bodies, attaches explicit bearer credentials and a request id to every
//     call, optionally paces outgoing requests, and decodes responses into
//     typed values.
//
// # Credentials
//
// Every authenticated call takes a Credentials value. The client holds no
// ambient token; callers snapshot credentials from the session and pass
// them explicitly.
//
// # Error Handling
//
// Non-2xx responses become *APIError values that unwrap to one of the
// sentinels ErrUnauthorized, ErrForbidden, ErrNotFound, ErrValidation or
// ErrServer. Transport failures unwrap to ErrUnavailable. A 2xx body that
// lacks a required field yields ErrMalformedResponse.
package client
