// Package models defines the resources exchanged with the news API:
// users, articles, categories, comments, subscriptions and notifications.
//
// The JSON field names follow the wire format of the API. Timestamps are
// kept as the raw strings the server sends; use ParseTime to interpret them.
package models
