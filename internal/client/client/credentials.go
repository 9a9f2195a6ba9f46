package client

import "github.com/dmitrijs2005/newsdesk/internal/common"

// Credentials are the bearer credentials attached to a single request.
// The zero value sends no Authorization header.
type Credentials struct {
	Token string
}

func (c Credentials) IsZero() bool {
	return c.Token == ""
}

func (c Credentials) header() string {
	return common.BearerPrefix + c.Token
}

// Anonymous is the credentials of a logged-out caller.
var Anonymous = Credentials{}
