package domain

import "time"

// AccessGrant is what a successful login returns: a signed bearer token
// and how long it is good for. Nothing is persisted; the token is the
// whole session.
type AccessGrant struct {
	AccessToken string
	TokenType   string // always "Bearer"
	ExpiresIn   time.Duration
}
