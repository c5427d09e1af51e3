// Package common contains shared constants and sentinel errors used across
// GoalKeeper client components.
package common

// HTTP header names used on outbound API requests.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"
	BearerPrefix            = "Bearer "
)

// Keys of the local metadata table holding the persisted credentials.
const (
	AccessTokenKey = "access_token"
	UserDataKey    = "user_data"
)

// DateLayout is the wire and input format of goal dates.
const DateLayout = "2006-01-02"
