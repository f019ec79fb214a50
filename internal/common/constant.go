package common

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "token"

// UserIDClaim is the JWT claim holding the authenticated user id.
const UserIDClaim = "id"
