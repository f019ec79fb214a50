package httpapi

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/common"
)

// sessionCookie carries the attributes shared by set and clear; browsers
// only drop a cookie when name, path and domain match.
func sessionCookie(value string, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     common.SessionCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func setSessionCookie(w http.ResponseWriter, token string, maxAge time.Duration, secure bool) {
	c := sessionCookie(token, secure)
	c.MaxAge = int(maxAge / time.Second)
	c.Expires = time.Now().Add(maxAge)
	http.SetCookie(w, c)
}

func clearSessionCookie(w http.ResponseWriter, secure bool) {
	c := sessionCookie("", secure)
	c.MaxAge = -1
	c.Expires = time.Unix(0, 0)
	http.SetCookie(w, c)
}

// sessionToken returns the token cookie value, or "" when absent.
func sessionToken(r *http.Request) string {
	c, err := r.Cookie(common.SessionCookieName)
	if err != nil {
		return ""
	}
	return c.Value
}
