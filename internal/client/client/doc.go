// Package client talks to the authkeeper HTTP API on behalf of the CLI.
//
// # Overview
//
// APIClient wraps an http.Client with a cookie jar, so the session cookie
// set by Login is sent back automatically by Profile and cleared by
// Logout, the same way a browser would handle it.
//
// # Error Handling
//
// Transport failures are reported as ErrUnavailable, 401 and 403 answers
// as ErrUnauthorized. Other non-2xx answers come back as *APIError
// carrying the server's message. Match them with errors.Is / errors.As.
package client
