// Package cli implements the interactive authkeeper command-line client.
//
// Commands: register, login (followed by a profile fetch with the fresh
// session), profile, logout, help and exit. A single command may also be
// given on the command line, in which case the client runs it and quits.
// Passwords are read from the terminal without echo.
package cli
