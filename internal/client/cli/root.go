package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) getStatus() string {
	if a.userID == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userID)
}

// Root is the interactive loop. It returns on exit, quit or end of input.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to authkeeper CLI (type 'help' for commands)")

	for {
		fmt.Fprintf(a.out, "akcli %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		if !a.dispatch(ctx, parts[0]) {
			return
		}
	}
}

// dispatch runs one command and reports whether the loop should go on.
func (a *App) dispatch(ctx context.Context, cmd string) bool {
	switch cmd {
	case "help":
		if a.userID != "" {
			fmt.Fprintln(a.out, "Available commands: profile, logout, exit")
		} else {
			fmt.Fprintln(a.out, "Available commands: register, login, profile, exit")
		}
	case "register":
		a.Register(ctx)
	case "login":
		a.Login(ctx)
	case "profile":
		a.Profile(ctx)
	case "logout":
		a.Logout(ctx)
	case "exit", "quit":
		fmt.Fprintln(a.out, "Bye!")
		return false
	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
	}
	return true
}
