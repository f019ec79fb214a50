package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/authkeeper/internal/client/client"
	"github.com/dmitrijs2005/authkeeper/internal/common"
)

func (a *App) Register(ctx context.Context) {
	name, err := GetSimpleText(a.reader, "-Enter name", a.out)
	if err != nil {
		a.printError(err)
		return
	}
	email, err := GetSimpleText(a.reader, "-Enter email", a.out)
	if err != nil {
		a.printError(err)
		return
	}
	password, err := GetPassword(a.out)
	if err != nil {
		a.printError(err)
		return
	}
	defer common.WipeByteArray(password)

	resp, err := a.api.Register(ctx, name, email, password)
	if err != nil {
		a.printError(err)
		return
	}

	fmt.Fprintf(a.out, "%s (id %s)\n", resp.Message, resp.UserID)
}

// Login signs in and immediately fetches the profile with the new session.
func (a *App) Login(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "-Enter email", a.out)
	if err != nil {
		a.printError(err)
		return
	}
	password, err := GetPassword(a.out)
	if err != nil {
		a.printError(err)
		return
	}
	defer common.WipeByteArray(password)

	resp, err := a.api.Login(ctx, email, password)
	if err != nil {
		a.printError(err)
		return
	}
	a.userID = resp.UserID
	fmt.Fprintln(a.out, resp.Message)

	a.Profile(ctx)
}

func (a *App) Profile(ctx context.Context) {
	resp, err := a.api.Profile(ctx)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			a.userID = ""
		}
		a.printError(err)
		return
	}
	fmt.Fprintln(a.out, resp.Message)
}

func (a *App) Logout(ctx context.Context) {
	resp, err := a.api.Logout(ctx)
	if err != nil {
		a.printError(err)
		return
	}
	a.userID = ""
	fmt.Fprintln(a.out, resp.Message)
}

func (a *App) printError(err error) {
	var apiErr *client.APIError
	switch {
	case errors.As(err, &apiErr):
		fmt.Fprintln(a.out, "error:", apiErr.Message)
	case errors.Is(err, client.ErrUnauthorized):
		fmt.Fprintln(a.out, "error: not logged in or session expired, please login")
	case errors.Is(err, client.ErrUnavailable):
		fmt.Fprintln(a.out, "error: server unavailable")
	default:
		fmt.Fprintln(a.out, "error:", err)
	}
}
