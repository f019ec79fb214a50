package cli

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/dmitrijs2005/authkeeper/internal/client/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	loggedIn bool
	calls    []string
	password string

	registerErr error
	loginErr    error
	profileErr  error
}

func (f *fakeAPI) Register(_ context.Context, name, email string, password []byte) (*client.Response, error) {
	f.calls = append(f.calls, "register "+name+" "+email)
	f.password = string(password)
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &client.Response{Message: "User registered successfully", UserID: "u-1"}, nil
}

func (f *fakeAPI) Login(_ context.Context, email string, password []byte) (*client.Response, error) {
	f.calls = append(f.calls, "login "+email)
	f.password = string(password)
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	f.loggedIn = true
	return &client.Response{Message: "Logged in successfully", UserID: "u-1"}, nil
}

func (f *fakeAPI) Logout(context.Context) (*client.Response, error) {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return &client.Response{Message: "Logged out successfully"}, nil
}

func (f *fakeAPI) Profile(context.Context) (*client.Response, error) {
	f.calls = append(f.calls, "profile")
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	if !f.loggedIn {
		return nil, fmt.Errorf("%w: No token, authorization denied", client.ErrUnauthorized)
	}
	return &client.Response{Message: "Welcome to your profile, user ID: u-1!", UserID: "u-1"}, nil
}

func newTestApp(api API, input string) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return newApp(api, strings.NewReader(input), &out), &out
}

func TestCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{nil, ""},
		{[]string{"login"}, "login"},
		{[]string{"-a", "http://x", "profile"}, "profile"},
		{[]string{"-c", "cfg.json", "-t", "5", "register"}, "register"},
		{[]string{"-a=http://x", "logout"}, "logout"},
		{[]string{"-a", "http://x"}, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Command(tt.args), "%v", tt.args)
	}
}

func TestRegister(t *testing.T) {
	stubPassword(t, "secret123", nil)
	api := &fakeAPI{}
	app, out := newTestApp(api, "Ann\nann@x.com\n")

	app.Register(context.Background())

	assert.Equal(t, []string{"register Ann ann@x.com"}, api.calls)
	assert.Equal(t, "secret123", api.password)
	assert.Contains(t, out.String(), "User registered successfully (id u-1)")
}

func TestRegister_ServerMessage(t *testing.T) {
	stubPassword(t, "secret123", nil)
	api := &fakeAPI{registerErr: &client.APIError{StatusCode: http.StatusBadRequest, Message: "User already exists"}}
	app, out := newTestApp(api, "Ann\nann@x.com\n")

	app.Register(context.Background())

	assert.Contains(t, out.String(), "error: User already exists")
}

func TestLogin_FetchesProfile(t *testing.T) {
	stubPassword(t, "secret123", nil)
	api := &fakeAPI{}
	app, out := newTestApp(api, "ann@x.com\n")

	app.Login(context.Background())

	assert.Equal(t, []string{"login ann@x.com", "profile"}, api.calls)
	assert.Equal(t, "u-1", app.userID)
	assert.Contains(t, out.String(), "Logged in successfully")
	assert.Contains(t, out.String(), "Welcome to your profile, user ID: u-1!")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	stubPassword(t, "nope", nil)
	api := &fakeAPI{loginErr: &client.APIError{StatusCode: http.StatusBadRequest, Message: "Invalid credentials"}}
	app, out := newTestApp(api, "ann@x.com\n")

	app.Login(context.Background())

	assert.Equal(t, []string{"login ann@x.com"}, api.calls)
	assert.Empty(t, app.userID)
	assert.Contains(t, out.String(), "error: Invalid credentials")
}

func TestProfile_ExpiredSessionResetsStatus(t *testing.T) {
	api := &fakeAPI{profileErr: fmt.Errorf("%w: Token is not valid or expired", client.ErrUnauthorized)}
	app, out := newTestApp(api, "")
	app.userID = "u-1"

	app.Profile(context.Background())

	assert.Empty(t, app.userID)
	assert.Contains(t, out.String(), "please login")
}

func TestProfile_Unavailable(t *testing.T) {
	api := &fakeAPI{profileErr: fmt.Errorf("%w: dial tcp: refused", client.ErrUnavailable)}
	app, out := newTestApp(api, "")

	app.Profile(context.Background())

	assert.Contains(t, out.String(), "error: server unavailable")
}

func TestRoot_Session(t *testing.T) {
	stubPassword(t, "secret123", nil)
	api := &fakeAPI{}
	app, out := newTestApp(api, "help\nlogin\nann@x.com\nlogout\nprofile\nbogus\nexit\nprofile\n")

	app.Root(context.Background())

	require.Equal(t, []string{"login ann@x.com", "profile", "logout", "profile"}, api.calls)
	s := out.String()
	assert.Contains(t, s, "Available commands: register, login, profile, exit")
	assert.Contains(t, s, "Logged out successfully")
	assert.Contains(t, s, "Unknown command: bogus")
	assert.Contains(t, s, "Bye!")
}

func TestRoot_EndOfInput(t *testing.T) {
	api := &fakeAPI{}
	app, out := newTestApp(api, "\n\n")

	app.Root(context.Background())

	assert.Empty(t, api.calls)
	assert.Contains(t, out.String(), "Welcome to authkeeper CLI")
}

func TestRun_SingleCommand(t *testing.T) {
	api := &fakeAPI{loggedIn: true}
	app, out := newTestApp(api, "")

	app.Run(context.Background(), "profile")

	assert.Equal(t, []string{"profile"}, api.calls)
	assert.NotContains(t, out.String(), "Welcome to authkeeper CLI")
}
