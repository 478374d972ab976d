package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/vinayakray19/conquest-of-infinity/internal"
)

// version is set via ldflags at build time
var version = "dev"

func main() {
	ctx := context.Background()
	internal.LoadEnv()

	app := newApp()
	rootCmd := NewRootCmd(version, app)
	if err := fang.Execute(ctx, rootCmd); err != nil {
		os.Exit(1)
	}
}

// app carries the file paths every command resolves its services from.
// Flags arrive per invocation, so clients are built lazily in the runners.
type app struct {
	configPath  string
	sessionPath string
}

func newApp() *app {
	a := &app{}
	if p, err := internal.DefaultConfigPath(); err == nil {
		a.configPath = p
	}
	if p, err := internal.DefaultSessionPath(); err == nil {
		a.sessionPath = p
	}
	return a
}

func (a *app) config() (*internal.Config, error) {
	if a.configPath == "" {
		return internal.DefaultConfig(), nil
	}
	return internal.LoadConfig(a.configPath)
}

func (a *app) session() *internal.SessionStore {
	return internal.NewSessionStore(a.sessionPath)
}

// client builds the API client for one invocation, honoring the --api flag.
func (a *app) client(apiOverride string) (*internal.Client, error) {
	cfg, err := a.config()
	if err != nil {
		return nil, err
	}
	return internal.NewClient(cfg.ResolveAPIBase(apiOverride), a.session()), nil
}

func (a *app) authenticator(apiOverride string) (*internal.Authenticator, error) {
	client, err := a.client(apiOverride)
	if err != nil {
		return nil, err
	}
	return internal.NewAuthenticator(client, a.session()), nil
}
