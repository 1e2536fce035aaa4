// Package cli implements the interactive document dashboard client: a small
// REPL that authenticates against the backend and manages the Active, Shared
// and Trashed document collections.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/litoraledu/gestordoc/internal/client/api"
	"github.com/litoraledu/gestordoc/internal/client/config"
	"github.com/litoraledu/gestordoc/internal/dashboard"
	"github.com/litoraledu/gestordoc/internal/filex"
	"github.com/litoraledu/gestordoc/internal/storage"
)

// backendAPI is the slice of api.Client the app needs; tests provide stubs.
type backendAPI interface {
	Register(ctx context.Context, in api.RegisterInput) error
	Login(ctx context.Context, email, password string, remember bool) (*api.Profile, error)
	Logout(ctx context.Context) error
	CheckSession(ctx context.Context) (*api.Profile, error)
	UploadURL(ctx context.Context) (string, string, error)
	DownloadURL(ctx context.Context, key string) (string, error)
}

type App struct {
	config     *config.Config
	backend    backendAPI
	controller *dashboard.Controller
	profile    *api.Profile
	reader     *bufio.Reader
	out        io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	dir, err := filex.EnsureDir(c.DataDir)
	if err != nil {
		return nil, err
	}

	substrate, err := storage.NewFileSubstrate(dir)
	if err != nil {
		return nil, err
	}

	backend, err := api.NewClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	out := os.Stdout
	store := dashboard.NewStore(substrate, c.InstitutionalDomain)
	controller := dashboard.NewController(store, newTableRenderer(out))

	return &App{
		config:     c,
		backend:    backend,
		controller: controller,
		reader:     bufio.NewReader(os.Stdin),
		out:        out,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.profile != nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}
