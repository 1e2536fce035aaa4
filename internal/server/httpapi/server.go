// Package httpapi exposes the auth and content operations over HTTP/JSON.
// The browser dashboard and the CLI client both talk to this surface.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/litoraledu/gestordoc/internal/logging"
	"github.com/litoraledu/gestordoc/internal/server/models"
	"github.com/litoraledu/gestordoc/internal/server/services"
)

// UserService is the slice of services.UserService the handlers need.
type UserService interface {
	Register(ctx context.Context, in services.RegisterInput) (*models.User, error)
	Login(ctx context.Context, email, password string, remember bool) (*models.User, *models.Session, error)
	Logout(ctx context.Context, sessionID string) error
	CheckSession(ctx context.Context, sessionID string) (*models.User, error)
	SessionValidity(remember bool) time.Duration
}

// ContentService issues presigned object-storage URLs.
type ContentService interface {
	GetPresignedPutUrl(ctx context.Context) (string, string, error)
	GetPresignedGetUrl(ctx context.Context, key string) (string, error)
}

type HTTPServer struct {
	address   string
	logger    logging.Logger
	users     UserService
	content   ContentService
	jwtSecret []byte
}

func NewHTTPServer(a string, l logging.Logger, us UserService, cs ContentService, secretKey string) *HTTPServer {
	return &HTTPServer{
		address:   a,
		logger:    l.With("module", "http_server"),
		users:     us,
		content:   cs,
		jwtSecret: []byte(secretKey),
	}
}

// Handler builds the full route table with the middleware chain applied.
func (s *HTTPServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/register", s.handleRegister)
	mux.HandleFunc("POST /api/login", s.handleLogin)
	mux.HandleFunc("POST /api/logout", s.handleLogout)
	mux.HandleFunc("GET /api/check_session", s.handleCheckSession)
	mux.Handle("POST /api/upload_url", s.withSession(http.HandlerFunc(s.handleUploadURL)))
	mux.Handle("GET /api/download_url", s.withSession(http.HandlerFunc(s.handleDownloadURL)))

	return s.withLogging(s.withCORS(mux))
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
