package server

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	ginhandler "notes-service/internal/adapter/gin/handler"
	"notes-service/internal/config"
	"notes-service/internal/usecase/auth"
	"notes-service/pkg/token"
)

// Server struct holds all server dependencies
type Server struct {
	Config *config.Config
	Logger *zap.Logger
	HTTP   *http.Server
}

// New creates a new server instance
func New(
	cfg *config.Config,
	l *zap.Logger,
	authHandler *ginhandler.AuthHandler,
	noteHandler *ginhandler.NoteHandler,
	tokens *token.Manager,
	users auth.Repository,
) *Server {
	return &Server{
		Config: cfg,
		Logger: l,
		HTTP:   SetupGinServer(authHandler, noteHandler, tokens, users, ":"+cfg.App.HTTPPort, l),
	}
}

// Start starts the HTTP server and blocks until it stops. A shutdown
// triggered elsewhere is not an error.
func (s *Server) Start() error {
	s.Logger.Info("HTTP server running", zap.String("address", s.HTTP.Addr))

	if err := s.HTTP.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
