package server

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	ginhandler "notes-service/internal/adapter/gin/handler"
	ginrouter "notes-service/internal/adapter/gin/router"
	"notes-service/internal/usecase/auth"
	"notes-service/pkg/token"
)

// SetupGinServer creates and configures the Gin REST API server
func SetupGinServer(
	authHandler *ginhandler.AuthHandler,
	noteHandler *ginhandler.NoteHandler,
	tokens *token.Manager,
	users auth.Repository,
	addr string,
	l *zap.Logger,
) *http.Server {
	router := ginrouter.SetupRouter(authHandler, noteHandler, tokens, users, l)

	l.Info("Gin REST API configured", zap.String("address", addr))

	return &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 2 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
