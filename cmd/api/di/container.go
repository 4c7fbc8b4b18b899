package di

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"notes-service/cmd/api/infrastructure"
	"notes-service/internal/adapter/cache"
	"notes-service/internal/adapter/db/postgres"
	ginhandler "notes-service/internal/adapter/gin/handler"
	"notes-service/internal/adapter/repository/cached"
	"notes-service/internal/config"
	"notes-service/internal/usecase/auth"
	"notes-service/internal/usecase/note"
	redisclient "notes-service/pkg/redis"
	"notes-service/pkg/token"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	DB          *gorm.DB
	RedisClient *redisclient.Client
	Tokens      *token.Manager
	UserRepo    auth.Repository
	AuthUC      auth.Usecase
	NoteUC      note.Usecase
	AuthHandler *ginhandler.AuthHandler
	NoteHandler *ginhandler.NoteHandler
}

// NewContainer creates and initializes all application dependencies
func NewContainer(cfg *config.Config, l *zap.Logger) (*Container, error) {
	// Validate configuration before initializing any dependencies
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	db, err := infrastructure.NewDatabase(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	userRepoPG := postgres.NewUserRepoPG(db, l)
	noteRepo := postgres.NewNoteRepoPG(db, l)

	// The user cache serves the access gate, which resolves the token
	// identity on every protected request. A zero TTL runs without Redis.
	var rdb *redisclient.Client
	var userCache cache.UserCache
	if cfg.Redis.CacheTTL > 0 {
		rdb, err = infrastructure.NewRedisClient(cfg, l)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Redis: %w", err)
		}
		userCache = cache.NewRedisUserCache(
			rdb.Client,
			time.Duration(cfg.Redis.CacheTTL)*time.Second,
			l,
		)
	}

	userRepo := cached.NewCachedUserRepository(userRepoPG, userCache, l)

	tokens := token.NewManager(
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLHrs)*time.Hour,
	)

	authUC := auth.New(userRepo, tokens, l)
	noteUC := note.New(noteRepo, l)

	return &Container{
		Config:      cfg,
		Logger:      l,
		DB:          db,
		RedisClient: rdb,
		Tokens:      tokens,
		UserRepo:    userRepo,
		AuthUC:      authUC,
		NoteUC:      noteUC,
		AuthHandler: ginhandler.NewAuthHandler(authUC, l),
		NoteHandler: ginhandler.NewNoteHandler(noteUC, l),
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	if c.DB != nil {
		if err := infrastructure.CloseDatabase(c.DB); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("container close errors: %v", errs)
	}

	return nil
}
