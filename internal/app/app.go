package app

import (
	"context"
	"net/http"
	"time"

	"gorm.io/gorm"
	"projectconnect-go/internal/auth"
	"projectconnect-go/internal/config"
	"projectconnect-go/internal/db"
	bidsdomain "projectconnect-go/internal/domain/bids"
	projectsdomain "projectconnect-go/internal/domain/projects"
	userdomain "projectconnect-go/internal/domain/user"
	"projectconnect-go/internal/repository/inmemory"
	bidsrepo "projectconnect-go/internal/repository/postgres/bids"
	projectsrepo "projectconnect-go/internal/repository/postgres/projects"
	userrepo "projectconnect-go/internal/repository/postgres/user"
	"projectconnect-go/internal/transport/httpserver"
	"projectconnect-go/internal/transport/httpserver/handler"
	authmw "projectconnect-go/internal/transport/httpserver/middleware"
	"projectconnect-go/pkg/logger"
)

const migrateTimeout = time.Minute

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
	log        logger.Logger
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if cfg.DB.AutoMigrate {
		ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
		// A failed migration is reported but does not stop the server.
		if err := db.Migrate(ctx, dbConn, log); err != nil {
			log.InternalError("db: migration failed", err)
		}
		cancel()
	}

	log.Info("app: initializing router")
	router := NewHandler(cfg, dbConn, log)

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
		log:        log,
	}, nil
}

// NewHandler wires repositories, services and routes over an open database.
func NewHandler(cfg config.Config, dbConn *gorm.DB, log logger.Logger) http.Handler {
	opts := userdomain.Options{BcryptCost: cfg.Auth.BcryptCost}
	if cfg.Auth.VerifyUser {
		opts.Cache = inmemory.NewUserCache()
		opts.CacheTTL = cfg.Auth.UserCacheTTL
	}

	tokens := auth.NewJWT(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	userService := userdomain.NewService(userrepo.NewPostgres(dbConn), tokens, opts)
	projectsService := projectsdomain.NewService(projectsrepo.NewPostgres(dbConn))
	bidsService := bidsdomain.NewService(bidsrepo.NewPostgres(dbConn))

	handlers := handler.New(userService, projectsService, bidsService, log)
	authMiddleware := authmw.NewJWTAuth(userService, cfg.Auth.VerifyUser, log)

	return httpserver.NewRouter(cfg, handlers, authMiddleware)
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
