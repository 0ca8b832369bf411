package app

import (
	"context"
	"log/slog"

	httpapp "github.com/carlosleonnard/fisionomia-social-hub-sub000/internal/app/http"
	"github.com/carlosleonnard/fisionomia-social-hub-sub000/internal/config"
	"github.com/carlosleonnard/fisionomia-social-hub-sub000/internal/handlers"
	"github.com/carlosleonnard/fisionomia-social-hub-sub000/internal/middleware"
	"github.com/carlosleonnard/fisionomia-social-hub-sub000/internal/notify"
	"github.com/carlosleonnard/fisionomia-social-hub-sub000/internal/repo/postgres"
	"github.com/carlosleonnard/fisionomia-social-hub-sub000/internal/services"
	"github.com/carlosleonnard/fisionomia-social-hub-sub000/internal/session"
)

type App struct {
	HTTPServer *httpapp.App
	Catalog    *services.Catalog

	storage  *postgres.Storage
	sessions *session.Store
}

func NewApp(log *slog.Logger, cfg *config.Config) *App {
	storage, err := postgres.New(cfg.StoragePath)
	if err != nil {
		panic(err)
	}

	sessionStore, err := session.NewStore(cfg.SessionStorePath)
	if err != nil {
		panic(err)
	}

	sessionManager := session.NewManager(sessionStore, storage)
	sink := notify.NewSlogSink(log)

	catalog := services.NewCatalog(log, storage, storage, storage, sessionStore, sessionManager, sink)
	handler := handlers.NewCatalogHandler(catalog)

	identity := middleware.NewJWTIdentity(cfg.JWT.Secret)
	authMiddleware := middleware.NewAuthMiddleware(identity)

	httpApp := httpapp.NewApp(log, cfg.HTTP.Port, handler, authMiddleware.Middleware())

	return &App{
		HTTPServer: httpApp,
		Catalog:    catalog,
		storage:    storage,
		sessions:   sessionStore,
	}
}

func (a *App) Stop(ctx context.Context) error {
	if err := a.HTTPServer.Stop(ctx); err != nil {
		return err
	}
	if err := a.sessions.Close(); err != nil {
		return err
	}
	return a.storage.Close()
}
