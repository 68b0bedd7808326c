package main

import (
	"net/http"

	"fandom/internal/app/auth"
	"fandom/internal/app/catalog"
	"fandom/internal/app/favorites"
	"fandom/internal/http/middleware"
	"fandom/internal/httpapi"
	"fandom/internal/store"
)

func newHTTPHandler(cfg Config, dataStore *store.Store) http.Handler {
	catalogSvc := catalog.New(dataStore)
	favoritesSvc := favorites.New(dataStore)
	authSvc := auth.New(dataStore, cfg.AuthSecret, cfg.AuthTokenTTL)

	handler := httpapi.New(catalogSvc, favoritesSvc, authSvc).Routes()

	handler = middleware.CORS(cfg.AllowedOrigins)(handler)
	handler = middleware.Metrics()(handler)
	handler = middleware.RequestLogging()(handler)
	handler = middleware.Recovery()(handler)

	return handler
}
