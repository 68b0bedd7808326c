package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fandom/internal/app/auth"
	"fandom/internal/models"
	"fandom/internal/store"
)

// CatalogService captures the reference-data reads needed by the HTTP handlers.
type CatalogService interface {
	Users(ctx context.Context) ([]models.User, error)
	Characters(ctx context.Context) ([]models.Character, error)
	Locations(ctx context.Context) ([]models.Location, error)
	Episodes(ctx context.Context) ([]models.Episode, error)
	Character(ctx context.Context, id int64) (models.Character, error)
	Location(ctx context.Context, id int64) (models.Location, error)
	Episode(ctx context.Context, id int64) (models.Episode, error)
}

// FavoritesService coordinates favoriting workflows.
type FavoritesService interface {
	ListLocations(ctx context.Context, userID int64) ([]models.FavoriteLocation, error)
	AddLocation(ctx context.Context, userID, locationID int64) (*models.FavoriteLocation, error)
	RemoveLocation(ctx context.Context, userID, locationID int64) error

	ListCharacters(ctx context.Context, userID int64) ([]models.FavoriteCharacter, error)
	AddCharacter(ctx context.Context, userID, characterID int64) (*models.FavoriteCharacter, error)
	RemoveCharacter(ctx context.Context, userID, characterID int64) error

	ListEpisodes(ctx context.Context, userID int64) ([]models.FavoriteEpisode, error)
	AddEpisode(ctx context.Context, userID, episodeID int64) (*models.FavoriteEpisode, error)
	RemoveEpisode(ctx context.Context, userID, episodeID int64) error

	Summary(ctx context.Context, userID int64) (*models.FavoriteSummary, error)
}

// AuthService issues tokens for valid credentials.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	catalog   CatalogService
	favorites FavoritesService
	auth      AuthService
}

// New configures a Server with the given services.
func New(catalog CatalogService, favorites FavoritesService, authSvc AuthService) *Server {
	return &Server{
		catalog:   catalog,
		favorites: favorites,
		auth:      authSvc,
	}
}

// Routes exposes the HTTP handlers for reference data and favorites.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("POST /auth/login", s.handleLogin)

	// Reference data
	mux.HandleFunc("GET /users", s.handleUsers)
	mux.HandleFunc("GET /characters", s.handleCharacters)
	mux.HandleFunc("GET /characters/{id}", s.handleCharacter)
	mux.HandleFunc("GET /locations", s.handleLocations)
	mux.HandleFunc("GET /locations/{id}", s.handleLocation)
	mux.HandleFunc("GET /episodes", s.handleEpisodes)
	mux.HandleFunc("GET /episodes/{id}", s.handleEpisode)

	// Favorites
	mux.HandleFunc("GET /favorite/{kind}/{userId}", s.handleListFavorites)
	mux.HandleFunc("POST /favorite/{kind}/{userId}", s.handleAddFavorite)
	mux.HandleFunc("DELETE /favorite/{kind}/{userId}", s.handleRemoveFavorite)
	mux.HandleFunc("GET /users/favorites/{userId}", s.handleFavoriteSummary)

	return mux
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	token, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, auth.ErrInvalidCredentials) {
			status = http.StatusUnauthorized
		}
		writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}

func (s *Server) handleUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.catalog.Users(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (s *Server) handleCharacters(w http.ResponseWriter, r *http.Request) {
	characters, err := s.catalog.Characters(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, characters)
}

func (s *Server) handleCharacter(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	character, err := s.catalog.Character(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrCharacterNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "character not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, character)
}

func (s *Server) handleLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := s.catalog.Locations(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, locations)
}

func (s *Server) handleLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	location, err := s.catalog.Location(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrLocationNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "location not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, location)
}

func (s *Server) handleEpisodes(w http.ResponseWriter, r *http.Request) {
	episodes, err := s.catalog.Episodes(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, episodes)
}

func (s *Server) handleEpisode(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	episode, err := s.catalog.Episode(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrEpisodeNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "episode not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, episode)
}

// pathID parses an integer path value, replying 400 on a malformed one.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid " + name + " parameter"})
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}
