package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"fandom/internal/store"
)

// favoriteKind binds a path segment to its request field and service calls,
// so the three favorite kinds share one set of handlers.
type favoriteKind struct {
	field  string
	list   func(r *http.Request, userID int64) (any, error)
	add    func(r *http.Request, userID, targetID int64) (any, error)
	remove func(r *http.Request, userID, targetID int64) error
}

func (s *Server) favoriteKind(name string) (favoriteKind, bool) {
	switch name {
	case "locations":
		return favoriteKind{
			field: "location_id",
			list: func(r *http.Request, userID int64) (any, error) {
				return s.favorites.ListLocations(r.Context(), userID)
			},
			add: func(r *http.Request, userID, targetID int64) (any, error) {
				return s.favorites.AddLocation(r.Context(), userID, targetID)
			},
			remove: func(r *http.Request, userID, targetID int64) error {
				return s.favorites.RemoveLocation(r.Context(), userID, targetID)
			},
		}, true
	case "characters":
		return favoriteKind{
			field: "character_id",
			list: func(r *http.Request, userID int64) (any, error) {
				return s.favorites.ListCharacters(r.Context(), userID)
			},
			add: func(r *http.Request, userID, targetID int64) (any, error) {
				return s.favorites.AddCharacter(r.Context(), userID, targetID)
			},
			remove: func(r *http.Request, userID, targetID int64) error {
				return s.favorites.RemoveCharacter(r.Context(), userID, targetID)
			},
		}, true
	case "episodes":
		return favoriteKind{
			field: "episode_id",
			list: func(r *http.Request, userID int64) (any, error) {
				return s.favorites.ListEpisodes(r.Context(), userID)
			},
			add: func(r *http.Request, userID, targetID int64) (any, error) {
				return s.favorites.AddEpisode(r.Context(), userID, targetID)
			},
			remove: func(r *http.Request, userID, targetID int64) error {
				return s.favorites.RemoveEpisode(r.Context(), userID, targetID)
			},
		}, true
	}
	return favoriteKind{}, false
}

// favoriteRequest pulls the kind, user id, and target id out of the request.
// The target id field is named after the kind (location_id, character_id,
// episode_id); a body without it is a validation error.
func (s *Server) favoriteRequest(w http.ResponseWriter, r *http.Request, needBody bool) (favoriteKind, int64, int64, bool) {
	kind, ok := s.favoriteKind(r.PathValue("kind"))
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "unknown favorite kind"})
		return favoriteKind{}, 0, 0, false
	}

	userID, ok := pathID(w, r, "userId")
	if !ok {
		return favoriteKind{}, 0, 0, false
	}

	if !needBody {
		return kind, userID, 0, true
	}

	body := map[string]int64{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return favoriteKind{}, 0, 0, false
	}
	targetID, present := body[kind.field]
	if !present {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing required field: " + kind.field})
		return favoriteKind{}, 0, 0, false
	}

	return kind, userID, targetID, true
}

func (s *Server) handleListFavorites(w http.ResponseWriter, r *http.Request) {
	kind, userID, _, ok := s.favoriteRequest(w, r, false)
	if !ok {
		return
	}

	favorites, err := kind.list(r, userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, favorites)
}

func (s *Server) handleAddFavorite(w http.ResponseWriter, r *http.Request) {
	kind, userID, targetID, ok := s.favoriteRequest(w, r, true)
	if !ok {
		return
	}

	favorite, err := kind.add(r, userID, targetID)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, store.ErrFavoriteExists):
			status = http.StatusConflict
		case errors.Is(err, store.ErrUserNotFound),
			errors.Is(err, store.ErrLocationNotFound),
			errors.Is(err, store.ErrCharacterNotFound),
			errors.Is(err, store.ErrEpisodeNotFound):
			status = http.StatusNotFound
		}
		writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, favorite)
}

func (s *Server) handleRemoveFavorite(w http.ResponseWriter, r *http.Request) {
	kind, userID, targetID, ok := s.favoriteRequest(w, r, true)
	if !ok {
		return
	}

	if err := kind.remove(r, userID, targetID); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	// Removal is idempotent: an absent favorite still replies success.
	writeJSON(w, http.StatusCreated, "Deleted successfully")
}

func (s *Server) handleFavoriteSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	summary, err := s.favorites.Summary(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "user not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
