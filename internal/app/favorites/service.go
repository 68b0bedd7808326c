package favorites

import (
	"context"
	"errors"

	"fandom/internal/models"
	"fandom/internal/store"
)

// Store defines persistence operations required for favorites workflows.
type Store interface {
	UserByID(ctx context.Context, id int64) (models.User, error)

	ListFavoriteLocations(ctx context.Context, userID int64) ([]models.FavoriteLocation, error)
	LocationFavoriteExists(ctx context.Context, userID, locationID int64) (bool, error)
	CreateFavoriteLocation(ctx context.Context, userID, locationID int64) (*models.FavoriteLocation, error)
	DeleteFavoriteLocation(ctx context.Context, userID, locationID int64) (bool, error)

	ListFavoriteCharacters(ctx context.Context, userID int64) ([]models.FavoriteCharacter, error)
	CharacterFavoriteExists(ctx context.Context, userID, characterID int64) (bool, error)
	CreateFavoriteCharacter(ctx context.Context, userID, characterID int64) (*models.FavoriteCharacter, error)
	DeleteFavoriteCharacter(ctx context.Context, userID, characterID int64) (bool, error)

	ListFavoriteEpisodes(ctx context.Context, userID int64) ([]models.FavoriteEpisode, error)
	EpisodeFavoriteExists(ctx context.Context, userID, episodeID int64) (bool, error)
	CreateFavoriteEpisode(ctx context.Context, userID, episodeID int64) (*models.FavoriteEpisode, error)
	DeleteFavoriteEpisode(ctx context.Context, userID, episodeID int64) (bool, error)
}

// Service describes high level favorites operations used by HTTP handlers.
type Service interface {
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

type service struct {
	store Store
}

// New constructs a favorites Service backed by the given store.
func New(st Store) Service {
	return &service{store: st}
}

func (s *service) ListLocations(ctx context.Context, userID int64) ([]models.FavoriteLocation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	favs, err := s.store.ListFavoriteLocations(ctx, userID)
	if err != nil {
		return nil, err
	}
	if favs == nil {
		favs = []models.FavoriteLocation{}
	}
	return favs, nil
}

// AddLocation pre-checks for a duplicate to short-circuit the common case.
// Two concurrent adds can both pass the check; the join table's unique
// constraint catches the loser, which the store reports as the same
// ErrFavoriteExists.
func (s *service) AddLocation(ctx context.Context, userID, locationID int64) (*models.FavoriteLocation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	exists, err := s.store.LocationFavoriteExists(ctx, userID, locationID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, store.ErrFavoriteExists
	}
	return s.store.CreateFavoriteLocation(ctx, userID, locationID)
}

func (s *service) RemoveLocation(ctx context.Context, userID, locationID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	// Removing an absent favorite is a success.
	_, err := s.store.DeleteFavoriteLocation(ctx, userID, locationID)
	return err
}

func (s *service) ListCharacters(ctx context.Context, userID int64) ([]models.FavoriteCharacter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	favs, err := s.store.ListFavoriteCharacters(ctx, userID)
	if err != nil {
		return nil, err
	}
	if favs == nil {
		favs = []models.FavoriteCharacter{}
	}
	return favs, nil
}

func (s *service) AddCharacter(ctx context.Context, userID, characterID int64) (*models.FavoriteCharacter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	exists, err := s.store.CharacterFavoriteExists(ctx, userID, characterID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, store.ErrFavoriteExists
	}
	return s.store.CreateFavoriteCharacter(ctx, userID, characterID)
}

func (s *service) RemoveCharacter(ctx context.Context, userID, characterID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := s.store.DeleteFavoriteCharacter(ctx, userID, characterID)
	return err
}

func (s *service) ListEpisodes(ctx context.Context, userID int64) ([]models.FavoriteEpisode, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	favs, err := s.store.ListFavoriteEpisodes(ctx, userID)
	if err != nil {
		return nil, err
	}
	if favs == nil {
		favs = []models.FavoriteEpisode{}
	}
	return favs, nil
}

func (s *service) AddEpisode(ctx context.Context, userID, episodeID int64) (*models.FavoriteEpisode, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	exists, err := s.store.EpisodeFavoriteExists(ctx, userID, episodeID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, store.ErrFavoriteExists
	}
	return s.store.CreateFavoriteEpisode(ctx, userID, episodeID)
}

func (s *service) RemoveEpisode(ctx context.Context, userID, episodeID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := s.store.DeleteFavoriteEpisode(ctx, userID, episodeID)
	return err
}

// Summary resolves the user and merges their three favorite collections.
// The three reads are independent; under concurrent writes they may observe
// slightly different snapshots.
func (s *service) Summary(ctx context.Context, userID int64) (*models.FavoriteSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := s.store.UserByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, store.ErrUserNotFound
		}
		return nil, err
	}

	locations, err := s.ListLocations(ctx, userID)
	if err != nil {
		return nil, err
	}
	characters, err := s.ListCharacters(ctx, userID)
	if err != nil {
		return nil, err
	}
	episodes, err := s.ListEpisodes(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &models.FavoriteSummary{
		Locations:  locations,
		Characters: characters,
		Episodes:   episodes,
	}, nil
}
