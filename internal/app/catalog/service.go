package catalog

import (
	"context"

	"fandom/internal/models"
)

// Store describes the read-only lookups the catalog service depends on.
// Reference records are seeded out-of-band; nothing here mutates them.
type Store interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	ListCharacters(ctx context.Context) ([]models.Character, error)
	ListLocations(ctx context.Context) ([]models.Location, error)
	ListEpisodes(ctx context.Context) ([]models.Episode, error)
	CharacterByID(ctx context.Context, id int64) (models.Character, error)
	LocationByID(ctx context.Context, id int64) (models.Location, error)
	EpisodeByID(ctx context.Context, id int64) (models.Episode, error)
}

// Service exposes reference-data reads to the HTTP layer.
type Service interface {
	Users(ctx context.Context) ([]models.User, error)
	Characters(ctx context.Context) ([]models.Character, error)
	Locations(ctx context.Context) ([]models.Location, error)
	Episodes(ctx context.Context) ([]models.Episode, error)
	Character(ctx context.Context, id int64) (models.Character, error)
	Location(ctx context.Context, id int64) (models.Location, error)
	Episode(ctx context.Context, id int64) (models.Episode, error)
}

type service struct {
	store Store
}

// New wires a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Users(ctx context.Context) ([]models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

func (s *service) Characters(ctx context.Context) ([]models.Character, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	characters, err := s.store.ListCharacters(ctx)
	if err != nil {
		return nil, err
	}
	if characters == nil {
		characters = []models.Character{}
	}
	return characters, nil
}

func (s *service) Locations(ctx context.Context) ([]models.Location, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	locations, err := s.store.ListLocations(ctx)
	if err != nil {
		return nil, err
	}
	if locations == nil {
		locations = []models.Location{}
	}
	return locations, nil
}

func (s *service) Episodes(ctx context.Context) ([]models.Episode, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	episodes, err := s.store.ListEpisodes(ctx)
	if err != nil {
		return nil, err
	}
	if episodes == nil {
		episodes = []models.Episode{}
	}
	return episodes, nil
}

func (s *service) Character(ctx context.Context, id int64) (models.Character, error) {
	if err := ctx.Err(); err != nil {
		return models.Character{}, err
	}
	return s.store.CharacterByID(ctx, id)
}

func (s *service) Location(ctx context.Context, id int64) (models.Location, error) {
	if err := ctx.Err(); err != nil {
		return models.Location{}, err
	}
	return s.store.LocationByID(ctx, id)
}

func (s *service) Episode(ctx context.Context, id int64) (models.Episode, error) {
	if err := ctx.Err(); err != nil {
		return models.Episode{}, err
	}
	return s.store.EpisodeByID(ctx, id)
}
