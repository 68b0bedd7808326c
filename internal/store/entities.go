package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fandom/internal/models"
)

// UserByID fetches a single user.
func (s *Store) UserByID(ctx context.Context, id int64) (models.User, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var u models.User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, email, is_active
		FROM users
		WHERE id = $1
	`, id).Scan(&u.ID, &u.Email, &u.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("select user: %w", err)
	}
	return u, nil
}

// UserCredentials fetches a user together with their password hash for
// authentication. The hash never travels on any other read path.
func (s *Store) UserCredentials(ctx context.Context, email string) (models.User, []byte, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var (
		u    models.User
		hash []byte
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, email, is_active, password_hash
		FROM users
		WHERE email = $1
	`, email).Scan(&u.ID, &u.Email, &u.IsActive, &hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, nil, ErrUserNotFound
		}
		return models.User{}, nil, fmt.Errorf("select user credentials: %w", err)
	}
	return u, hash, nil
}

// ListUsers returns every user record.
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, email, is_active
		FROM users
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Email, &u.IsActive); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

// CharacterByID fetches a single character.
func (s *Store) CharacterByID(ctx context.Context, id int64) (models.Character, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var c models.Character
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, status, species, gender
		FROM characters
		WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.Status, &c.Species, &c.Gender)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Character{}, ErrCharacterNotFound
		}
		return models.Character{}, fmt.Errorf("select character: %w", err)
	}
	return c, nil
}

// ListCharacters returns every character record.
func (s *Store) ListCharacters(ctx context.Context) ([]models.Character, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, status, species, gender
		FROM characters
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}
	defer rows.Close()

	var characters []models.Character
	for rows.Next() {
		var c models.Character
		if err := rows.Scan(&c.ID, &c.Name, &c.Status, &c.Species, &c.Gender); err != nil {
			return nil, fmt.Errorf("scan character: %w", err)
		}
		characters = append(characters, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate characters: %w", err)
	}
	return characters, nil
}

// LocationByID fetches a single location.
func (s *Store) LocationByID(ctx context.Context, id int64) (models.Location, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var l models.Location
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, type
		FROM locations
		WHERE id = $1
	`, id).Scan(&l.ID, &l.Name, &l.Type)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Location{}, ErrLocationNotFound
		}
		return models.Location{}, fmt.Errorf("select location: %w", err)
	}
	return l, nil
}

// ListLocations returns every location record.
func (s *Store) ListLocations(ctx context.Context) ([]models.Location, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, type
		FROM locations
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	var locations []models.Location
	for rows.Next() {
		var l models.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Type); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		locations = append(locations, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate locations: %w", err)
	}
	return locations, nil
}

// EpisodeByID fetches a single episode.
func (s *Store) EpisodeByID(ctx context.Context, id int64) (models.Episode, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var e models.Episode
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, air_date, episode
		FROM episodes
		WHERE id = $1
	`, id).Scan(&e.ID, &e.Name, &e.AirDate, &e.Episode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Episode{}, ErrEpisodeNotFound
		}
		return models.Episode{}, fmt.Errorf("select episode: %w", err)
	}
	return e, nil
}

// ListEpisodes returns every episode record.
func (s *Store) ListEpisodes(ctx context.Context) ([]models.Episode, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, air_date, episode
		FROM episodes
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list episodes: %w", err)
	}
	defer rows.Close()

	var episodes []models.Episode
	for rows.Next() {
		var e models.Episode
		if err := rows.Scan(&e.ID, &e.Name, &e.AirDate, &e.Episode); err != nil {
			return nil, fmt.Errorf("scan episode: %w", err)
		}
		episodes = append(episodes, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate episodes: %w", err)
	}
	return episodes, nil
}
