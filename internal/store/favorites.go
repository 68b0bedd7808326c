package store

import (
	"context"
	"fmt"

	"fandom/internal/models"
)

// The favorite join tables each carry a UNIQUE (user_id, target_id)
// constraint. The services run an existence pre-check for a friendlier
// error, but under concurrent adds the constraint here is what actually
// prevents duplicates; a violating insert maps to ErrFavoriteExists.
// Foreign key violations map to the not-found error of the missing side.

// ListFavoriteLocations returns a user's location favorites with the user
// and location records nested.
func (s *Store) ListFavoriteLocations(ctx context.Context, userID int64) ([]models.FavoriteLocation, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
		SELECT f.id,
		       u.id, u.email, u.is_active,
		       l.id, l.name, l.type
		FROM favorite_locations f
		JOIN users u ON u.id = f.user_id
		JOIN locations l ON l.id = f.location_id
		WHERE f.user_id = $1
		ORDER BY f.id ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorite locations: %w", err)
	}
	defer rows.Close()

	var favorites []models.FavoriteLocation
	for rows.Next() {
		var fav models.FavoriteLocation
		if err := rows.Scan(
			&fav.ID,
			&fav.User.ID, &fav.User.Email, &fav.User.IsActive,
			&fav.Location.ID, &fav.Location.Name, &fav.Location.Type,
		); err != nil {
			return nil, fmt.Errorf("scan favorite location: %w", err)
		}
		favorites = append(favorites, fav)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate favorite locations: %w", err)
	}
	return favorites, nil
}

// LocationFavoriteExists reports whether the user already favorited the location.
func (s *Store) LocationFavoriteExists(ctx context.Context, userID, locationID int64) (bool, error) {
	return s.favoriteExists(ctx, `
		SELECT EXISTS(SELECT 1 FROM favorite_locations WHERE user_id = $1 AND location_id = $2)
	`, userID, locationID)
}

// CreateFavoriteLocation persists a new location favorite and returns it
// with the user and location records nested.
func (s *Store) CreateFavoriteLocation(ctx context.Context, userID, locationID int64) (*models.FavoriteLocation, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	var fav models.FavoriteLocation
	err = tx.QueryRowContext(ctx, `
		INSERT INTO favorite_locations (user_id, location_id)
		VALUES ($1, $2)
		RETURNING id
	`, userID, locationID).Scan(&fav.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrFavoriteExists
		}
		switch fkViolationConstraint(err) {
		case "favorite_locations_user_id_fkey":
			return nil, ErrUserNotFound
		case "favorite_locations_location_id_fkey":
			return nil, ErrLocationNotFound
		}
		return nil, fmt.Errorf("insert favorite location: %w", err)
	}

	if err := tx.QueryRowContext(ctx, `
		SELECT id, email, is_active FROM users WHERE id = $1
	`, userID).Scan(&fav.User.ID, &fav.User.Email, &fav.User.IsActive); err != nil {
		return nil, fmt.Errorf("select favorite user: %w", err)
	}
	if err := tx.QueryRowContext(ctx, `
		SELECT id, name, type FROM locations WHERE id = $1
	`, locationID).Scan(&fav.Location.ID, &fav.Location.Name, &fav.Location.Type); err != nil {
		return nil, fmt.Errorf("select favorite location: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit favorite location: %w", err)
	}
	tx = nil

	return &fav, nil
}

// DeleteFavoriteLocation removes a location favorite if present and reports
// whether a record was removed. Absence is not an error.
func (s *Store) DeleteFavoriteLocation(ctx context.Context, userID, locationID int64) (bool, error) {
	return s.deleteFavorite(ctx, `
		DELETE FROM favorite_locations
		WHERE user_id = $1 AND location_id = $2
	`, userID, locationID)
}

// ListFavoriteCharacters returns a user's character favorites with the user
// and character records nested.
func (s *Store) ListFavoriteCharacters(ctx context.Context, userID int64) ([]models.FavoriteCharacter, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
		SELECT f.id,
		       u.id, u.email, u.is_active,
		       c.id, c.name, c.status, c.species, c.gender
		FROM favorite_characters f
		JOIN users u ON u.id = f.user_id
		JOIN characters c ON c.id = f.character_id
		WHERE f.user_id = $1
		ORDER BY f.id ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorite characters: %w", err)
	}
	defer rows.Close()

	var favorites []models.FavoriteCharacter
	for rows.Next() {
		var fav models.FavoriteCharacter
		if err := rows.Scan(
			&fav.ID,
			&fav.User.ID, &fav.User.Email, &fav.User.IsActive,
			&fav.Character.ID, &fav.Character.Name, &fav.Character.Status,
			&fav.Character.Species, &fav.Character.Gender,
		); err != nil {
			return nil, fmt.Errorf("scan favorite character: %w", err)
		}
		favorites = append(favorites, fav)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate favorite characters: %w", err)
	}
	return favorites, nil
}

// CharacterFavoriteExists reports whether the user already favorited the character.
func (s *Store) CharacterFavoriteExists(ctx context.Context, userID, characterID int64) (bool, error) {
	return s.favoriteExists(ctx, `
		SELECT EXISTS(SELECT 1 FROM favorite_characters WHERE user_id = $1 AND character_id = $2)
	`, userID, characterID)
}

// CreateFavoriteCharacter persists a new character favorite and returns it
// with the user and character records nested.
func (s *Store) CreateFavoriteCharacter(ctx context.Context, userID, characterID int64) (*models.FavoriteCharacter, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	var fav models.FavoriteCharacter
	err = tx.QueryRowContext(ctx, `
		INSERT INTO favorite_characters (user_id, character_id)
		VALUES ($1, $2)
		RETURNING id
	`, userID, characterID).Scan(&fav.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrFavoriteExists
		}
		switch fkViolationConstraint(err) {
		case "favorite_characters_user_id_fkey":
			return nil, ErrUserNotFound
		case "favorite_characters_character_id_fkey":
			return nil, ErrCharacterNotFound
		}
		return nil, fmt.Errorf("insert favorite character: %w", err)
	}

	if err := tx.QueryRowContext(ctx, `
		SELECT id, email, is_active FROM users WHERE id = $1
	`, userID).Scan(&fav.User.ID, &fav.User.Email, &fav.User.IsActive); err != nil {
		return nil, fmt.Errorf("select favorite user: %w", err)
	}
	if err := tx.QueryRowContext(ctx, `
		SELECT id, name, status, species, gender FROM characters WHERE id = $1
	`, characterID).Scan(&fav.Character.ID, &fav.Character.Name, &fav.Character.Status,
		&fav.Character.Species, &fav.Character.Gender); err != nil {
		return nil, fmt.Errorf("select favorite character: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit favorite character: %w", err)
	}
	tx = nil

	return &fav, nil
}

// DeleteFavoriteCharacter removes a character favorite if present and
// reports whether a record was removed.
func (s *Store) DeleteFavoriteCharacter(ctx context.Context, userID, characterID int64) (bool, error) {
	return s.deleteFavorite(ctx, `
		DELETE FROM favorite_characters
		WHERE user_id = $1 AND character_id = $2
	`, userID, characterID)
}

// ListFavoriteEpisodes returns a user's episode favorites with the episode
// record nested.
func (s *Store) ListFavoriteEpisodes(ctx context.Context, userID int64) ([]models.FavoriteEpisode, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
		SELECT f.id,
		       e.id, e.name, e.air_date, e.episode
		FROM favorite_episodes f
		JOIN episodes e ON e.id = f.episode_id
		WHERE f.user_id = $1
		ORDER BY f.id ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorite episodes: %w", err)
	}
	defer rows.Close()

	var favorites []models.FavoriteEpisode
	for rows.Next() {
		var fav models.FavoriteEpisode
		if err := rows.Scan(
			&fav.ID,
			&fav.Episode.ID, &fav.Episode.Name, &fav.Episode.AirDate, &fav.Episode.Episode,
		); err != nil {
			return nil, fmt.Errorf("scan favorite episode: %w", err)
		}
		favorites = append(favorites, fav)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate favorite episodes: %w", err)
	}
	return favorites, nil
}

// EpisodeFavoriteExists reports whether the user already favorited the episode.
func (s *Store) EpisodeFavoriteExists(ctx context.Context, userID, episodeID int64) (bool, error) {
	return s.favoriteExists(ctx, `
		SELECT EXISTS(SELECT 1 FROM favorite_episodes WHERE user_id = $1 AND episode_id = $2)
	`, userID, episodeID)
}

// CreateFavoriteEpisode persists a new episode favorite and returns it with
// the episode record nested.
func (s *Store) CreateFavoriteEpisode(ctx context.Context, userID, episodeID int64) (*models.FavoriteEpisode, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	var fav models.FavoriteEpisode
	err = tx.QueryRowContext(ctx, `
		INSERT INTO favorite_episodes (user_id, episode_id)
		VALUES ($1, $2)
		RETURNING id
	`, userID, episodeID).Scan(&fav.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrFavoriteExists
		}
		switch fkViolationConstraint(err) {
		case "favorite_episodes_user_id_fkey":
			return nil, ErrUserNotFound
		case "favorite_episodes_episode_id_fkey":
			return nil, ErrEpisodeNotFound
		}
		return nil, fmt.Errorf("insert favorite episode: %w", err)
	}

	if err := tx.QueryRowContext(ctx, `
		SELECT id, name, air_date, episode FROM episodes WHERE id = $1
	`, episodeID).Scan(&fav.Episode.ID, &fav.Episode.Name, &fav.Episode.AirDate,
		&fav.Episode.Episode); err != nil {
		return nil, fmt.Errorf("select favorite episode: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit favorite episode: %w", err)
	}
	tx = nil

	return &fav, nil
}

// DeleteFavoriteEpisode removes an episode favorite if present and reports
// whether a record was removed.
func (s *Store) DeleteFavoriteEpisode(ctx context.Context, userID, episodeID int64) (bool, error) {
	return s.deleteFavorite(ctx, `
		DELETE FROM favorite_episodes
		WHERE user_id = $1 AND episode_id = $2
	`, userID, episodeID)
}

func (s *Store) favoriteExists(ctx context.Context, query string, userID, targetID int64) (bool, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, userID, targetID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check favorite: %w", err)
	}
	return exists, nil
}

func (s *Store) deleteFavorite(ctx context.Context, query string, userID, targetID int64) (bool, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	res, err := s.db.ExecContext(ctx, query, userID, targetID)
	if err != nil {
		return false, fmt.Errorf("delete favorite: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}
