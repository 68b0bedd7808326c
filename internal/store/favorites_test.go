package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestCreateFavoriteLocationSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO favorite_locations (user_id, location_id)
		VALUES ($1, $2)
		RETURNING id
	`)).
		WithArgs(int64(7), int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(10)))
	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, email, is_active FROM users WHERE id = $1
	`)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "is_active"}).
			AddRow(int64(7), "demo@example.com", true))
	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, name, type FROM locations WHERE id = $1
	`)).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "type"}).
			AddRow(int64(3), "Earth (C-137)", "Planet"))
	mock.ExpectCommit()

	fav, err := s.CreateFavoriteLocation(context.Background(), 7, 3)
	if err != nil {
		t.Fatalf("CreateFavoriteLocation error: %v", err)
	}
	if fav.ID != 10 {
		t.Fatalf("expected favorite ID 10, got %d", fav.ID)
	}
	if fav.User.Email != "demo@example.com" {
		t.Fatalf("expected nested user, got %+v", fav.User)
	}
	if fav.Location.ID != 3 || fav.Location.Name != "Earth (C-137)" {
		t.Fatalf("expected nested location, got %+v", fav.Location)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateFavoriteLocationDuplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO favorite_locations (user_id, location_id)
		VALUES ($1, $2)
		RETURNING id
	`)).
		WithArgs(int64(7), int64(3)).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "favorite_locations_user_id_location_id_key"})
	mock.ExpectRollback()

	_, err = s.CreateFavoriteLocation(context.Background(), 7, 3)
	if !errors.Is(err, ErrFavoriteExists) {
		t.Fatalf("expected ErrFavoriteExists, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateFavoriteCharacterUnknownUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO favorite_characters (user_id, character_id)
		VALUES ($1, $2)
		RETURNING id
	`)).
		WithArgs(int64(99), int64(1)).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "favorite_characters_user_id_fkey"})
	mock.ExpectRollback()

	_, err = s.CreateFavoriteCharacter(context.Background(), 99, 1)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateFavoriteEpisodeUnknownEpisode(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO favorite_episodes (user_id, episode_id)
		VALUES ($1, $2)
		RETURNING id
	`)).
		WithArgs(int64(7), int64(42)).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "favorite_episodes_episode_id_fkey"})
	mock.ExpectRollback()

	_, err = s.CreateFavoriteEpisode(context.Background(), 7, 42)
	if !errors.Is(err, ErrEpisodeNotFound) {
		t.Fatalf("expected ErrEpisodeNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteFavoriteLocation(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectExec(regexp.QuoteMeta(`
		DELETE FROM favorite_locations
		WHERE user_id = $1 AND location_id = $2
	`)).
		WithArgs(int64(7), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	removed, err := s.DeleteFavoriteLocation(context.Background(), 7, 3)
	if err != nil {
		t.Fatalf("DeleteFavoriteLocation error: %v", err)
	}
	if !removed {
		t.Fatalf("expected removed = true")
	}

	mock.ExpectExec(regexp.QuoteMeta(`
		DELETE FROM favorite_locations
		WHERE user_id = $1 AND location_id = $2
	`)).
		WithArgs(int64(7), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	removed, err = s.DeleteFavoriteLocation(context.Background(), 7, 3)
	if err != nil {
		t.Fatalf("DeleteFavoriteLocation error on absent row: %v", err)
	}
	if removed {
		t.Fatalf("expected removed = false for absent row")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestLocationFavoriteExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT EXISTS(SELECT 1 FROM favorite_locations WHERE user_id = $1 AND location_id = $2)
	`)).
		WithArgs(int64(7), int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := s.LocationFavoriteExists(context.Background(), 7, 3)
	if err != nil {
		t.Fatalf("LocationFavoriteExists error: %v", err)
	}
	if !exists {
		t.Fatalf("expected exists = true")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListFavoriteEpisodes(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT f.id,
		       e.id, e.name, e.air_date, e.episode
		FROM favorite_episodes f
		JOIN episodes e ON e.id = f.episode_id
		WHERE f.user_id = $1
		ORDER BY f.id ASC
	`)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "id", "name", "air_date", "episode"}).
			AddRow(int64(1), int64(2), "Pilot", "December 2, 2013", "S01E01"))

	favorites, err := s.ListFavoriteEpisodes(context.Background(), 7)
	if err != nil {
		t.Fatalf("ListFavoriteEpisodes error: %v", err)
	}
	if len(favorites) != 1 {
		t.Fatalf("expected 1 favorite, got %d", len(favorites))
	}
	if favorites[0].Episode.Episode != "S01E01" {
		t.Fatalf("expected nested episode, got %+v", favorites[0].Episode)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
