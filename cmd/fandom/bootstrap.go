package main

import (
	"context"
	"database/sql"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// seedReferenceData loads a starter data set on first boot. Reference
// records are created out-of-band like this; the API itself never writes
// them.
func seedReferenceData(ctx context.Context, db *sql.DB) error {
	exists, err := tableExists(ctx, db, "users")
	if err != nil {
		return fmt.Errorf("check users table: %w", err)
	}
	if !exists {
		return nil
	}

	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO users (email, password_hash, is_active)
		VALUES ($1, $2, TRUE)
	`, "demo@example.com", hash); err != nil {
		return fmt.Errorf("insert demo user: %w", err)
	}

	characters := []struct {
		Name, Status, Species, Gender string
	}{
		{"Rick Sanchez", "Alive", "Human", "Male"},
		{"Morty Smith", "Alive", "Human", "Male"},
		{"Summer Smith", "Alive", "Human", "Female"},
		{"Beth Smith", "Alive", "Human", "Female"},
		{"Birdperson", "Dead", "Bird-Person", "Male"},
	}
	for _, c := range characters {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO characters (name, status, species, gender)
			VALUES ($1, $2, $3, $4)
		`, c.Name, c.Status, c.Species, c.Gender); err != nil {
			return fmt.Errorf("insert character %q: %w", c.Name, err)
		}
	}

	locations := []struct {
		Name, Type string
	}{
		{"Earth (C-137)", "Planet"},
		{"Citadel of Ricks", "Space station"},
		{"Interdimensional Cable", "TV"},
	}
	for _, l := range locations {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO locations (name, type)
			VALUES ($1, $2)
		`, l.Name, l.Type); err != nil {
			return fmt.Errorf("insert location %q: %w", l.Name, err)
		}
	}

	episodes := []struct {
		Name, AirDate, Episode string
	}{
		{"Pilot", "December 2, 2013", "S01E01"},
		{"Lawnmower Dog", "December 9, 2013", "S01E02"},
		{"Anatomy Park", "December 16, 2013", "S01E03"},
	}
	for _, e := range episodes {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO episodes (name, air_date, episode)
			VALUES ($1, $2, $3)
		`, e.Name, e.AirDate, e.Episode); err != nil {
			return fmt.Errorf("insert episode %q: %w", e.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	tx = nil

	return nil
}

type queryRower interface {
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

func tableExists(ctx context.Context, q queryRower, table string) (bool, error) {
	var name sql.NullString
	if err := q.QueryRowContext(ctx, `SELECT to_regclass($1)`, table).Scan(&name); err != nil {
		return false, err
	}
	return name.Valid, nil
}
