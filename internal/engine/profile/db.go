// Package profile stores per-student skill profiles in PostgreSQL.
package profile

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// Package-level singleton, set from main.go. Nil means profiles are
// disabled and the profile tools report that.
var profileDB *DB

// SetProfileDB sets the package-level profile DB instance.
func SetProfileDB(db *DB) { profileDB = db }

// GetProfileDB returns the package-level profile DB instance (may be nil).
func GetProfileDB() *DB { return profileDB }

// Profile is one student's stored skills and preferences.
type Profile struct {
	UserID      string    `json:"user_id"`
	Skills      []string  `json:"skills"`
	Preferences string    `json:"preferences"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DB holds the pgx connection pool for profile storage.
type DB struct {
	pool *pgxpool.Pool
}

// Connect creates a pgx pool and runs schema migrations.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	if databaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}
	config.MaxConns = 10
	config.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	db := &DB{pool: pool}
	if err := db.runMigrations(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	slog.Info("profile postgres connected", slog.String("addr", config.ConnConfig.Host))
	return db, nil
}

func (db *DB) Close() {
	db.pool.Close()
}

func (db *DB) runMigrations(ctx context.Context) error {
	entries, err := schemaFS.ReadDir("schema")
	if err != nil {
		return fmt.Errorf("read schema dir: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		data, err := schemaFS.ReadFile("schema/" + entry.Name())
		if err != nil {
			return fmt.Errorf("read %s: %w", entry.Name(), err)
		}
		if _, err := db.pool.Exec(ctx, string(data)); err != nil {
			return fmt.Errorf("apply %s: %w", entry.Name(), err)
		}
	}
	return nil
}

// Get loads a profile. ok=false means the user has never saved one.
func (db *DB) Get(ctx context.Context, userID string) (Profile, bool, error) {
	var p Profile
	err := db.pool.QueryRow(ctx,
		`SELECT user_id, skills, preferences, updated_at
		 FROM campus_profiles WHERE user_id = $1`, userID,
	).Scan(&p.UserID, &p.Skills, &p.Preferences, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Profile{}, false, nil
	}
	if err != nil {
		return Profile{}, false, fmt.Errorf("profile get: %w", err)
	}
	return p, true, nil
}

// Save upserts a profile.
func (db *DB) Save(ctx context.Context, p Profile) error {
	if p.UserID == "" {
		return errors.New("user_id is required")
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}

	_, err := db.pool.Exec(ctx,
		`INSERT INTO campus_profiles (user_id, skills, preferences, updated_at)
		 VALUES ($1, $2, $3, now())
		 ON CONFLICT (user_id) DO UPDATE SET
		   skills = excluded.skills,
		   preferences = excluded.preferences,
		   updated_at = now()`,
		p.UserID, p.Skills, p.Preferences,
	)
	if err != nil {
		return fmt.Errorf("profile save: %w", err)
	}
	return nil
}
