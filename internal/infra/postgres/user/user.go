package infra_postgres_user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/reelcritic/core/internal/model"
)

var ErrUserNotFound = errors.New("user not found")

type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

type UserDB struct {
	ID              string    `db:"id"`
	Email           string    `db:"email"`
	FirstName       string    `db:"first_name"`
	LastName        string    `db:"last_name"`
	ProfileImageURL string    `db:"profile_image_url"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func (u *UserDB) ToDomain() model.User {
	return model.User{
		ID:              u.ID,
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		ProfileImageURL: u.ProfileImageURL,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

// Upsert mirrors the identity-provider account locally, refreshed on every login.
func (r *Repository) Upsert(ctx context.Context, identity model.Identity) (model.User, error) {
	query := `
		INSERT INTO users (id, email, first_name, last_name, profile_image_url)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			profile_image_url = EXCLUDED.profile_image_url,
			updated_at = NOW()
		RETURNING id, email, first_name, last_name, profile_image_url, created_at, updated_at
	`

	var row UserDB
	err := r.db.GetContext(ctx, &row, query,
		identity.ID, identity.Email, identity.FirstName, identity.LastName, identity.ProfileImageURL)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to upsert user: %w", err)
	}

	return row.ToDomain(), nil
}

func (r *Repository) LoadByID(ctx context.Context, id string) (model.User, error) {
	query := `
		SELECT id, email, first_name, last_name, profile_image_url, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var row UserDB
	err := r.db.GetContext(ctx, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, fmt.Errorf("failed to load user by id: %w", err)
	}

	return row.ToDomain(), nil
}
