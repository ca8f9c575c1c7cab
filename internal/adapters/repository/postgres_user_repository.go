package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/luuuuuuuilaguardia/internship-tracker/internal/core/domain"
)

type PostgresUserRepository struct {
	db *sqlx.DB
}

func NewPostgresUserRepository(db *sqlx.DB) *PostgresUserRepository {
	return &PostgresUserRepository{
		db: db,
	}
}

func (r *PostgresUserRepository) Create(ctx context.Context, user *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	configJSON, err := json.Marshal(user.Config)
	if err != nil {
		return fmt.Errorf("repository: marshal config failed: %w", err)
	}

	query := `
		INSERT INTO users (id, email, password_hash, first_name, last_name, config, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err = r.db.ExecContext(
		ctx,
		query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		configJSON,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			if pqErr.Code == "23505" {
				return domain.ErrEmailAlreadyExists
			}
		}
		return fmt.Errorf("repository: create user failed: %w", err)
	}

	return nil
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getByField(ctx, "id", id)
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getByField(ctx, "email", email)
}

func (r *PostgresUserRepository) getByField(ctx context.Context, field, value string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	query := fmt.Sprintf(`
		SELECT id, email, password_hash, first_name, last_name, config, created_at, updated_at
		FROM users
		WHERE %s = $1
	`, field)

	var user domain.User
	var configJSON []byte

	err := r.db.QueryRowContext(ctx, query, value).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.FirstName,
		&user.LastName,
		&configJSON,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: get user by %s failed: %w", field, err)
	}

	user.Config = domain.DefaultCalendarConfig()
	if len(configJSON) > 0 {
		if err := json.Unmarshal(configJSON, &user.Config); err != nil {
			return nil, fmt.Errorf("repository: unmarshal config failed: %w", err)
		}
	}

	return &user, nil
}

func (r *PostgresUserRepository) Update(ctx context.Context, user *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	configJSON, err := json.Marshal(user.Config)
	if err != nil {
		return fmt.Errorf("repository: marshal config failed: %w", err)
	}

	query := `
		UPDATE users
		SET first_name = $1,
		    last_name = $2,
		    config = $3,
		    updated_at = $4
		WHERE id = $5
	`

	result, err := r.db.ExecContext(ctx, query, user.FirstName, user.LastName, configJSON, user.UpdatedAt, user.ID)
	if err != nil {
		return fmt.Errorf("repository: update user failed: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}
