package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"recipeshare/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	countUserByUsernameSQL  = `SELECT COUNT(1) FROM users WHERE username = ?`
	insertUserSQL           = `INSERT INTO users (username, password_hash, image_url, bio) VALUES (?, ?, ?, ?)`
	selectUserByUsernameSQL = `SELECT id, username, password_hash, image_url, bio FROM users WHERE username = ?`
	selectUserByIDSQL       = `SELECT id, username, password_hash, image_url, bio FROM users WHERE id = ?`
)

// Create inserts a new user inside a single transaction and returns its ID.
// The username is pre-checked under the same transaction; if a concurrent
// signup still slips past the check, the UNIQUE constraint fires at insert
// time and is reported as ErrConflict. Either way the transaction is rolled
// back and no partial row remains.
func (r *UserRepository) Create(ctx context.Context, u *models.User) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin create user tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var count int
	if err := tx.QueryRowContext(ctx, countUserByUsernameSQL, u.Username).Scan(&count); err != nil {
		return 0, fmt.Errorf("check username %q: %w", u.Username, err)
	}
	if count > 0 {
		return 0, ErrDuplicateUsername
	}

	res, err := tx.ExecContext(ctx, insertUserSQL, u.Username, u.PasswordHash, u.ImageURL, u.Bio)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("insert user %q: %w", u.Username, ErrConflict)
		}
		return 0, fmt.Errorf("insert user %q: %w", u.Username, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", u.Username, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit create user %q: %w", u.Username, err)
	}
	return int(lastID), nil
}

// GetByUsername fetches a user by username. Returns (nil, nil) if not found.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, selectUserByUsernameSQL, username), username)
}

// GetByID fetches a user by id. Returns (nil, nil) if not found.
func (r *UserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, selectUserByIDSQL, id), fmt.Sprint(id))
}

func (r *UserRepository) scanOne(row *sql.Row, key string) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.ImageURL, &u.Bio)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", key, err)
	}
	return &u, nil
}

// isUniqueViolation reports whether err is SQLite's UNIQUE constraint error.
// modernc.org/sqlite exposes no typed error for this, so match the message.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
