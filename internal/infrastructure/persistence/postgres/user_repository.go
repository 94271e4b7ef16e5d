package postgres

import (
	"context"
	"database/sql"

	domainErrors "github.com/makelifebetter/storefront-service/internal/domain/errors"
	"github.com/makelifebetter/storefront-service/internal/domain/identity"
	"github.com/makelifebetter/storefront-service/internal/infrastructure/monitoring"
)

// UserRepository resolves users for checkout gating. It implements
// ports.IdentityProvider.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(conn *Connection) *UserRepository {
	return &UserRepository{
		db: conn.GetDB(),
	}
}

// CurrentUser returns the user for the ID, or nil when the ID is empty or
// unknown — the caller is treated as not authenticated.
func (r *UserRepository) CurrentUser(ctx context.Context, userID string) (*identity.User, error) {
	if userID == "" {
		return nil, nil
	}

	query := `
		SELECT id, username, email, admin, created_at
		FROM users
		WHERE id = $1
	`

	var u identity.User
	row := monitoring.InstrumentQueryRow(ctx, r.db, "SELECT", "users", query, userID)
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Admin, &u.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return &u, nil
}

// GetByEmail is used by the admin surface to look accounts up.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*identity.User, error) {
	query := `
		SELECT id, username, email, admin, created_at
		FROM users
		WHERE email = $1
	`

	var u identity.User
	row := monitoring.InstrumentQueryRow(ctx, r.db, "SELECT", "users", query, email)
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Admin, &u.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domainErrors.ErrUserNotFound
		}
		return nil, err
	}

	return &u, nil
}
