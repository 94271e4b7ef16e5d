package ports

import (
	"context"

	"github.com/makelifebetter/storefront-service/internal/domain/identity"
)

// IdentityProvider resolves the current user. A nil user with no error means
// the caller is not authenticated.
type IdentityProvider interface {
	CurrentUser(ctx context.Context, userID string) (*identity.User, error)
}
