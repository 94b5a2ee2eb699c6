package repositories

import (
	"context"

	"fulloncrypto.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByUsername(ctx context.Context, username string) (*entities.User, error)
	GetByEthAddress(ctx context.Context, address string) (*entities.User, error)
	// UpdateEthAddress sets the wallet address for the named user and
	// returns the post-update document.
	UpdateEthAddress(ctx context.Context, username, address string) (*entities.User, error)
}
