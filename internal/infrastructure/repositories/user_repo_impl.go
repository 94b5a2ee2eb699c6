package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"fulloncrypto.backend/internal/domain/entities"
	domainerrors "fulloncrypto.backend/internal/domain/errors"
	"fulloncrypto.backend/internal/infrastructure/models"
)

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user. A username or wallet address collision
// surfaces as ErrAlreadyExists via the store's unique indexes.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	m := &models.User{
		ID:           user.ID,
		Username:     user.Username,
		PasswordHash: user.Password,
		Email:        user.Email.Ptr(),
		EthAddress:   user.EthAddress.Ptr(),
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt.Ptr(),
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetByUsername gets a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByEthAddress gets a user by wallet address. Callers pass the
// lowercased form; addresses are stored lowercased.
func (r *UserRepository) GetByEthAddress(ctx context.Context, address string) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("eth_address = ?", address).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// UpdateEthAddress sets the wallet address for the named user and returns
// the post-update document. An address held by another user surfaces as
// ErrAlreadyExists; an update matching no rows as ErrNotFound.
func (r *UserRepository) UpdateEthAddress(ctx context.Context, username, address string) (*entities.User, error) {
	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("username = ?", username).
		Updates(map[string]interface{}{
			"eth_address": address,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, domainerrors.ErrAlreadyExists
		}
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrNotFound
	}
	return r.GetByUsername(ctx, username)
}

func (r *UserRepository) toEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:         m.ID,
		Username:   m.Username,
		Password:   m.PasswordHash,
		Email:      null.StringFromPtr(m.Email),
		EthAddress: null.StringFromPtr(m.EthAddress),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  null.TimeFromPtr(m.UpdatedAt),
	}
}
