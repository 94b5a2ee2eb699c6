package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"fulloncrypto.backend/internal/domain/entities"
	domainerrors "fulloncrypto.backend/internal/domain/errors"
	"fulloncrypto.backend/internal/domain/repositories"
	"fulloncrypto.backend/pkg/crypto"
	"fulloncrypto.backend/pkg/ethutil"
)

const (
	minPasswordLength = 6
	minUsernameLength = 3
)

// AuthUsecase handles signup, login and wallet registration
type AuthUsecase struct {
	userRepo repositories.UserRepository
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo repositories.UserRepository) *AuthUsecase {
	return &AuthUsecase{userRepo: userRepo}
}

// Signup registers a new username/password user
func (u *AuthUsecase) Signup(ctx context.Context, input *entities.SignupInput) (*entities.User, error) {
	if len(input.Password) < minPasswordLength {
		return nil, domainerrors.BadRequest("password must be at least 6 characters")
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		ID:        uuid.New(),
		Username:  input.Username,
		Password:  passwordHash,
		CreatedAt: time.Now(),
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates a username/password user
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.User, error) {
	user, err := u.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.Password) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	return user, nil
}

// RegisterWallet creates a user from a wallet address and username.
// The signature is checked for shape only; cryptographic recovery is
// available in pkg/ethutil but is not applied here (see DESIGN.md).
func (u *AuthUsecase) RegisterWallet(ctx context.Context, input *entities.RegisterWalletInput) (*entities.User, error) {
	if len(input.Username) < minUsernameLength {
		return nil, domainerrors.BadRequest("username must be at least 3 characters")
	}
	if !ethutil.IsValidAddress(input.EthAddress) {
		return nil, domainerrors.BadRequest("invalid ethereum address")
	}
	if !ethutil.IsValidSignature(input.Signature) {
		return nil, domainerrors.Unauthorized("invalid signature format")
	}

	user := &entities.User{
		ID:         uuid.New(),
		Username:   input.Username,
		EthAddress: null.StringFrom(ethutil.NormalizeAddress(input.EthAddress)),
		CreatedAt:  time.Now(),
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// WalletLogin authenticates a user by wallet address
func (u *AuthUsecase) WalletLogin(ctx context.Context, input *entities.WalletLoginInput) (*entities.User, error) {
	if !ethutil.IsValidAddress(input.EthAddress) {
		return nil, domainerrors.BadRequest("invalid ethereum address")
	}
	if !ethutil.IsValidSignature(input.Signature) {
		return nil, domainerrors.Unauthorized("invalid signature format")
	}

	return u.userRepo.GetByEthAddress(ctx, ethutil.NormalizeAddress(input.EthAddress))
}

// UpdateWallet attaches or replaces the wallet address of the named user
func (u *AuthUsecase) UpdateWallet(ctx context.Context, input *entities.UpdateWalletInput) (*entities.User, error) {
	if !ethutil.IsValidAddress(input.EthAddress) {
		return nil, domainerrors.BadRequest("invalid ethereum address")
	}

	return u.userRepo.UpdateEthAddress(ctx, input.Username, ethutil.NormalizeAddress(input.EthAddress))
}
