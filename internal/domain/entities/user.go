package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// User represents an account created via signup or wallet registration
type User struct {
	ID         uuid.UUID   `json:"id"`
	Username   string      `json:"username"`
	Password   string      `json:"-"`
	Email      null.String `json:"email"`
	EthAddress null.String `json:"ethAddress"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  null.Time   `json:"updatedAt"`
}

// SignupInput is the input for username/password registration
type SignupInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginInput is the input for username/password login
type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterWalletInput is the input for wallet-based registration
type RegisterWalletInput struct {
	EthAddress string `json:"ethAddress" binding:"required"`
	Signature  string `json:"signature" binding:"required"`
	Username   string `json:"username" binding:"required"`
}

// WalletLoginInput is the input for wallet-based login
type WalletLoginInput struct {
	EthAddress string `json:"ethAddress" binding:"required"`
	Signature  string `json:"signature" binding:"required"`
}

// UpdateWalletInput is the input for attaching or replacing a user's wallet
type UpdateWalletInput struct {
	EthAddress string `json:"ethAddress" binding:"required"`
	Username   string `json:"username" binding:"required"`
}
