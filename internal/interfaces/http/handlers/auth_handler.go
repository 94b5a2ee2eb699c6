package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fulloncrypto.backend/internal/domain/entities"
	domainerrors "fulloncrypto.backend/internal/domain/errors"
	"fulloncrypto.backend/internal/interfaces/http/response"
	"fulloncrypto.backend/internal/usecases"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authUsecase *usecases.AuthUsecase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// Signup handles username/password registration
// POST /api/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var input entities.SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("username and password are required"))
		return
	}

	user, err := h.authUsecase.Signup(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			response.Error(c, domainerrors.Conflict("username already taken"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    user,
	})
}

// Login handles username/password login
// POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("username and password are required"))
		return
	}

	user, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			response.Error(c, domainerrors.Unauthorized("invalid username or password"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user,
	})
}

// RegisterWallet handles wallet-based registration
// POST /api/register-wallet
func (h *AuthHandler) RegisterWallet(c *gin.Context) {
	var input entities.RegisterWalletInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("ethAddress, signature and username are required"))
		return
	}

	user, err := h.authUsecase.RegisterWallet(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			response.Error(c, domainerrors.Conflict("username or wallet address already registered"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Wallet registered successfully",
		"user":    user,
	})
}

// LoginWallet handles wallet-based login
// POST /api/login-wallet
func (h *AuthHandler) LoginWallet(c *gin.Context) {
	var input entities.WalletLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("ethAddress and signature are required"))
		return
	}

	user, err := h.authUsecase.WalletLogin(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("no user registered for this wallet address"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user,
	})
}

// UpdateWallet attaches or replaces a user's wallet address
// POST /api/update-wallet
func (h *AuthHandler) UpdateWallet(c *gin.Context) {
	var input entities.UpdateWalletInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("ethAddress and username are required"))
		return
	}

	user, err := h.authUsecase.UpdateWallet(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("user not found"))
			return
		}
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			response.Error(c, domainerrors.Conflict("wallet address already registered to another user"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Wallet updated successfully",
		"user":    user,
	})
}
