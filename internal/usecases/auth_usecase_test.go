package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/volatiletech/null/v8"

	"fulloncrypto.backend/internal/domain/entities"
	domainerrors "fulloncrypto.backend/internal/domain/errors"
	"fulloncrypto.backend/internal/usecases"
	"fulloncrypto.backend/pkg/crypto"
)

const (
	testAddress      = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	testAddressLower = "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"
	testSignature    = "0x" +
		"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa" +
		"bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb" +
		"1b"
)

func TestAuthUsecase_Signup_ShortPassword(t *testing.T) {
	uc := usecases.NewAuthUsecase(new(MockUserRepository))

	_, err := uc.Signup(context.Background(), &entities.SignupInput{
		Username: "alice",
		Password: "12345",
	})

	var appErr *domainerrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)
}

func TestAuthUsecase_Signup_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := usecases.NewAuthUsecase(userRepo)

	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
		return u.Username == "alice" &&
			u.Password != "secret123" && // stored hashed
			crypto.CheckPassword("secret123", u.Password)
	})).Return(nil).Once()

	user, err := uc.Signup(context.Background(), &entities.SignupInput{
		Username: "alice",
		Password: "secret123",
	})
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	userRepo.AssertExpectations(t)
}

func TestAuthUsecase_Signup_DuplicateUsername(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := usecases.NewAuthUsecase(userRepo)

	userRepo.On("Create", mock.Anything, mock.Anything).Return(domainerrors.ErrAlreadyExists).Once()

	_, err := uc.Signup(context.Background(), &entities.SignupInput{
		Username: "alice",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}

func TestAuthUsecase_Login_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := usecases.NewAuthUsecase(userRepo)

	hash, err := crypto.HashPassword("secret123")
	assert.NoError(t, err)
	userRepo.On("GetByUsername", mock.Anything, "alice").Return(&entities.User{
		ID:        uuid.New(),
		Username:  "alice",
		Password:  hash,
		CreatedAt: time.Now(),
	}, nil).Once()

	user, err := uc.Login(context.Background(), &entities.LoginInput{
		Username: "alice",
		Password: "secret123",
	})
	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestAuthUsecase_Login_WrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := usecases.NewAuthUsecase(userRepo)

	hash, err := crypto.HashPassword("secret123")
	assert.NoError(t, err)
	userRepo.On("GetByUsername", mock.Anything, "alice").Return(&entities.User{
		Username: "alice",
		Password: hash,
	}, nil).Once()

	_, err = uc.Login(context.Background(), &entities.LoginInput{
		Username: "alice",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthUsecase_Login_UnknownUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := usecases.NewAuthUsecase(userRepo)

	userRepo.On("GetByUsername", mock.Anything, "ghost").Return(nil, domainerrors.ErrNotFound).Once()

	_, err := uc.Login(context.Background(), &entities.LoginInput{
		Username: "ghost",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthUsecase_RegisterWallet_Validation(t *testing.T) {
	uc := usecases.NewAuthUsecase(new(MockUserRepository))
	ctx := context.Background()

	// short username
	_, err := uc.RegisterWallet(ctx, &entities.RegisterWalletInput{
		EthAddress: testAddress, Signature: testSignature, Username: "ab",
	})
	var appErr *domainerrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)

	// non-hex address
	_, err = uc.RegisterWallet(ctx, &entities.RegisterWalletInput{
		EthAddress: "0xZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZ",
		Signature:  testSignature,
		Username:   "alice",
	})
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)

	// malformed signature
	_, err = uc.RegisterWallet(ctx, &entities.RegisterWalletInput{
		EthAddress: testAddress, Signature: "0x1234", Username: "alice",
	})
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 401, appErr.Status)
}

func TestAuthUsecase_RegisterWallet_NormalizesAddress(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := usecases.NewAuthUsecase(userRepo)

	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
		return u.EthAddress.String == testAddressLower
	})).Return(nil).Once()

	user, err := uc.RegisterWallet(context.Background(), &entities.RegisterWalletInput{
		EthAddress: testAddress, // mixed case in
		Signature:  testSignature,
		Username:   "alice",
	})
	assert.NoError(t, err)
	assert.Equal(t, testAddressLower, user.EthAddress.String)
	userRepo.AssertExpectations(t)
}

func TestAuthUsecase_WalletLogin(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := usecases.NewAuthUsecase(userRepo)
	ctx := context.Background()

	userRepo.On("GetByEthAddress", ctx, testAddressLower).Return(&entities.User{
		Username:   "alice",
		EthAddress: null.StringFrom(testAddressLower),
	}, nil).Once()

	user, err := uc.WalletLogin(ctx, &entities.WalletLoginInput{
		EthAddress: testAddress,
		Signature:  testSignature,
	})
	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestAuthUsecase_WalletLogin_UnknownAddress(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := usecases.NewAuthUsecase(userRepo)

	userRepo.On("GetByEthAddress", mock.Anything, testAddressLower).Return(nil, domainerrors.ErrNotFound).Once()

	_, err := uc.WalletLogin(context.Background(), &entities.WalletLoginInput{
		EthAddress: testAddress,
		Signature:  testSignature,
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestAuthUsecase_UpdateWallet(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := usecases.NewAuthUsecase(userRepo)

	updated := &entities.User{
		Username:   "alice",
		EthAddress: null.StringFrom(testAddressLower),
		UpdatedAt:  null.TimeFrom(time.Now()),
	}
	userRepo.On("UpdateEthAddress", mock.Anything, "alice", testAddressLower).Return(updated, nil).Once()

	user, err := uc.UpdateWallet(context.Background(), &entities.UpdateWalletInput{
		EthAddress: testAddress,
		Username:   "alice",
	})
	assert.NoError(t, err)
	assert.True(t, user.UpdatedAt.Valid)
}

func TestAuthUsecase_UpdateWallet_BadAddress(t *testing.T) {
	uc := usecases.NewAuthUsecase(new(MockUserRepository))

	_, err := uc.UpdateWallet(context.Background(), &entities.UpdateWalletInput{
		EthAddress: "not-an-address",
		Username:   "alice",
	})
	var appErr *domainerrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)
}
