package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"fulloncrypto.backend/internal/domain/entities"
	domainerrors "fulloncrypto.backend/internal/domain/errors"
	"fulloncrypto.backend/internal/domain/repositories"
	"fulloncrypto.backend/pkg/ethutil"
	"fulloncrypto.backend/pkg/logger"
)

// PaymentRequestUsecase handles payment request creation and lookups,
// including maintenance of the contract-id -> UPI index
type PaymentRequestUsecase struct {
	paymentRequestRepo repositories.PaymentRequestRepository
	upiIndexRepo       repositories.UpiIndexRepository
}

// NewPaymentRequestUsecase creates a new payment request usecase
func NewPaymentRequestUsecase(
	paymentRequestRepo repositories.PaymentRequestRepository,
	upiIndexRepo repositories.UpiIndexRepository,
) *PaymentRequestUsecase {
	return &PaymentRequestUsecase{
		paymentRequestRepo: paymentRequestRepo,
		upiIndexRepo:       upiIndexRepo,
	}
}

// CreatePaymentRequestInput carries the validated creation fields
type CreatePaymentRequestInput struct {
	UpiID             string
	Amount            float64
	PayeeName         null.String
	Note              null.String
	ContractRequestID null.String
	WalletAddress     null.String
	DaiAmount         null.Float64
	EthFee            null.Float64
}

// Create inserts a payment request and, when a contract request id is
// present, upserts the UPI index entry for it. The index write happens
// only after the primary insert succeeds; its failure is surfaced to the
// caller, never swallowed.
func (u *PaymentRequestUsecase) Create(ctx context.Context, input CreatePaymentRequestInput) (*entities.PaymentRequest, error) {
	if input.Amount <= 0 {
		return nil, domainerrors.BadRequest("amount must be a positive number")
	}

	walletAddress := input.WalletAddress
	requesterID := entities.AnonymousRequester
	if walletAddress.Valid && walletAddress.String != "" {
		if !ethutil.IsValidAddress(walletAddress.String) {
			return nil, domainerrors.BadRequest("invalid wallet address")
		}
		walletAddress = null.StringFrom(ethutil.NormalizeAddress(walletAddress.String))
		requesterID = walletAddress.String
	} else {
		walletAddress = null.String{}
	}

	req := &entities.PaymentRequest{
		ID:                uuid.New(),
		UpiID:             input.UpiID,
		Amount:            input.Amount,
		PayeeName:         input.PayeeName,
		Note:              input.Note,
		ContractRequestID: input.ContractRequestID,
		WalletAddress:     walletAddress,
		DaiAmount:         input.DaiAmount,
		EthFee:            input.EthFee,
		RequesterID:       requesterID,
		Status:            entities.PaymentRequestStatusPending,
		CreatedAt:         time.Now(),
	}

	if err := u.paymentRequestRepo.Create(ctx, req); err != nil {
		return nil, err
	}

	// Secondary index: written iff a contract request id accompanies
	// the request. No rollback path exists for the primary insert.
	if req.ContractRequestID.Valid && req.ContractRequestID.String != "" {
		entry := &entities.UpiIndexEntry{
			ContractRequestID: req.ContractRequestID.String,
			UpiID:             req.UpiID,
			PayeeName:         req.PayeeName,
			Note:              req.Note,
			CreatedAt:         time.Now(),
		}
		if err := u.upiIndexRepo.UpsertByContractID(ctx, entry); err != nil {
			logger.Error(ctx, "UPI index write failed after payment request insert",
				zap.String("contractRequestId", entry.ContractRequestID),
				zap.String("paymentRequestId", req.ID.String()),
				zap.Error(err),
			)
			return nil, err
		}
	}

	return req, nil
}

// ListPending returns pending payment requests, newest first
func (u *PaymentRequestUsecase) ListPending(ctx context.Context) ([]*entities.PaymentRequest, error) {
	return u.paymentRequestRepo.ListPending(ctx)
}

// GetByContractID returns the payment request for a contract request id
func (u *PaymentRequestUsecase) GetByContractID(ctx context.Context, contractRequestID string) (*entities.PaymentRequest, error) {
	if contractRequestID == "" {
		return nil, domainerrors.BadRequest("contractRequestId is required")
	}
	return u.paymentRequestRepo.GetByContractID(ctx, contractRequestID)
}

// GetUpiByContractID resolves UPI details from the secondary index
func (u *PaymentRequestUsecase) GetUpiByContractID(ctx context.Context, contractRequestID string) (*entities.UpiIndexEntry, error) {
	if contractRequestID == "" {
		return nil, domainerrors.BadRequest("contractRequestId is required")
	}
	return u.upiIndexRepo.GetByContractID(ctx, contractRequestID)
}
