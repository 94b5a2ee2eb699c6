package repositories

import (
	"context"

	"fulloncrypto.backend/internal/domain/entities"
)

// PaymentRequestRepository defines payment request data operations
type PaymentRequestRepository interface {
	Create(ctx context.Context, req *entities.PaymentRequest) error
	// ListPending returns pending requests, newest first.
	ListPending(ctx context.Context) ([]*entities.PaymentRequest, error)
	// GetByContractID returns the most recent request carrying the
	// given contract request id.
	GetByContractID(ctx context.Context, contractRequestID string) (*entities.PaymentRequest, error)
}

// UpiIndexRepository defines operations on the contract-id -> UPI lookup table
type UpiIndexRepository interface {
	// UpsertByContractID inserts the entry or fully overwrites the
	// existing row with the same contract request id.
	UpsertByContractID(ctx context.Context, entry *entities.UpiIndexEntry) error
	GetByContractID(ctx context.Context, contractRequestID string) (*entities.UpiIndexEntry, error)
}
