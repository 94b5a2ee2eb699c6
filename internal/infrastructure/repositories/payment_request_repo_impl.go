package repositories

import (
	"context"
	"errors"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"fulloncrypto.backend/internal/domain/entities"
	domainerrors "fulloncrypto.backend/internal/domain/errors"
	"fulloncrypto.backend/internal/infrastructure/models"
)

// PaymentRequestRepositoryImpl implements PaymentRequestRepository
type PaymentRequestRepositoryImpl struct {
	db *gorm.DB
}

func NewPaymentRequestRepository(db *gorm.DB) *PaymentRequestRepositoryImpl {
	return &PaymentRequestRepositoryImpl{db: db}
}

func (r *PaymentRequestRepositoryImpl) Create(ctx context.Context, req *entities.PaymentRequest) error {
	m := &models.PaymentRequest{
		ID:                req.ID,
		UpiID:             req.UpiID,
		Amount:            req.Amount,
		PayeeName:         req.PayeeName.Ptr(),
		Note:              req.Note.Ptr(),
		ContractRequestID: req.ContractRequestID.Ptr(),
		WalletAddress:     req.WalletAddress.Ptr(),
		DaiAmount:         req.DaiAmount.Ptr(),
		EthFee:            req.EthFee.Ptr(),
		RequesterID:       req.RequesterID,
		Status:            string(req.Status),
		CreatedAt:         req.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// ListPending returns pending requests, newest first
func (r *PaymentRequestRepositoryImpl) ListPending(ctx context.Context) ([]*entities.PaymentRequest, error) {
	var ms []models.PaymentRequest
	if err := r.db.WithContext(ctx).
		Where("status = ?", entities.PaymentRequestStatusPending).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	requests := make([]*entities.PaymentRequest, 0, len(ms))
	for _, m := range ms {
		model := m
		requests = append(requests, r.toEntity(&model))
	}
	return requests, nil
}

// GetByContractID returns the most recent request carrying the given
// contract request id
func (r *PaymentRequestRepositoryImpl) GetByContractID(ctx context.Context, contractRequestID string) (*entities.PaymentRequest, error) {
	var m models.PaymentRequest
	if err := r.db.WithContext(ctx).
		Where("contract_request_id = ?", contractRequestID).
		Order("created_at DESC").
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *PaymentRequestRepositoryImpl) toEntity(m *models.PaymentRequest) *entities.PaymentRequest {
	return &entities.PaymentRequest{
		ID:                m.ID,
		UpiID:             m.UpiID,
		Amount:            m.Amount,
		PayeeName:         null.StringFromPtr(m.PayeeName),
		Note:              null.StringFromPtr(m.Note),
		ContractRequestID: null.StringFromPtr(m.ContractRequestID),
		WalletAddress:     null.StringFromPtr(m.WalletAddress),
		DaiAmount:         null.Float64FromPtr(m.DaiAmount),
		EthFee:            null.Float64FromPtr(m.EthFee),
		RequesterID:       m.RequesterID,
		Status:            entities.PaymentRequestStatus(m.Status),
		CreatedAt:         m.CreatedAt,
	}
}
