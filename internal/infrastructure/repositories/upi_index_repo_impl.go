package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fulloncrypto.backend/internal/domain/entities"
	domainerrors "fulloncrypto.backend/internal/domain/errors"
	"fulloncrypto.backend/internal/infrastructure/models"
)

// UpiIndexRepositoryImpl implements UpiIndexRepository
type UpiIndexRepositoryImpl struct {
	db *gorm.DB
}

func NewUpiIndexRepository(db *gorm.DB) *UpiIndexRepositoryImpl {
	return &UpiIndexRepositoryImpl{db: db}
}

// UpsertByContractID writes the entry as a single atomic
// insert-or-overwrite keyed on contract_request_id. All non-key columns
// are replaced, including created_at; under concurrent writers the last
// statement the store executes wins.
func (r *UpiIndexRepositoryImpl) UpsertByContractID(ctx context.Context, entry *entities.UpiIndexEntry) error {
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	m := &models.UpiIndex{
		ContractRequestID: entry.ContractRequestID,
		UpiID:             entry.UpiID,
		PayeeName:         entry.PayeeName.Ptr(),
		Note:              entry.Note.Ptr(),
		CreatedAt:         createdAt,
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "contract_request_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"upi_id", "payee_name", "note", "created_at"}),
	}).Create(m).Error
}

func (r *UpiIndexRepositoryImpl) GetByContractID(ctx context.Context, contractRequestID string) (*entities.UpiIndexEntry, error) {
	var m models.UpiIndex
	if err := r.db.WithContext(ctx).
		Where("contract_request_id = ?", contractRequestID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	return &entities.UpiIndexEntry{
		ContractRequestID: m.ContractRequestID,
		UpiID:             m.UpiID,
		PayeeName:         null.StringFromPtr(m.PayeeName),
		Note:              null.StringFromPtr(m.Note),
		CreatedAt:         m.CreatedAt,
	}, nil
}
