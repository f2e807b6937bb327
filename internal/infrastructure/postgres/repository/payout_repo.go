package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/47industries/affiliate-service/internal/domain"
	"github.com/47industries/affiliate-service/internal/infrastructure/postgres/mappers"
	"github.com/47industries/affiliate-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultPayoutRepository struct {
	DB *gorm.DB
}

func NewDefaultPayoutRepository(db *gorm.DB) *DefaultPayoutRepository {
	return &DefaultPayoutRepository{DB: db}
}

// CreatePayoutWithCommissions inserts the payout row and links every targeted
// commission in one transaction. A commission that got linked elsewhere in
// the meantime fails the whole batch, so a partial link can never be
// committed.
func (r *DefaultPayoutRepository) CreatePayoutWithCommissions(payout *domain.Payout, commissionIDs []string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		payoutModel := mappers.ToGORMPayout(payout)
		if err := tx.Create(payoutModel).Error; err != nil {
			return err
		}

		result := tx.Model(&models.CommissionModel{}).
			Where("id IN (?) AND payout_id IS NULL AND status IN (?)",
				commissionIDs,
				[]domain.CommissionStatus{domain.CommissionPending, domain.CommissionApproved}).
			Update("payout_id", payout.ID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected != int64(len(commissionIDs)) {
			return fmt.Errorf("%w: %d of %d commissions could not be linked",
				domain.ErrInvalidTransition, int64(len(commissionIDs))-result.RowsAffected, len(commissionIDs))
		}

		return nil
	})
}

// MarkPayoutPaid flips the payout to PAID and cascades PAID onto every linked
// commission, atomically. The status guard in the WHERE clause makes the
// operation safe against a concurrent cancel or double execution.
func (r *DefaultPayoutRepository) MarkPayoutPaid(payoutID, transferRef string, method domain.PayoutMethod, paidAt time.Time) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.PayoutModel{}).
			Where("id = ? AND status = ?", payoutID, domain.PayoutPending).
			Updates(map[string]interface{}{
				"status":       domain.PayoutPaid,
				"method":       method,
				"transfer_ref": transferRef,
				"paid_at":      paidAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrPayoutNotPending
		}

		if err := tx.Model(&models.CommissionModel{}).
			Where("payout_id = ?", payoutID).
			Update("status", domain.CommissionPaid).Error; err != nil {
			return err
		}

		return nil
	})
}

// CancelPayoutAndUnlink returns every linked commission to the reviewable
// pool: payout_id cleared, status reset to PENDING regardless of a prior
// APPROVED.
func (r *DefaultPayoutRepository) CancelPayoutAndUnlink(payoutID string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.PayoutModel{}).
			Where("id = ? AND status = ?", payoutID, domain.PayoutPending).
			Update("status", domain.PayoutCancelled)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrPayoutNotPending
		}

		if err := tx.Model(&models.CommissionModel{}).
			Where("payout_id = ?", payoutID).
			Updates(map[string]interface{}{
				"payout_id": nil,
				"status":    domain.CommissionPending,
			}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (r *DefaultPayoutRepository) GetPayoutByID(payoutID string) (*domain.Payout, error) {
	var payoutModel models.PayoutModel
	if err := r.DB.First(&payoutModel, "id = ?", payoutID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mappers.ToDomainPayout(&payoutModel), nil
}

func (r *DefaultPayoutRepository) GetPayouts(filters domain.PayoutFilters, page, limit int64) ([]*domain.Payout, int64, error) {
	query := r.DB.Model(&models.PayoutModel{})

	if filters.PartnerID != "" {
		query = query.Where("partner_id = ?", filters.PartnerID)
	}
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count payouts: %w", err)
	}

	offset := (page - 1) * limit
	var payoutModels []models.PayoutModel
	if err := query.
		Order("created_at DESC").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&payoutModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to find payouts: %w", err)
	}

	payouts := make([]*domain.Payout, len(payoutModels))
	for i, payoutModel := range payoutModels {
		payouts[i] = mappers.ToDomainPayout(&payoutModel)
	}

	return payouts, total, nil
}

func (r *DefaultPayoutRepository) SumAmountByPartnerStatus(partnerID string, status domain.PayoutStatus) (float64, error) {
	var sum float64
	if err := r.DB.Model(&models.PayoutModel{}).
		Where("partner_id = ? AND status = ?", partnerID, status).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error; err != nil {
		return 0, err
	}
	return sum, nil
}
