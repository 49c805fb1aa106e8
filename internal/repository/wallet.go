package repository

import (
	"context"
	"time"

	"github.com/virality-gg/backend/internal/entity"
	"github.com/virality-gg/backend/pkg/xcontext"
)

type WalletRepository interface {
	Create(ctx context.Context, wallet *entity.Wallet) error
	GetByUserID(ctx context.Context, userID string) (*entity.Wallet, error)
	TopEarners(ctx context.Context, limit int) ([]entity.Wallet, error)
	CountEarnedMoreThan(ctx context.Context, amount float64) (int64, error)
	SumEarnings(ctx context.Context, userID string, since time.Time) (float64, error)
}

type walletRepository struct{}

func NewWalletRepository() *walletRepository {
	return &walletRepository{}
}

func (r *walletRepository) Create(ctx context.Context, wallet *entity.Wallet) error {
	return xcontext.DB(ctx).Create(wallet).Error
}

func (r *walletRepository) GetByUserID(ctx context.Context, userID string) (*entity.Wallet, error) {
	var result entity.Wallet
	err := xcontext.DB(ctx).Take(&result, "user_id=?", userID).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *walletRepository) TopEarners(ctx context.Context, limit int) ([]entity.Wallet, error) {
	var result []entity.Wallet
	err := xcontext.DB(ctx).
		Preload("User").
		Order("total_earned DESC").
		Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *walletRepository) CountEarnedMoreThan(ctx context.Context, amount float64) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).
		Model(&entity.Wallet{}).
		Where("total_earned > ?", amount).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *walletRepository) SumEarnings(ctx context.Context, userID string, since time.Time) (float64, error) {
	query := xcontext.DB(ctx).
		Model(&entity.Transaction{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("user_id=? AND type=?", userID, entity.TransactionEarning)

	// A zero since means all time.
	if !since.IsZero() {
		query = query.Where("created_at >= ?", since)
	}

	var result struct{ Total float64 }
	if err := query.Take(&result).Error; err != nil {
		return 0, err
	}

	return result.Total, nil
}
