package postgres

import (
	"context"

	"beantrade/internal/domain/entity"
	"beantrade/internal/domain/repository"
	"beantrade/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// statsRepository implements the repository.StatsRepository interface using GORM.
// The dashboard tolerates slight staleness, so the counts run as independent
// queries outside any transaction.
type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository is the constructor for statsRepository.
func NewStatsRepository(db *gorm.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

// Dashboard computes the aggregate counts for a user's dashboard view.
func (repo *statsRepository) Dashboard(ctx context.Context, userID uuid.UUID) (*repository.DashboardCounts, error) {
	counts := &repository.DashboardCounts{}

	if err := repo.db.WithContext(ctx).
		Model(&model.FarmModel{}).
		Where("owner_id = ?", userID).
		Count(&counts.Farms).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count farms")
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Where("seller_id = ? AND status = ?", userID, entity.ListingStatusOpen.String()).
		Count(&counts.OpenListings).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count open listings")
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("buyer_id = ? AND status IN ?", userID, []string{
			entity.TransactionStatusPending.String(),
			entity.TransactionStatusConfirmed.String(),
		}).
		Count(&counts.ActiveTransactions).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count active transactions")
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("receiver_id = ? AND read = false", userID).
		Count(&counts.UnreadMessages).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count unread messages")
	}

	return counts, nil
}
