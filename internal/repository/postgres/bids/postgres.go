package bids

import (
	"context"
	"errors"

	"gorm.io/gorm"
	bidsdomain "projectconnect-go/internal/domain/bids"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts bid and reloads the stored row.
func (r *PostgresRepository) Create(ctx context.Context, bid *bidsdomain.Bid) error {
	db := r.db.WithContext(ctx)
	if err := db.Create(bid).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return bidsdomain.ErrProjectNotFound
		}
		return err
	}
	return db.Where("bid_id = ?", bid.ID).Take(bid).Error
}

func (r *PostgresRepository) ListForProject(ctx context.Context, projectID int64) ([]bidsdomain.BidWithBidder, error) {
	var items []bidsdomain.BidWithBidder
	if err := r.db.WithContext(ctx).
		Table("bids").
		Select("bids.*, users.name AS freelancer_name").
		Joins("join users on users.id = bids.freelancer_id").
		Where("bids.project_id = ?", projectID).
		Order("bids.created_at desc, bids.bid_id desc").
		Scan(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
