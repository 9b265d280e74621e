package bids

import "context"

type Repository interface {
	Create(ctx context.Context, bid *Bid) error
	ListForProject(ctx context.Context, projectID int64) ([]BidWithBidder, error)
}
