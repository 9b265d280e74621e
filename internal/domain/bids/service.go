package bids

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create records a bid by bidderID. The project's status, its owner and any
// earlier bids by the same bidder are deliberately not consulted.
func (s *Service) Create(ctx context.Context, bidderID int64, input CreateInput) (*Bid, error) {
	if input.ProjectID <= 0 {
		return nil, ErrProjectIDRequired
	}

	bid := Bid{
		ProjectID:    input.ProjectID,
		FreelancerID: bidderID,
		Amount:       input.Amount,
		Message:      input.Message,
	}
	if err := s.repo.Create(ctx, &bid); err != nil {
		return nil, err
	}
	return &bid, nil
}

func (s *Service) ListForProject(ctx context.Context, projectID int64) ([]BidWithBidder, error) {
	items, err := s.repo.ListForProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []BidWithBidder{}
	}
	return items, nil
}
