package projects

import "context"

type Repository interface {
	Create(ctx context.Context, project *Project) error
	ListOpen(ctx context.Context, filter ListFilter) ([]ProjectWithOwner, error)
	GetByID(ctx context.Context, id int64) (*ProjectWithOwner, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]ProjectWithOwner, error)
}
