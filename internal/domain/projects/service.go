package projects

import (
	"context"

	"gorm.io/datatypes"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create stores a project owned by ownerID. Fields are stored as sent; only
// a missing title is rejected.
func (s *Service) Create(ctx context.Context, ownerID int64, input CreateInput) (*Project, error) {
	if input.Title == "" {
		return nil, ErrTitleRequired
	}

	project := Project{
		ParentID:     ownerID,
		Title:        input.Title,
		Description:  input.Description,
		GradeLevel:   input.GradeLevel,
		Budget:       input.Budget,
		DeliveryType: input.DeliveryType,
		Difficulty:   input.Difficulty,
		Category:     input.Category,
	}
	if input.Deadline != nil {
		deadline := datatypes.Date(*input.Deadline)
		project.Deadline = &deadline
	}

	if err := s.repo.Create(ctx, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *Service) ListOpen(ctx context.Context, filter ListFilter) ([]ProjectWithOwner, error) {
	items, err := s.repo.ListOpen(ctx, filter)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []ProjectWithOwner{}
	}
	return items, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*ProjectWithOwner, error) {
	if id <= 0 {
		return nil, ErrProjectNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerID int64) ([]ProjectWithOwner, error) {
	items, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []ProjectWithOwner{}
	}
	return items, nil
}
