package projects

import (
	"context"
	"errors"

	"gorm.io/gorm"
	projectsdomain "projectconnect-go/internal/domain/projects"
)

const ownerColumns = "projects.*, users.name AS parent_name"

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts project and reloads it, so created_at, column defaults and
// numeric rounding reflect the stored row.
func (r *PostgresRepository) Create(ctx context.Context, project *projectsdomain.Project) error {
	db := r.db.WithContext(ctx)
	if err := db.Create(project).Error; err != nil {
		return err
	}
	return db.Where("project_id = ?", project.ID).Take(project).Error
}

func (r *PostgresRepository) ListOpen(ctx context.Context, filter projectsdomain.ListFilter) ([]projectsdomain.ProjectWithOwner, error) {
	query := r.withOwner(ctx)
	for _, predicate := range filter.Predicates() {
		query = query.Where(predicate.Clause, predicate.Args...)
	}

	var items []projectsdomain.ProjectWithOwner
	if err := query.
		Order("projects.created_at desc, projects.project_id desc").
		Scan(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*projectsdomain.ProjectWithOwner, error) {
	var item projectsdomain.ProjectWithOwner
	err := r.withOwner(ctx).
		Where("projects.project_id = ?", id).
		Take(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, projectsdomain.ErrProjectNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID int64) ([]projectsdomain.ProjectWithOwner, error) {
	var items []projectsdomain.ProjectWithOwner
	if err := r.withOwner(ctx).
		Where("projects.parent_id = ?", ownerID).
		Order("projects.created_at desc, projects.project_id desc").
		Scan(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) withOwner(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("projects").
		Select(ownerColumns).
		Joins("join users on users.id = projects.parent_id")
}
