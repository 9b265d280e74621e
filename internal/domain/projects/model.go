package projects

import (
	"time"

	"gorm.io/datatypes"
)

const (
	StatusOpen = "open"

	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

type Project struct {
	ID           int64           `gorm:"column:project_id;primaryKey" json:"project_id"`
	ParentID     int64           `gorm:"column:parent_id;index" json:"parent_id"`
	Title        string          `gorm:"column:title;not null" json:"title"`
	Description  *string         `gorm:"column:description" json:"description"`
	GradeLevel   *string         `gorm:"column:grade_level" json:"grade_level"`
	Budget       *float64        `gorm:"column:budget;type:numeric(10,2)" json:"budget"`
	DeliveryType string          `gorm:"column:delivery_type;default:online" json:"delivery_type"`
	Difficulty   string          `gorm:"column:difficulty;default:beginner" json:"difficulty"`
	Deadline     *datatypes.Date `gorm:"column:deadline" json:"deadline"`
	Category     *string         `gorm:"column:category" json:"category"`
	Status       string          `gorm:"column:status;default:open" json:"status"`
	CreatedAt    time.Time       `gorm:"column:created_at;<-:false;autoCreateTime:false" json:"created_at"`
}

func (Project) TableName() string {
	return "projects"
}

// ProjectWithOwner is a project row joined with its owner's display name.
type ProjectWithOwner struct {
	Project
	ParentName string `gorm:"column:parent_name" json:"parent_name"`
}

type CreateInput struct {
	Title        string
	Description  *string
	GradeLevel   *string
	Budget       *float64
	DeliveryType string
	Difficulty   string
	Deadline     *time.Time
	Category     *string
}
