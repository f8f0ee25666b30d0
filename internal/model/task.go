package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task represents a single tracked item.
type Task struct {
	ID                    string `gorm:"primaryKey"`
	Name                  string `gorm:"index"`
	Explanation           string
	Completed             bool `gorm:"default:false"`
	PlannedCompletionDate time.Time
	TimePeriodID          *string     `gorm:"index"`
	TimePeriod            *TimePeriod `gorm:"foreignKey:TimePeriodID"`
	Categories            []Category  `gorm:"many2many:task_categories"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// BeforeCreate assigns an opaque identifier; names are plain attributes,
// never keys.
func (t *Task) BeforeCreate(*gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
