package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AllCategoryName is the distinguished category every saved task belongs to.
const AllCategoryName = "all"

// Category groups tasks by area (work, health, school, etc.).
type Category struct {
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Tasks     []Task `gorm:"many2many:task_categories"`
}

func (c *Category) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
