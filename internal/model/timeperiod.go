package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimePeriod buckets tasks by cadence (daily, weekly, monthly, yearly by
// convention, though any name is allowed).
type TimePeriod struct {
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Tasks     []Task `gorm:"foreignKey:TimePeriodID"`
}

func (p *TimePeriod) BeforeCreate(*gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
