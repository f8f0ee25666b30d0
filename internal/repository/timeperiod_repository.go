package repository

import (
	"context"

	"gorm.io/gorm"

	"productivity/internal/model"
)

// TimePeriodRepository manages time period buckets.
type TimePeriodRepository struct {
	db *gorm.DB
}

func NewTimePeriodRepository(db *gorm.DB) *TimePeriodRepository {
	return &TimePeriodRepository{db: db}
}

func (r *TimePeriodRepository) Create(ctx context.Context, name string) (*model.TimePeriod, error) {
	period := model.TimePeriod{Name: name}
	if err := r.db.WithContext(ctx).Create(&period).Error; err != nil {
		return nil, wrapWrite("create time period", err)
	}
	return &period, nil
}

func (r *TimePeriodRepository) FindByID(ctx context.Context, id string) (*model.TimePeriod, error) {
	var period model.TimePeriod
	err := r.db.WithContext(ctx).
		Preload("Tasks", sortedByName).
		First(&period, "id = ?", id).Error
	if err != nil {
		return nil, wrapRead("find time period", err)
	}
	return &period, nil
}

func (r *TimePeriodRepository) FindByName(ctx context.Context, name string) (*model.TimePeriod, error) {
	var period model.TimePeriod
	err := r.db.WithContext(ctx).
		Preload("Tasks", sortedByName).
		Where("name = ?", name).
		First(&period).Error
	if err != nil {
		return nil, wrapRead("find time period", err)
	}
	return &period, nil
}

func (r *TimePeriodRepository) ListAll(ctx context.Context) ([]model.TimePeriod, error) {
	var periods []model.TimePeriod
	err := r.db.WithContext(ctx).
		Preload("Tasks", sortedByName).
		Order("name ASC").
		Find(&periods).Error
	if err != nil {
		return nil, wrapRead("list time periods", err)
	}
	return periods, nil
}

// Delete nullifies the period reference on every task that carried it,
// then removes the period itself. Tasks are never deleted along with it.
func (r *TimePeriodRepository) Delete(ctx context.Context, period *model.TimePeriod) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Task{}).
			Where("time_period_id = ?", period.ID).
			Update("time_period_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(period).Error
	})
	return wrapWrite("delete time period", err)
}

// ExistsByName reports whether a period with that exact name is stored.
func (r *TimePeriodRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.TimePeriod{}).
		Where("name = ?", name).
		Count(&count).Error
	if err != nil {
		return false, wrapRead("count time periods", err)
	}
	return count > 0, nil
}
