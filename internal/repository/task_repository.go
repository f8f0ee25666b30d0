package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"productivity/internal/model"
)

// TaskRepository handles CRUD for tasks.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts a task and wires its category memberships in one
// transaction.
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		categories := task.Categories
		if err := tx.Omit(clause.Associations).Create(task).Error; err != nil {
			return err
		}
		if len(categories) == 0 {
			return nil
		}
		return tx.Model(task).Association("Categories").Replace(&categories)
	})
	return wrapWrite("create task", err)
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		Preload("Categories", sortedByName).
		Preload("TimePeriod").
		First(&task, "id = ?", id).Error
	if err != nil {
		return nil, wrapRead("find task", err)
	}
	return &task, nil
}

func (r *TaskRepository) ListAll(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Preload("Categories", sortedByName).
		Preload("TimePeriod").
		Order("name ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, wrapRead("list tasks", err)
	}
	return tasks, nil
}

func (r *TaskRepository) ListCompleted(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Preload("Categories", sortedByName).
		Preload("TimePeriod").
		Where("completed = ?", true).
		Order("name ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, wrapRead("list completed tasks", err)
	}
	return tasks, nil
}

// Save flushes scalar field changes of an already-persisted task.
func (r *TaskRepository) Save(ctx context.Context, task *model.Task) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(task).Error
	return wrapWrite("save task", err)
}

// Update flushes scalar field changes and, when categories is non-nil,
// rewrites the category set in the same transaction. The join rows are
// the single source of the relationship, so both sides stay in step.
func (r *TaskRepository) Update(ctx context.Context, task *model.Task, categories *[]model.Category) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(task).Error; err != nil {
			return err
		}
		if categories == nil {
			return nil
		}
		return tx.Model(task).Association("Categories").Replace(categories)
	})
	return wrapWrite("update task", err)
}

// Delete removes the task and its category join rows. The time-period
// side needs no extra step: the backref is the tasks.time_period_id
// column of the deleted row.
func (r *TaskRepository) Delete(ctx context.Context, task *model.Task) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(task).Association("Categories").Clear(); err != nil {
			return err
		}
		return tx.Delete(task).Error
	})
	return wrapWrite("delete task", err)
}

func (r *TaskRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Task{}).Count(&count).Error; err != nil {
		return 0, wrapRead("count tasks", err)
	}
	return count, nil
}

func sortedByName(db *gorm.DB) *gorm.DB {
	return db.Order("name ASC")
}
