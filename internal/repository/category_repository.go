package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"productivity/internal/model"
)

// CategoryRepository manages task categories.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create inserts a category; the unique index on name rejects duplicates.
func (r *CategoryRepository) Create(ctx context.Context, name string) (*model.Category, error) {
	category := model.Category{Name: name}
	if err := r.db.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, wrapWrite("create category", err)
	}
	return &category, nil
}

// GetOrCreate returns the category with the given name, inserting it
// first if missing.
func (r *CategoryRepository) GetOrCreate(ctx context.Context, name string) (*model.Category, error) {
	var category model.Category
	db := r.db.WithContext(ctx)
	err := db.Where("name = ?", name).First(&category).Error
	switch {
	case err == nil:
		return &category, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return r.Create(ctx, name)
	default:
		return nil, wrapRead("find category", err)
	}
}

func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*model.Category, error) {
	var category model.Category
	err := r.db.WithContext(ctx).
		Preload("Tasks", sortedByName).
		First(&category, "id = ?", id).Error
	if err != nil {
		return nil, wrapRead("find category", err)
	}
	return &category, nil
}

func (r *CategoryRepository) FindByName(ctx context.Context, name string) (*model.Category, error) {
	var category model.Category
	err := r.db.WithContext(ctx).
		Preload("Tasks", sortedByName).
		Where("name = ?", name).
		First(&category).Error
	if err != nil {
		return nil, wrapRead("find category", err)
	}
	return &category, nil
}

func (r *CategoryRepository) ListAll(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := r.db.WithContext(ctx).
		Preload("Tasks", sortedByName).
		Order("name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, wrapRead("list categories", err)
	}
	return categories, nil
}

// Rename updates the name in place. The unique index still applies, so
// renaming onto a taken name fails the same way a duplicate insert does.
func (r *CategoryRepository) Rename(ctx context.Context, category *model.Category, newName string) error {
	err := r.db.WithContext(ctx).Model(category).Update("name", newName).Error
	return wrapWrite("rename category", err)
}

// Delete removes the category and its join rows. Tasks that referenced it
// keep their other categories (nullify, never cascade).
func (r *CategoryRepository) Delete(ctx context.Context, category *model.Category) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(category).Association("Tasks").Clear(); err != nil {
			return err
		}
		return tx.Delete(category).Error
	})
	return wrapWrite("delete category", err)
}
