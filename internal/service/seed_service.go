package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"productivity/internal/model"
	"productivity/internal/repository"
)

// SeedService populates the starter dataset the first time the store is
// empty. It never runs when any task already exists, so two consecutive
// startups do not double the seed entities.
type SeedService struct {
	db       *gorm.DB
	taskRepo *repository.TaskRepository
	logger   zerolog.Logger
}

func NewSeedService(db *gorm.DB, taskRepo *repository.TaskRepository, logger zerolog.Logger) *SeedService {
	return &SeedService{db: db, taskRepo: taskRepo, logger: logger}
}

type seedTask struct {
	name        string
	explanation string
	completed   bool
	period      string
	categories  []string
	planned     time.Time
}

// Run inserts the starter time periods, categories, and tasks in a
// single commit.
func (s *SeedService) Run(ctx context.Context) error {
	count, err := s.taskRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		s.logger.Debug().Int64("tasks", count).Msg("store already populated, skipping seed")
		return nil
	}

	periodNames := []string{"daily", "weekly", "monthly", "yearly"}
	categoryNames := []string{
		model.AllCategoryName, "personal", "work", "school", "church", "health",
	}
	tasks := []seedTask{
		{
			name:        "mobile dev",
			explanation: "I need to finish it in 3 hours",
			period:      "weekly",
			categories:  []string{"school", model.AllCategoryName},
			planned:     time.Date(2024, 12, 18, 0, 0, 0, 0, time.UTC),
		},
		{
			name:        "lazy triathalon",
			explanation: "Complete the lazy man trialathon in the month of October",
			completed:   true,
			period:      "daily",
			categories:  []string{"health", "personal", model.AllCategoryName},
			planned:     time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:        "Wedding Planning",
			explanation: "Pick up the dress. Get my nails done. Move my stuff to our new apartment. Clean my current apartment.",
			period:      "daily",
			categories:  []string{model.AllCategoryName, "personal"},
			planned:     time.Date(2024, 12, 18, 0, 0, 0, 0, time.UTC),
		},
		{
			name:        "Pick a date",
			explanation: "Pick a date for the wedding to happen that will work for us and for everone else.",
			completed:   true,
			period:      "monthly",
			categories:  []string{model.AllCategoryName, "personal"},
			planned:     time.Date(2024, 9, 22, 0, 0, 0, 0, time.UTC),
		},
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		periods := make(map[string]*model.TimePeriod, len(periodNames))
		for _, name := range periodNames {
			period := &model.TimePeriod{Name: name}
			if err := tx.Create(period).Error; err != nil {
				return err
			}
			periods[name] = period
		}

		categories := make(map[string]*model.Category, len(categoryNames))
		for _, name := range categoryNames {
			category := &model.Category{Name: name}
			if err := tx.Create(category).Error; err != nil {
				return err
			}
			categories[name] = category
		}

		for _, st := range tasks {
			task := &model.Task{
				Name:                  st.name,
				Explanation:           st.explanation,
				Completed:             st.completed,
				PlannedCompletionDate: st.planned,
				TimePeriodID:          &periods[st.period].ID,
			}
			if err := tx.Omit(clause.Associations).Create(task).Error; err != nil {
				return err
			}
			members := make([]model.Category, 0, len(st.categories))
			for _, cn := range st.categories {
				members = append(members, *categories[cn])
			}
			if err := tx.Model(task).Association("Categories").Replace(&members); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("seed store: %w", err)
	}

	s.logger.Info().
		Int("time_periods", len(periodNames)).
		Int("categories", len(categoryNames)).
		Int("tasks", len(tasks)).
		Msg("seeded starter data")
	return nil
}
