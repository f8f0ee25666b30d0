package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"productivity/internal/model"
	"productivity/internal/repository"
)

// ErrNameRequired rejects tasks that would be saved without a name.
// Unnamed drafts are discarded by the caller, never stored.
var ErrNameRequired = errors.New("name is required")

// TaskInput represents data required to create a task.
type TaskInput struct {
	Name                  string
	Explanation           string
	PlannedCompletionDate time.Time
	TimePeriodID          *string
	CategoryIDs           []string
}

// UpdateTaskInput carries field changes for an existing task. Nil fields
// are left untouched, so callers edit a private draft and submit only
// what changed; nothing in the store moves until the call commits.
type UpdateTaskInput struct {
	Name                  *string
	Explanation           *string
	Completed             *bool
	PlannedCompletionDate *time.Time
	TimePeriodID          *string
	ClearTimePeriod       bool
	CategoryIDs           []string
	SetCategories         bool
}

// PlannerService is the single entry point for store mutations. It owns
// the four query snapshots and recomputes all of them after every
// successful change.
type PlannerService struct {
	taskRepo   *repository.TaskRepository
	catRepo    *repository.CategoryRepository
	periodRepo *repository.TimePeriodRepository
	logger     zerolog.Logger

	allTasks       []model.Task
	allCategories  []model.Category
	allTimePeriods []model.TimePeriod
	completedTasks []model.Task
}

func NewPlannerService(
	taskRepo *repository.TaskRepository,
	catRepo *repository.CategoryRepository,
	periodRepo *repository.TimePeriodRepository,
	logger zerolog.Logger,
) *PlannerService {
	return &PlannerService{
		taskRepo:   taskRepo,
		catRepo:    catRepo,
		periodRepo: periodRepo,
		logger:     logger,
	}
}

// Refresh recomputes all four snapshots from the store. It runs after
// every successful mutation; there is no incremental maintenance, the
// dataset is small and local.
func (s *PlannerService) Refresh(ctx context.Context) error {
	tasks, err := s.taskRepo.ListAll(ctx)
	if err != nil {
		return err
	}
	categories, err := s.catRepo.ListAll(ctx)
	if err != nil {
		return err
	}
	periods, err := s.periodRepo.ListAll(ctx)
	if err != nil {
		return err
	}
	completed, err := s.taskRepo.ListCompleted(ctx)
	if err != nil {
		return err
	}

	s.allTasks = tasks
	s.allCategories = categories
	s.allTimePeriods = periods
	s.completedTasks = completed

	s.logger.Debug().
		Int("tasks", len(tasks)).
		Int("categories", len(categories)).
		Int("time_periods", len(periods)).
		Int("completed", len(completed)).
		Msg("snapshots refreshed")
	return nil
}

// Snapshot accessors return deep copies, relationship slices included;
// callers cannot mutate service state through them.

func (s *PlannerService) AllTasks() []model.Task {
	return cloneTasks(s.allTasks)
}

func (s *PlannerService) AllCategories() []model.Category {
	return cloneCategories(s.allCategories)
}

func (s *PlannerService) AllTimePeriods() []model.TimePeriod {
	return cloneTimePeriods(s.allTimePeriods)
}

func (s *PlannerService) CompletedTasks() []model.Task {
	return cloneTasks(s.completedTasks)
}

func cloneTask(task model.Task) model.Task {
	task.Categories = append([]model.Category(nil), task.Categories...)
	if task.TimePeriod != nil {
		period := *task.TimePeriod
		period.Tasks = append([]model.Task(nil), period.Tasks...)
		task.TimePeriod = &period
	}
	return task
}

func cloneTasks(tasks []model.Task) []model.Task {
	if tasks == nil {
		return nil
	}
	out := make([]model.Task, len(tasks))
	for i, task := range tasks {
		out[i] = cloneTask(task)
	}
	return out
}

func cloneCategories(categories []model.Category) []model.Category {
	if categories == nil {
		return nil
	}
	out := make([]model.Category, len(categories))
	for i, category := range categories {
		category.Tasks = cloneTasks(category.Tasks)
		out[i] = category
	}
	return out
}

func cloneTimePeriods(periods []model.TimePeriod) []model.TimePeriod {
	if periods == nil {
		return nil
	}
	out := make([]model.TimePeriod, len(periods))
	for i, period := range periods {
		period.Tasks = cloneTasks(period.Tasks)
		out[i] = period
	}
	return out
}

// GetTask loads one task with its relationships, for edit flows.
func (s *PlannerService) GetTask(ctx context.Context, id string) (*model.Task, error) {
	return s.taskRepo.FindByID(ctx, id)
}

// CreateTask builds and stores a task. Every saved task belongs to the
// distinguished "all" category, which is recreated on demand if it was
// deleted.
func (s *PlannerService) CreateTask(ctx context.Context, input TaskInput) (*model.Task, error) {
	if input.Name == "" {
		return nil, ErrNameRequired
	}

	categories, err := s.resolveCategories(ctx, input.CategoryIDs)
	if err != nil {
		return nil, err
	}
	categories, err = s.withAllCategory(ctx, categories)
	if err != nil {
		return nil, err
	}

	task := model.Task{
		Name:                  input.Name,
		Explanation:           input.Explanation,
		PlannedCompletionDate: input.PlannedCompletionDate,
		TimePeriodID:          input.TimePeriodID,
		Categories:            categories,
	}
	if err := s.taskRepo.Create(ctx, &task); err != nil {
		return nil, err
	}
	if err := s.Refresh(ctx); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask applies the given field changes in one commit.
func (s *PlannerService) UpdateTask(ctx context.Context, id string, input UpdateTaskInput) (*model.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, ErrNameRequired
		}
		task.Name = *input.Name
	}
	if input.Explanation != nil {
		task.Explanation = *input.Explanation
	}
	if input.Completed != nil {
		task.Completed = *input.Completed
	}
	if input.PlannedCompletionDate != nil {
		task.PlannedCompletionDate = *input.PlannedCompletionDate
	}
	switch {
	case input.ClearTimePeriod:
		task.TimePeriodID = nil
		task.TimePeriod = nil
	case input.TimePeriodID != nil:
		task.TimePeriodID = input.TimePeriodID
		task.TimePeriod = nil
	}

	var categories *[]model.Category
	if input.SetCategories {
		resolved, err := s.resolveCategories(ctx, input.CategoryIDs)
		if err != nil {
			return nil, err
		}
		resolved, err = s.withAllCategory(ctx, resolved)
		if err != nil {
			return nil, err
		}
		categories = &resolved
	}

	if err := s.taskRepo.Update(ctx, task, categories); err != nil {
		return nil, err
	}
	if err := s.Refresh(ctx); err != nil {
		return nil, err
	}
	return s.taskRepo.FindByID(ctx, id)
}

// ToggleCompleted flips the completed flag.
func (s *PlannerService) ToggleCompleted(ctx context.Context, id string) (*model.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	task.Completed = !task.Completed
	if err := s.taskRepo.Save(ctx, task); err != nil {
		return nil, err
	}
	if err := s.Refresh(ctx); err != nil {
		return nil, err
	}
	return task, nil
}

// DeleteTask removes the task and every relationship edge that pointed
// at it, on both the category and the time-period side.
func (s *PlannerService) DeleteTask(ctx context.Context, id string) error {
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.taskRepo.Delete(ctx, task); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

// CreateCategory inserts a category. An empty or already-taken name is a
// silent no-op returning nil.
func (s *PlannerService) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	if name == "" {
		return nil, nil
	}
	_, err := s.catRepo.FindByName(ctx, name)
	switch {
	case err == nil:
		return nil, nil
	case !errors.Is(err, repository.ErrNotFound):
		return nil, err
	}

	category, err := s.catRepo.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := s.Refresh(ctx); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes the category; tasks that referenced it keep
// their other categories.
func (s *PlannerService) DeleteCategory(ctx context.Context, id string) error {
	category, err := s.catRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.catRepo.Delete(ctx, category); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

// RenameCategory renames in place. An empty new name is a silent no-op;
// a taken one surfaces repository.ErrDuplicateName.
func (s *PlannerService) RenameCategory(ctx context.Context, id, newName string) error {
	if newName == "" {
		return nil
	}
	category, err := s.catRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.catRepo.Rename(ctx, category, newName); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

// CreateTimePeriod inserts a period bucket; empty or taken names are a
// silent no-op, mirroring CreateCategory.
func (s *PlannerService) CreateTimePeriod(ctx context.Context, name string) (*model.TimePeriod, error) {
	if name == "" {
		return nil, nil
	}
	exists, err := s.periodRepo.ExistsByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, nil
	}

	period, err := s.periodRepo.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := s.Refresh(ctx); err != nil {
		return nil, err
	}
	return period, nil
}

// DeleteTimePeriod removes the period; its tasks survive with a cleared
// reference.
func (s *PlannerService) DeleteTimePeriod(ctx context.Context, id string) error {
	period, err := s.periodRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.periodRepo.Delete(ctx, period); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

func (s *PlannerService) resolveCategories(ctx context.Context, ids []string) ([]model.Category, error) {
	var categories []model.Category
	for _, id := range ids {
		category, err := s.catRepo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		// Only the join rows matter here, not the preloaded backrefs.
		category.Tasks = nil
		categories = append(categories, *category)
	}
	return categories, nil
}

func (s *PlannerService) withAllCategory(ctx context.Context, categories []model.Category) ([]model.Category, error) {
	for _, category := range categories {
		if category.Name == model.AllCategoryName {
			return categories, nil
		}
	}
	all, err := s.catRepo.GetOrCreate(ctx, model.AllCategoryName)
	if err != nil {
		return nil, err
	}
	return append(categories, *all), nil
}
