package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"productivity/internal/model"
	"productivity/internal/repository"
)

type SeedServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	planner *PlannerService
	seeder  *SeedService
	ctx     context.Context
}

func (suite *SeedServiceTestSuite) SetupTest() {
	suite.db = openTestDB(&suite.Suite)
	taskRepo := repository.NewTaskRepository(suite.db)
	suite.planner = NewPlannerService(
		taskRepo,
		repository.NewCategoryRepository(suite.db),
		repository.NewTimePeriodRepository(suite.db),
		zerolog.Nop(),
	)
	suite.seeder = NewSeedService(suite.db, taskRepo, zerolog.Nop())
	suite.ctx = context.Background()
}

func (suite *SeedServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *SeedServiceTestSuite) TestSeedPopulatesStarterData() {
	suite.Require().NoError(suite.seeder.Run(suite.ctx))
	suite.Require().NoError(suite.planner.Refresh(suite.ctx))

	suite.Len(suite.planner.AllTimePeriods(), 4)
	suite.Len(suite.planner.AllCategories(), 6)
	suite.Len(suite.planner.AllTasks(), 4)
	suite.Len(suite.planner.CompletedTasks(), 2)

	var names []string
	for _, category := range suite.planner.AllCategories() {
		names = append(names, category.Name)
	}
	suite.Contains(names, model.AllCategoryName)

	// Every seeded task belongs to the distinguished category.
	for _, category := range suite.planner.AllCategories() {
		if category.Name == model.AllCategoryName {
			suite.Len(category.Tasks, 4)
		}
	}
}

func (suite *SeedServiceTestSuite) TestSeedSkippedWhenTasksExist() {
	suite.Require().NoError(suite.seeder.Run(suite.ctx))

	// A second startup over the same store must not duplicate anything.
	again := NewSeedService(suite.db, repository.NewTaskRepository(suite.db), zerolog.Nop())
	suite.Require().NoError(again.Run(suite.ctx))

	suite.Require().NoError(suite.planner.Refresh(suite.ctx))
	suite.Len(suite.planner.AllTimePeriods(), 4)
	suite.Len(suite.planner.AllCategories(), 6)
	suite.Len(suite.planner.AllTasks(), 4)
}

func (suite *SeedServiceTestSuite) TestSeedSkippedWhenUserTaskExists() {
	_, err := suite.planner.CreateTask(suite.ctx, TaskInput{Name: "Buy milk"})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.seeder.Run(suite.ctx))
	suite.Require().NoError(suite.planner.Refresh(suite.ctx))
	suite.Len(suite.planner.AllTasks(), 1)
	suite.Empty(suite.planner.AllTimePeriods())
}

func TestSeedServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SeedServiceTestSuite))
}

// TestSeedSurvivesReopen runs two cold starts against the same database
// file, the shape the loader actually has to handle.
func TestSeedSurvivesReopen(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "productivity.db")
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		db, err := repository.NewDB(dsn)
		if err != nil {
			t.Fatalf("open db: %v", err)
		}
		taskRepo := repository.NewTaskRepository(db)
		if err := NewSeedService(db, taskRepo, zerolog.Nop()).Run(ctx); err != nil {
			t.Fatalf("seed: %v", err)
		}
		count, err := taskRepo.Count(ctx)
		if err != nil {
			t.Fatalf("count: %v", err)
		}
		if count != 4 {
			t.Fatalf("startup %d: expected 4 tasks, got %d", i+1, count)
		}
		sqlDB, err := db.DB()
		if err != nil {
			t.Fatalf("sql db: %v", err)
		}
		sqlDB.Close()
	}
}
