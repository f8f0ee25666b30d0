package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"productivity/internal/model"
)

// OverviewService builds a human-readable summary of the current
// snapshots for the command-line entrypoint.
type OverviewService struct {
	planner *PlannerService
}

func NewOverviewService(planner *PlannerService) *OverviewService {
	return &OverviewService{planner: planner}
}

// Render returns a plain-text overview: open tasks ordered by target
// date, then completed tasks, then the grouping dimensions with counts.
func (s *OverviewService) Render(now time.Time) string {
	var open []model.Task
	for _, task := range s.planner.AllTasks() {
		if !task.Completed {
			open = append(open, task)
		}
	}

	sort.SliceStable(open, func(i, j int) bool {
		switch {
		case open[i].PlannedCompletionDate.IsZero() && open[j].PlannedCompletionDate.IsZero():
			return open[i].CreatedAt.After(open[j].CreatedAt)
		case open[i].PlannedCompletionDate.IsZero():
			return false
		case open[j].PlannedCompletionDate.IsZero():
			return true
		default:
			return open[i].PlannedCompletionDate.Before(open[j].PlannedCompletionDate)
		}
	})

	var builder strings.Builder
	builder.WriteString("Productivity overview\n")
	builder.WriteString(now.Format("2006-01-02") + "\n\n")

	builder.WriteString("Open tasks\n")
	if len(open) == 0 {
		builder.WriteString("  (none)\n")
	} else {
		for _, task := range open {
			builder.WriteString(formatOverviewTask(task, now))
		}
	}

	completed := s.planner.CompletedTasks()
	builder.WriteString("\nCompleted\n")
	if len(completed) == 0 {
		builder.WriteString("  (none)\n")
	} else {
		for _, task := range completed {
			builder.WriteString(fmt.Sprintf("  [x] %s\n", task.Name))
		}
	}

	builder.WriteString("\nCategories\n")
	for _, category := range s.planner.AllCategories() {
		builder.WriteString(fmt.Sprintf("  %s (%d)\n", category.Name, len(category.Tasks)))
	}

	builder.WriteString("\nTime periods\n")
	for _, period := range s.planner.AllTimePeriods() {
		builder.WriteString(fmt.Sprintf("  %s (%d)\n", period.Name, len(period.Tasks)))
	}

	return strings.TrimRight(builder.String(), "\n")
}

func formatOverviewTask(task model.Task, now time.Time) string {
	var sb strings.Builder
	sb.WriteString("  [ ] " + task.Name)

	if task.TimePeriod != nil {
		sb.WriteString(fmt.Sprintf(" (%s)", task.TimePeriod.Name))
	}

	if !task.PlannedCompletionDate.IsZero() {
		target := task.PlannedCompletionDate
		if now.After(target) {
			sb.WriteString(fmt.Sprintf(", target %s, overdue", target.Format("2006-01-02")))
		} else {
			daysLeft := int(target.Sub(now).Hours()/24) + 1
			sb.WriteString(fmt.Sprintf(", target %s, ~%d d left", target.Format("2006-01-02"), daysLeft))
		}
	}

	if task.Explanation != "" {
		sb.WriteString("\n      " + strings.TrimSpace(task.Explanation))
	}

	sb.WriteByte('\n')
	return sb.String()
}
