package service

import (
	"strings"

	"productivity/internal/model"
)

// FilterTasks returns the tasks whose name contains the search string,
// case-insensitively. An empty search string returns the input
// unchanged.
func FilterTasks(tasks []model.Task, search string) []model.Task {
	if search == "" {
		return tasks
	}
	needle := strings.ToLower(search)
	var matched []model.Task
	for _, task := range tasks {
		if strings.Contains(strings.ToLower(task.Name), needle) {
			matched = append(matched, task)
		}
	}
	return matched
}
