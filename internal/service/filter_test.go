package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"productivity/internal/model"
)

func TestFilterTasks(t *testing.T) {
	tasks := []model.Task{
		{Name: "Buy milk"},
		{Name: "Wedding Planning"},
		{Name: "mobile dev"},
	}

	t.Run("empty search returns input unchanged", func(t *testing.T) {
		got := FilterTasks(tasks, "")
		assert.Equal(t, tasks, got)
	})

	t.Run("matches are case-insensitive", func(t *testing.T) {
		got := FilterTasks(tasks, "WEDDING")
		assert.Len(t, got, 1)
		assert.Equal(t, "Wedding Planning", got[0].Name)
	})

	t.Run("substring anywhere in the name matches", func(t *testing.T) {
		got := FilterTasks(tasks, "i")
		assert.Len(t, got, 3)

		got = FilterTasks(tasks, "dev")
		assert.Len(t, got, 1)
		assert.Equal(t, "mobile dev", got[0].Name)
	})

	t.Run("no match returns empty", func(t *testing.T) {
		assert.Empty(t, FilterTasks(tasks, "zzz"))
	})

	t.Run("empty input stays empty", func(t *testing.T) {
		assert.Empty(t, FilterTasks(nil, "milk"))
	})
}
