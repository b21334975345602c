package services

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davonjagah/JagahVA/models"
	"github.com/davonjagah/JagahVA/storage"
	"github.com/davonjagah/JagahVA/utils"
)

func newTestServices() (*GoalService, *TodoService, *storage.MemoryStore) {
	store := storage.NewMemoryStore()
	logger := log.New(io.Discard, "", 0)
	return NewGoalService(store, logger), NewTodoService(store, logger), store
}

func TestGenerateTodosOrdering(t *testing.T) {
	ctx := context.Background()
	_, todoSvc, store := newTestServices()

	now := time.Now()
	today := utils.FormatDate(now)
	weekday := utils.DayOfWeek(now)

	record := models.NewUserRecord()
	record.Goals = []models.Goal{
		{Task: "workout", Frequency: models.FrequencyWeekly, Count: 3, Progress: []models.ProgressEntry{}},
		{Task: "read", Frequency: models.FrequencyDaily, Count: 1, Progress: []models.ProgressEntry{}},
	}
	record.DayTasks[weekday] = []string{"team meeting"}
	record.DateTasks[today] = []string{"dentist"}
	record.Todos[today] = []models.ManualTask{
		{Task: "buy groceries", GoalID: "manual-1", Completed: true, Type: models.TodoTypeManual},
	}
	require.NoError(t, store.SaveUser(ctx, "u1", record))

	todos, err := todoSvc.GenerateTodos(ctx, "u1", now)
	require.NoError(t, err)
	require.Len(t, todos, 5)

	// goals first (definition order), then day, date, manual
	assert.Equal(t, "workout", todos[0].Task)
	assert.Equal(t, models.TodoTypeGoal, todos[0].Type)
	assert.Equal(t, "read", todos[1].Task)
	assert.Equal(t, "team meeting", todos[2].Task)
	assert.Equal(t, models.TodoTypeDay, todos[2].Type)
	assert.Equal(t, "dentist", todos[3].Task)
	assert.Equal(t, models.TodoTypeDate, todos[3].Type)
	assert.Equal(t, "buy groceries", todos[4].Task)
	assert.Equal(t, models.TodoTypeManual, todos[4].Type)
	assert.True(t, todos[4].Completed)

	// weekly progress set only on the weekly goal
	require.NotNil(t, todos[0].WeeklyProgress)
	assert.Equal(t, 0, *todos[0].WeeklyProgress)
	assert.Nil(t, todos[1].WeeklyProgress)

	// stable across calls with no intervening writes
	again, err := todoSvc.GenerateTodos(ctx, "u1", now)
	require.NoError(t, err)
	assert.Equal(t, todos, again)
}

func TestGenerateTodosWithoutGoalsStillListsTasks(t *testing.T) {
	ctx := context.Background()
	_, todoSvc, store := newTestServices()

	now := time.Now()
	record := models.NewUserRecord()
	record.Todos[utils.FormatDate(now)] = []models.ManualTask{
		{Task: "buy groceries", GoalID: "manual-1", Type: models.TodoTypeManual},
	}
	require.NoError(t, store.SaveUser(ctx, "u1", record))

	todos, err := todoSvc.GenerateTodos(ctx, "u1", now)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, "buy groceries", todos[0].Task)
}

func TestGenerateTodosEmptyUser(t *testing.T) {
	ctx := context.Background()
	_, todoSvc, _ := newTestServices()

	todos, err := todoSvc.GenerateTodos(ctx, "nobody", time.Now())
	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestGenerateTodosMarksGoalCompletedForDate(t *testing.T) {
	ctx := context.Background()
	goalSvc, todoSvc, _ := newTestServices()

	_, err := goalSvc.SetGoals(ctx, "u1", "read daily")
	require.NoError(t, err)
	_, err = goalSvc.UpdateProgressByNumbers(ctx, "u1", "1")
	require.NoError(t, err)

	todos, err := todoSvc.GenerateTodos(ctx, "u1", time.Now())
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.True(t, todos[0].Completed)

	// The completion is tied to today's date key, not to tomorrow.
	todos, err = todoSvc.GenerateTodos(ctx, "u1", utils.Tomorrow())
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.False(t, todos[0].Completed)
}

func TestUpdateTasksByNumbersGoalAndManual(t *testing.T) {
	ctx := context.Background()
	goalSvc, todoSvc, _ := newTestServices()

	_, err := goalSvc.SetGoals(ctx, "u1", "workout 3 times a week, read daily")
	require.NoError(t, err)
	_, err = todoSvc.AddManualTask(ctx, "u1", "buy groceries")
	require.NoError(t, err)

	// numbering: 1 workout, 2 read, 3 buy groceries
	applied, err := todoSvc.UpdateTasksByNumbers(ctx, "u1", []int{1, 3})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, applied)

	todos, err := todoSvc.GenerateTodos(ctx, "u1", time.Now())
	require.NoError(t, err)
	assert.True(t, todos[0].Completed)
	assert.False(t, todos[1].Completed)
	assert.True(t, todos[2].Completed)

	goals, err := goalSvc.GetGoals(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, goals[0].Progress, 1)
	assert.True(t, goals[0].Progress[0].Done)
	assert.Equal(t, utils.FormatDate(time.Now()), goals[0].Progress[0].Date)
}

func TestUpdateTasksByNumbersRepeatSameDayFails(t *testing.T) {
	ctx := context.Background()
	goalSvc, todoSvc, _ := newTestServices()

	_, err := goalSvc.SetGoals(ctx, "u1", "workout 3 times a week")
	require.NoError(t, err)

	applied, err := todoSvc.UpdateTasksByNumbers(ctx, "u1", []int{1})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, applied)

	// Already done today: nothing resolves, so the call fails with the range.
	_, err = todoSvc.UpdateTasksByNumbers(ctx, "u1", []int{1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1-1")

	goals, err := goalSvc.GetGoals(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, goals[0].Progress, 1)
}

func TestUpdateTasksByNumbersOutOfRange(t *testing.T) {
	ctx := context.Background()
	goalSvc, todoSvc, _ := newTestServices()

	_, err := goalSvc.SetGoals(ctx, "u1", "read daily")
	require.NoError(t, err)

	_, err = todoSvc.UpdateTasksByNumbers(ctx, "u1", []int{9})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1-1")
}

func TestAddManualTask(t *testing.T) {
	ctx := context.Background()
	_, todoSvc, store := newTestServices()

	task, err := todoSvc.AddManualTask(ctx, "u1", "buy groceries")
	require.NoError(t, err)
	assert.Equal(t, "buy groceries", task.Task)
	assert.Equal(t, models.TodoTypeManual, task.Type)
	assert.False(t, task.Completed)
	assert.NotEmpty(t, task.GoalID)

	other, err := todoSvc.AddManualTask(ctx, "u1", "buy groceries")
	require.NoError(t, err)
	assert.NotEqual(t, task.GoalID, other.GoalID)

	record, err := store.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, record.Todos[utils.FormatDate(time.Now())], 2)
}

func TestToggleTaskCompletion(t *testing.T) {
	ctx := context.Background()
	_, todoSvc, _ := newTestServices()

	_, err := todoSvc.AddManualTask(ctx, "u1", "buy groceries")
	require.NoError(t, err)

	now := time.Now()
	task, err := todoSvc.ToggleTaskCompletion(ctx, "u1", 0, now)
	require.NoError(t, err)
	assert.True(t, task.Completed)

	task, err = todoSvc.ToggleTaskCompletion(ctx, "u1", 0, now)
	require.NoError(t, err)
	assert.False(t, task.Completed)

	_, err = todoSvc.ToggleTaskCompletion(ctx, "u1", 5, now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1-1")
}

func TestSetDayAndDateTasksReplace(t *testing.T) {
	ctx := context.Background()
	_, todoSvc, store := newTestServices()

	require.NoError(t, todoSvc.SetDayTasks(ctx, "u1", "monday", []string{"gym", "team meeting"}))
	require.NoError(t, todoSvc.SetDayTasks(ctx, "u1", "monday", []string{"standup"}))

	require.NoError(t, todoSvc.SetDateTasks(ctx, "u1", "2025-10-21", []string{"birthday call"}))
	require.NoError(t, todoSvc.SetDateTasks(ctx, "u1", "2025-10-21", []string{"buy gift", "birthday call"}))

	record, err := store.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"standup"}, record.DayTasks["monday"])
	assert.Equal(t, []string{"buy gift", "birthday call"}, record.DateTasks["2025-10-21"])
}
