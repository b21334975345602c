package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/davonjagah/JagahVA/models"
	"github.com/davonjagah/JagahVA/storage"
	"github.com/davonjagah/JagahVA/utils"
)

// TodoService derives the per-date task list and applies completion updates
// back to the underlying record.
type TodoService struct {
	store  storage.Store
	logger *log.Logger
}

func NewTodoService(store storage.Store, logger *log.Logger) *TodoService {
	return &TodoService{store: store, logger: logger}
}

// GenerateTodos merges everything due on targetDate into one ordered list:
// due goals in definition order, then day-of-week tasks, then date-specific
// tasks, then stored manual todos. The concatenation order is a contract:
// it defines the 1-based numbering that UpdateTasksByNumbers resolves
// against, so both must derive the list the same way.
func (s *TodoService) GenerateTodos(ctx context.Context, userID string, targetDate time.Time) ([]models.TodoItem, error) {
	record, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return buildTodos(record, targetDate), nil
}

func buildTodos(record *models.UserRecord, targetDate time.Time) []models.TodoItem {
	var todos []models.TodoItem
	dateKey := utils.FormatDate(targetDate)
	dayOfWeek := utils.DayOfWeek(targetDate)

	for i, goal := range record.Goals {
		include := false
		switch goal.Frequency {
		case models.FrequencyDaily:
			include = true
		case models.FrequencyWeekly:
			include = utils.IsInCurrentWeek(targetDate)
		}
		if !include {
			continue
		}

		item := models.TodoItem{
			Task:      goal.Task,
			GoalID:    fmt.Sprintf("goal-%d", i+1),
			Completed: hasDoneEntryOn(&record.Goals[i], dateKey),
			Type:      models.TodoTypeGoal,
		}
		if goal.Frequency == models.FrequencyWeekly {
			weekly := weeklyDoneCount(&record.Goals[i])
			item.WeeklyProgress = &weekly
		}
		todos = append(todos, item)
	}

	// Day-of-week and date-pinned tasks carry no persisted completion state.
	for i, task := range record.DayTasks[dayOfWeek] {
		todos = append(todos, models.TodoItem{
			Task:   task,
			GoalID: fmt.Sprintf("day-%s-%d", dayOfWeek, i+1),
			Type:   models.TodoTypeDay,
		})
	}
	for i, task := range record.DateTasks[dateKey] {
		todos = append(todos, models.TodoItem{
			Task:   task,
			GoalID: fmt.Sprintf("date-%s-%d", dateKey, i+1),
			Type:   models.TodoTypeDate,
		})
	}

	for _, manual := range record.Todos[dateKey] {
		todos = append(todos, models.TodoItem{
			Task:      manual.Task,
			GoalID:    manual.GoalID,
			Completed: manual.Completed,
			Type:      manual.Type,
		})
	}

	return todos
}

// UpdateTasksByNumbers resolves the given 1-based numbers against today's
// derived list and applies each: goal items get a done-today progress entry
// (skipped if already done today), everything else marks the matching
// stored manual todo completed. Returns the numbers that were applied.
//
// Goal and manual items are located by task text, as the original bot did;
// with duplicate display text the first match wins. Stored manual tasks
// still carry unique GoalIDs so the records themselves stay disambiguable.
func (s *TodoService) UpdateTasksByNumbers(ctx context.Context, userID string, numbers []int) ([]int, error) {
	record, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	today := utils.FormatDate(now)
	all := buildTodos(record, now)
	if len(all) == 0 {
		return nil, fmt.Errorf("no tasks found for today")
	}

	var applied []int
	for _, n := range numbers {
		idx := n - 1
		if idx < 0 || idx >= len(all) {
			s.logger.Printf("task number %d out of range for user %s (1-%d)", n, userID, len(all))
			continue
		}

		item := all[idx]
		if item.Type == models.TodoTypeGoal {
			goalIdx := findGoalByTask(record.Goals, item.Task)
			if goalIdx < 0 {
				continue
			}
			goal := &record.Goals[goalIdx]
			if hasDoneEntryOn(goal, today) {
				continue
			}
			goal.Progress = append(goal.Progress, models.ProgressEntry{
				Task: goal.Task,
				Done: true,
				Date: today,
			})
			applied = append(applied, n)
		} else {
			bucket := record.Todos[today]
			taskIdx := findManualByTask(bucket, item.Task)
			if taskIdx < 0 {
				continue
			}
			bucket[taskIdx].Completed = true
			applied = append(applied, n)
		}
	}

	if len(applied) == 0 {
		return nil, fmt.Errorf("no valid task numbers found. Available items: 1-%d", len(all))
	}

	if err := s.store.SaveUser(ctx, userID, record); err != nil {
		return nil, err
	}

	s.logger.Printf("items updated for user %s: %v", userID, applied)
	return applied, nil
}

// AddManualTask appends a one-off task to today's bucket.
func (s *TodoService) AddManualTask(ctx context.Context, userID, taskText string) (*models.ManualTask, error) {
	record, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := utils.FormatDate(time.Now())
	task := models.ManualTask{
		Task:      taskText,
		GoalID:    "manual-" + uuid.NewString(),
		Completed: false,
		Type:      models.TodoTypeManual,
	}
	record.Todos[today] = append(record.Todos[today], task)

	if err := s.store.SaveUser(ctx, userID, record); err != nil {
		return nil, err
	}
	return &task, nil
}

// ToggleTaskCompletion flips the manual todo at the 0-based index within
// targetDate's stored bucket. The index is into the stored bucket only, not
// the merged list.
func (s *TodoService) ToggleTaskCompletion(ctx context.Context, userID string, taskIndex int, targetDate time.Time) (*models.ManualTask, error) {
	record, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	dateKey := utils.FormatDate(targetDate)
	bucket := record.Todos[dateKey]
	if taskIndex < 0 || taskIndex >= len(bucket) {
		return nil, fmt.Errorf("invalid task number. Available tasks: 1-%d", len(bucket))
	}

	bucket[taskIndex].Completed = !bucket[taskIndex].Completed
	if err := s.store.SaveUser(ctx, userID, record); err != nil {
		return nil, err
	}

	task := bucket[taskIndex]
	return &task, nil
}

// SetDayTasks replaces the recurring tasks for a weekday.
func (s *TodoService) SetDayTasks(ctx context.Context, userID, day string, tasks []string) error {
	record, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	record.DayTasks[day] = tasks
	return s.store.SaveUser(ctx, userID, record)
}

// SetDateTasks replaces the one-off tasks for a date key.
func (s *TodoService) SetDateTasks(ctx context.Context, userID, dateKey string, tasks []string) error {
	record, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	record.DateTasks[dateKey] = tasks
	return s.store.SaveUser(ctx, userID, record)
}

func findGoalByTask(goals []models.Goal, task string) int {
	for i := range goals {
		if goals[i].Task == task {
			return i
		}
	}
	return -1
}

func findManualByTask(tasks []models.ManualTask, task string) int {
	for i := range tasks {
		if tasks[i].Task == task {
			return i
		}
	}
	return -1
}
