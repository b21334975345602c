package commands

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/davonjagah/JagahVA/models"
	"github.com/davonjagah/JagahVA/services"
	"github.com/davonjagah/JagahVA/utils"
)

var validDays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// dateTasksRe splits "!setdate 21 October 2025 Wish Eniola Happy Birthday"
// into the date part and the task list.
var dateTasksRe = regexp.MustCompile(`^(\d{1,2}\s+[A-Za-z]+\s+\d{4})\s+(.+)$`)

// Handler routes inbound message text to the goal and todo services and
// renders each reply as a single text block.
type Handler struct {
	goals  *services.GoalService
	todos  *services.TodoService
	logger *log.Logger
}

func NewHandler(goals *services.GoalService, todos *services.TodoService, logger *log.Logger) *Handler {
	return &Handler{goals: goals, todos: todos, logger: logger}
}

// Dispatch handles one inbound message and returns the reply text. An empty
// reply means the message is not a bot command and should be ignored.
func (h *Handler) Dispatch(ctx context.Context, userID, body string) string {
	switch {
	case body == "!help":
		return helpText
	case body == "!today":
		return h.today(ctx, userID)
	case body == "!tomorrow":
		return h.tomorrow(ctx, userID)
	case strings.HasPrefix(body, "!setgoals"):
		return h.setGoals(ctx, userID, body)
	case body == "!listgoals":
		return h.listGoals(ctx, userID)
	case strings.HasPrefix(body, "!progress"):
		return h.updateProgress(ctx, userID, body)
	case body == "!weekprogress":
		return h.weekProgress(ctx, userID)
	case strings.HasPrefix(body, "!addtask"):
		return h.addTask(ctx, userID, body)
	case strings.HasPrefix(body, "!complete"):
		return h.completeTask(ctx, userID, body)
	case strings.HasPrefix(body, "!setday"):
		return h.setDayTasks(ctx, userID, body)
	case strings.HasPrefix(body, "!setdate"):
		return h.setDateTasks(ctx, userID, body)
	case body == "!stats":
		return "📊 Statistics feature coming soon!"
	case body == "!affirmations":
		return affirmationsText
	case body == "!prayer":
		return prayerText
	}
	return ""
}

func (h *Handler) setGoals(ctx context.Context, userID, body string) string {
	goalsText := strings.TrimSpace(strings.TrimPrefix(body, "!setgoals"))
	if goalsText == "" {
		return "Please provide goals. Example: !setgoals workout 3 times a week, read daily"
	}

	goals, err := h.goals.SetGoals(ctx, userID, goalsText)
	if err != nil {
		return fmt.Sprintf("❌ Error setting goals: %v", err)
	}

	var b strings.Builder
	b.WriteString("✅ Goals set successfully!\n\n")
	for i, g := range goals {
		fmt.Fprintf(&b, "%d. %s (%s: %dx)\n", i+1, g.Task, g.Frequency, g.Count)
	}
	b.WriteString("\nUse !today to see your tasks.")
	return b.String()
}

func (h *Handler) listGoals(ctx context.Context, userID string) string {
	goals, err := h.goals.GetGoals(ctx, userID)
	if err != nil {
		return fmt.Sprintf("❌ Error listing goals: %v", err)
	}
	if len(goals) == 0 {
		return "No goals set yet. Use !setgoals to get started!"
	}

	var b strings.Builder
	b.WriteString("🎯 Your Current Goals:\n\n")
	for i, goal := range goals {
		total := 0
		weekly := 0
		for _, p := range goal.Progress {
			if !p.Done {
				continue
			}
			total++
			if date, err := time.ParseInLocation(utils.DateKeyFormat, p.Date, time.Local); err == nil && utils.IsInCurrentWeek(date) {
				weekly++
			}
		}

		fmt.Fprintf(&b, "%d. %s\n", i+1, goal.Task)
		fmt.Fprintf(&b, "   📊 %s: %dx", goal.Frequency, goal.Count)
		if goal.Frequency == models.FrequencyWeekly {
			fmt.Fprintf(&b, " (%d/%d this week)", weekly, goal.Count)
		}
		fmt.Fprintf(&b, "\n   📈 Total completed: %d times\n\n", total)
	}
	return b.String()
}

func (h *Handler) updateProgress(ctx context.Context, userID, body string) string {
	progressText := strings.TrimSpace(strings.TrimPrefix(body, "!progress"))
	if progressText == "" {
		return "Please provide goal numbers to mark as completed. Example: !progress 1, 2, 5"
	}

	result, err := h.goals.UpdateProgressByNumbers(ctx, userID, progressText)
	if err != nil {
		return fmt.Sprintf("❌ Error updating progress: %v", err)
	}

	var b strings.Builder
	if len(result.Updated) > 0 {
		fmt.Fprintf(&b, "✅ Marked as completed: %s\n", joinNumbers(result.Updated))
	}
	if len(result.AlreadyDone) > 0 {
		fmt.Fprintf(&b, "ℹ️ Already completed today: %s\n", joinNumbers(result.AlreadyDone))
	}
	if len(result.OutOfRange) > 0 {
		fmt.Fprintf(&b, "⚠️ Out of range: %s (valid goals: 1-%d)\n", joinNumbers(result.OutOfRange), result.Total)
	}
	b.WriteString("\nUse !today to see your updated tasks.")
	return b.String()
}

func (h *Handler) weekProgress(ctx context.Context, userID string) string {
	reports, err := h.goals.WeeklyProgress(ctx, userID)
	if err != nil {
		return fmt.Sprintf("❌ Error getting weekly progress: %v", err)
	}
	if len(reports) == 0 {
		return "No weekly goals set. Use !setgoals to get started!"
	}

	now := time.Now()
	var b strings.Builder
	fmt.Fprintf(&b, "📊 Weekly Progress (%s - %s):\n\n",
		utils.FormatDateReadable(utils.StartOfWeek(now)),
		utils.FormatDateReadable(utils.EndOfWeek(now)))

	for i, r := range reports {
		fmt.Fprintf(&b, "%d. %s\n", i+1, r.Task)
		fmt.Fprintf(&b, "   %s %d/%d (%d%%)\n", progressBar(r.Percentage), r.WeeklyProgress, r.Count, r.Percentage)
		fmt.Fprintf(&b, "   📈 Total completed: %d times\n\n", r.TotalProgress)
	}
	return b.String()
}

func (h *Handler) today(ctx context.Context, userID string) string {
	now := time.Now()
	todos, err := h.todos.GenerateTodos(ctx, userID, now)
	if err != nil {
		return fmt.Sprintf("❌ Error generating tasks: %v", err)
	}
	if len(todos) == 0 {
		return "📝 No tasks for today. Use !setgoals to get started!"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📅 Today's Tasks (%s):\n\n", utils.FormatDateReadable(now))
	for i, t := range todos {
		fmt.Fprintf(&b, "%d. %s", i+1, t.Task)
		if t.WeeklyProgress != nil {
			fmt.Fprintf(&b, " (%d this week)", *t.WeeklyProgress)
		}
		if t.Completed {
			b.WriteString(" - ✅ Done")
		} else {
			b.WriteString(" - ⏳ Pending")
		}
		b.WriteString("\n")
	}
	b.WriteString("\nUse !progress <numbers> to mark goals as completed.")
	return b.String()
}

func (h *Handler) tomorrow(ctx context.Context, userID string) string {
	tomorrow := utils.Tomorrow()
	todos, err := h.todos.GenerateTodos(ctx, userID, tomorrow)
	if err != nil {
		return fmt.Sprintf("❌ Error generating tasks: %v", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📅 Tomorrow's Tasks (%s):\n\n", utils.FormatDateReadable(tomorrow))
	for i, t := range todos {
		fmt.Fprintf(&b, "%d. %s", i+1, t.Task)
		if t.WeeklyProgress != nil && *t.WeeklyProgress > 0 {
			fmt.Fprintf(&b, " (%d this week)", *t.WeeklyProgress)
		}
		b.WriteString(" - ⏳ Pending\n")
	}
	b.WriteString("\nUse !today to see today's tasks.")
	return b.String()
}

func (h *Handler) addTask(ctx context.Context, userID, body string) string {
	taskText := strings.TrimSpace(strings.TrimPrefix(body, "!addtask"))
	if taskText == "" {
		return "Please provide a task. Example: !addtask Buy groceries"
	}

	if _, err := h.todos.AddManualTask(ctx, userID, taskText); err != nil {
		return fmt.Sprintf("❌ Error adding task: %v", err)
	}
	return fmt.Sprintf("✅ Task added: %s\n\nUse !today to see all your tasks.", taskText)
}

func (h *Handler) completeTask(ctx context.Context, userID, body string) string {
	parts := strings.Fields(body)
	if len(parts) < 2 {
		return "Usage: !complete <number>\nExample: !complete 1"
	}

	number, err := strconv.Atoi(parts[1])
	if err != nil {
		return "Usage: !complete <number>\nExample: !complete 1"
	}

	task, err := h.todos.ToggleTaskCompletion(ctx, userID, number-1, time.Now())
	if err != nil {
		return fmt.Sprintf("❌ Error completing task: %v", err)
	}

	status := "⏳ Pending"
	if task.Completed {
		status = "✅ Completed"
	}
	return fmt.Sprintf("📝 Task updated: %s - %s\n\nUse !today to see all your tasks.", task.Task, status)
}

func (h *Handler) setDayTasks(ctx context.Context, userID, body string) string {
	content := strings.TrimSpace(strings.TrimPrefix(body, "!setday"))
	day, tasksText, found := strings.Cut(content, " ")
	if !found {
		return "Usage: !setday <day> <tasks>\nExample: !setday Monday Gym, Team meeting"
	}

	day = strings.ToLower(day)
	if !isValidDay(day) {
		return fmt.Sprintf("Invalid day. Use one of: %s", strings.Join(validDays, ", "))
	}

	tasks := utils.SplitLines(tasksText)
	if len(tasks) == 0 {
		return "Please provide tasks. Example: !setday Monday Gym, Team meeting"
	}

	if err := h.todos.SetDayTasks(ctx, userID, day, tasks); err != nil {
		return fmt.Sprintf("❌ Error setting day tasks: %v", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "✅ Day tasks set for %s:\n", day)
	for i, t := range tasks {
		fmt.Fprintf(&b, "%d. %s\n", i+1, t)
	}
	b.WriteString("\nUse !today to see your tasks.")
	return b.String()
}

func (h *Handler) setDateTasks(ctx context.Context, userID, body string) string {
	content := strings.TrimSpace(strings.TrimPrefix(body, "!setdate"))
	match := dateTasksRe.FindStringSubmatch(content)
	if match == nil {
		return "Usage: !setdate <date> <tasks>\nExample: !setdate 21 October 2025 Wish Eniola Happy Birthday"
	}

	date, err := utils.ParseDate(match[1])
	if err != nil {
		return "Invalid date format. Use: DD Month YYYY (e.g., 21 October 2025)"
	}

	tasks := utils.SplitLines(match[2])
	if len(tasks) == 0 {
		return "Please provide tasks. Example: !setdate 21 October 2025 Wish Eniola Happy Birthday"
	}

	dateKey := utils.FormatDate(date)
	if err := h.todos.SetDateTasks(ctx, userID, dateKey, tasks); err != nil {
		return fmt.Sprintf("❌ Error setting date tasks: %v", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "✅ Date tasks set for %s:\n", utils.FormatDateReadable(date))
	for i, t := range tasks {
		fmt.Fprintf(&b, "%d. %s\n", i+1, t)
	}
	b.WriteString("\nUse !today to see your tasks.")
	return b.String()
}

// progressBar renders a ten-segment bar. Percentages above 100 fill the
// whole bar.
func progressBar(percentage int) string {
	filled := (percentage + 5) / 10
	if filled > 10 {
		filled = 10
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}

func joinNumbers(numbers []int) string {
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}

func isValidDay(day string) bool {
	for _, d := range validDays {
		if d == day {
			return true
		}
	}
	return false
}
