package commands

import (
	"context"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davonjagah/JagahVA/services"
	"github.com/davonjagah/JagahVA/storage"
)

func newTestHandler() *Handler {
	store := storage.NewMemoryStore()
	logger := log.New(io.Discard, "", 0)
	goals := services.NewGoalService(store, logger)
	todos := services.NewTodoService(store, logger)
	return NewHandler(goals, todos, logger)
}

func TestDispatchIgnoresNonCommands(t *testing.T) {
	h := newTestHandler()
	assert.Empty(t, h.Dispatch(context.Background(), "u1", "hello there"))
	assert.Empty(t, h.Dispatch(context.Background(), "u1", ""))
}

func TestDispatchHelp(t *testing.T) {
	h := newTestHandler()
	reply := h.Dispatch(context.Background(), "u1", "!help")
	assert.Contains(t, reply, "!setgoals")
	assert.Contains(t, reply, "!weekprogress")
}

func TestSetGoalsFlow(t *testing.T) {
	ctx := context.Background()
	h := newTestHandler()

	reply := h.Dispatch(ctx, "u1", "!setgoals workout 3 times a week, read daily")
	assert.Contains(t, reply, "✅ Goals set successfully!")
	assert.Contains(t, reply, "1. workout (weekly: 3x)")
	assert.Contains(t, reply, "2. read (daily: 1x)")

	reply = h.Dispatch(ctx, "u1", "!listgoals")
	assert.Contains(t, reply, "🎯 Your Current Goals:")
	assert.Contains(t, reply, "(0/3 this week)")
}

func TestSetGoalsUsage(t *testing.T) {
	h := newTestHandler()
	reply := h.Dispatch(context.Background(), "u1", "!setgoals")
	assert.Contains(t, reply, "Example: !setgoals workout 3 times a week")
}

func TestTodayAndProgressFlow(t *testing.T) {
	ctx := context.Background()
	h := newTestHandler()

	reply := h.Dispatch(ctx, "u1", "!today")
	assert.Contains(t, reply, "No tasks for today")

	h.Dispatch(ctx, "u1", "!setgoals workout 3 times a week, read daily")

	reply = h.Dispatch(ctx, "u1", "!today")
	assert.Contains(t, reply, "1. workout (0 this week) - ⏳ Pending")
	assert.Contains(t, reply, "2. read - ⏳ Pending")

	reply = h.Dispatch(ctx, "u1", "!progress 1")
	assert.Contains(t, reply, "✅ Marked as completed: 1")

	reply = h.Dispatch(ctx, "u1", "!today")
	assert.Contains(t, reply, "1. workout (1 this week) - ✅ Done")

	// Same day again: idempotent.
	reply = h.Dispatch(ctx, "u1", "!progress 1")
	assert.Contains(t, reply, "Already completed today: 1")

	// Out-of-range numbers come back with the valid range.
	reply = h.Dispatch(ctx, "u1", "!progress 2, 5")
	assert.Contains(t, reply, "✅ Marked as completed: 2")
	assert.Contains(t, reply, "Out of range: 5 (valid goals: 1-2)")
}

func TestProgressWithoutGoals(t *testing.T) {
	h := newTestHandler()
	reply := h.Dispatch(context.Background(), "u1", "!progress 1")
	assert.Contains(t, reply, "no goals set")
}

func TestWeekProgressFlow(t *testing.T) {
	ctx := context.Background()
	h := newTestHandler()

	reply := h.Dispatch(ctx, "u1", "!weekprogress")
	assert.Contains(t, reply, "No weekly goals set")

	h.Dispatch(ctx, "u1", "!setgoals workout 3 times a week, read daily")
	h.Dispatch(ctx, "u1", "!progress 1")

	reply = h.Dispatch(ctx, "u1", "!weekprogress")
	assert.Contains(t, reply, "📊 Weekly Progress")
	assert.Contains(t, reply, "1. workout")
	assert.Contains(t, reply, "1/3 (33%)")
	assert.NotContains(t, reply, "read")
}

func TestAddAndCompleteTaskFlow(t *testing.T) {
	ctx := context.Background()
	h := newTestHandler()

	reply := h.Dispatch(ctx, "u1", "!addtask Buy groceries")
	assert.Contains(t, reply, "✅ Task added: Buy groceries")

	reply = h.Dispatch(ctx, "u1", "!complete 1")
	assert.Contains(t, reply, "Buy groceries - ✅ Completed")

	// !complete toggles back.
	reply = h.Dispatch(ctx, "u1", "!complete 1")
	assert.Contains(t, reply, "Buy groceries - ⏳ Pending")

	reply = h.Dispatch(ctx, "u1", "!complete 7")
	assert.Contains(t, reply, "Available tasks: 1-1")

	reply = h.Dispatch(ctx, "u1", "!complete")
	assert.Contains(t, reply, "Usage: !complete <number>")
}

func TestSetDayTasksFlow(t *testing.T) {
	ctx := context.Background()
	h := newTestHandler()

	reply := h.Dispatch(ctx, "u1", "!setday Monday Gym, Team meeting")
	assert.Contains(t, reply, "✅ Day tasks set for monday:")
	assert.Contains(t, reply, "1. Gym")
	assert.Contains(t, reply, "2. Team meeting")

	reply = h.Dispatch(ctx, "u1", "!setday Funday Gym")
	assert.Contains(t, reply, "Invalid day")

	reply = h.Dispatch(ctx, "u1", "!setday")
	assert.Contains(t, reply, "Usage: !setday <day> <tasks>")
}

func TestSetDateTasksFlow(t *testing.T) {
	ctx := context.Background()
	h := newTestHandler()

	reply := h.Dispatch(ctx, "u1", "!setdate 21 October 2025 Wish Eniola Happy Birthday")
	assert.Contains(t, reply, "✅ Date tasks set for Tuesday, October 21st:")
	assert.Contains(t, reply, "1. Wish Eniola Happy Birthday")

	reply = h.Dispatch(ctx, "u1", "!setdate 30 February 2025 Impossible")
	assert.Contains(t, reply, "Invalid date format")

	reply = h.Dispatch(ctx, "u1", "!setdate tomorrow stuff")
	assert.Contains(t, reply, "Usage: !setdate <date> <tasks>")
}

func TestStaticCommands(t *testing.T) {
	ctx := context.Background()
	h := newTestHandler()

	assert.Contains(t, h.Dispatch(ctx, "u1", "!stats"), "coming soon")
	assert.Contains(t, h.Dispatch(ctx, "u1", "!affirmations"), "Daily Affirmations")
	assert.Contains(t, h.Dispatch(ctx, "u1", "!prayer"), "Daily Prayer")
}

func TestProgressBar(t *testing.T) {
	require.Equal(t, "░░░░░░░░░░", progressBar(0))
	require.Equal(t, "█████░░░░░", progressBar(50))
	require.Equal(t, "██████████", progressBar(100))
	require.Equal(t, "██████████", progressBar(150))
	require.Equal(t, "███░░░░░░░", progressBar(33))
}
