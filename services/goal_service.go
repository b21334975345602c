package services

import (
	"context"
	"errors"
	"log"
	"math"
	"time"

	"github.com/davonjagah/JagahVA/models"
	"github.com/davonjagah/JagahVA/storage"
	"github.com/davonjagah/JagahVA/utils"
)

// ErrNoGoals is returned by operations that require at least one goal.
var ErrNoGoals = errors.New("no goals set. Use !setgoals first")

// GoalService owns recurring goals and their progress log.
type GoalService struct {
	store  storage.Store
	logger *log.Logger
}

func NewGoalService(store storage.Store, logger *log.Logger) *GoalService {
	return &GoalService{store: store, logger: logger}
}

// ProgressUpdate reports the outcome of a numbered progress update.
// Total is the number of goals the user has, i.e. the top of the valid
// range 1..Total.
type ProgressUpdate struct {
	Updated     []int
	AlreadyDone []int
	OutOfRange  []int
	Total       int
}

// SetGoals parses the text and replaces the user's entire goal list.
// Progress history tied to the previous goals is dropped with them; goals
// carry no identity across a replacement.
func (s *GoalService) SetGoals(ctx context.Context, userID, goalsText string) ([]models.Goal, error) {
	goals := utils.ParseGoals(goalsText)

	record, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	record.Goals = goals
	if err := s.store.SaveUser(ctx, userID, record); err != nil {
		return nil, err
	}

	s.logger.Printf("goals saved for user %s (%d goals)", userID, len(goals))
	return goals, nil
}

// GetGoals returns the user's goal list.
func (s *GoalService) GetGoals(ctx context.Context, userID string) ([]models.Goal, error) {
	record, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return record.Goals, nil
}

// LogProgress appends every parsed phrase to every goal's log, stamped
// today. This matches the bot's legacy behavior; the numbered update path
// is the precise mechanism.
//
// Deprecated: use UpdateProgressByNumbers.
func (s *GoalService) LogProgress(ctx context.Context, userID, progressText string) ([]models.ProgressEntry, error) {
	record, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(record.Goals) == 0 {
		return nil, ErrNoGoals
	}

	entries := utils.ParseProgress(progressText)
	for i := range record.Goals {
		record.Goals[i].Progress = append(record.Goals[i].Progress, entries...)
	}

	if err := s.store.SaveUser(ctx, userID, record); err != nil {
		return nil, err
	}

	s.logger.Printf("progress logged for user %s (%d entries)", userID, len(entries))
	return entries, nil
}

// UpdateProgressByNumbers marks the goals at the given 1-based positions
// done for today. A goal already done today is skipped, so the operation is
// idempotent per day. Out-of-range numbers are collected in the result
// rather than aborting the rest.
func (s *GoalService) UpdateProgressByNumbers(ctx context.Context, userID, numbersText string) (*ProgressUpdate, error) {
	record, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(record.Goals) == 0 {
		return nil, ErrNoGoals
	}

	numbers, err := utils.ParseNumbers(numbersText)
	if err != nil {
		return nil, err
	}

	today := utils.FormatDate(time.Now())
	result := &ProgressUpdate{Total: len(record.Goals)}

	for _, n := range numbers {
		idx := n - 1
		if idx < 0 || idx >= len(record.Goals) {
			result.OutOfRange = append(result.OutOfRange, n)
			continue
		}

		goal := &record.Goals[idx]
		if hasDoneEntryOn(goal, today) {
			result.AlreadyDone = append(result.AlreadyDone, n)
			continue
		}

		goal.Progress = append(goal.Progress, models.ProgressEntry{
			Task: goal.Task,
			Done: true,
			Date: today,
		})
		result.Updated = append(result.Updated, n)
	}

	if len(result.Updated) > 0 {
		if err := s.store.SaveUser(ctx, userID, record); err != nil {
			return nil, err
		}
	}

	s.logger.Printf("progress updated for user %s: %d done, %d already done, %d out of range",
		userID, len(result.Updated), len(result.AlreadyDone), len(result.OutOfRange))
	return result, nil
}

// WeeklyProgress reports each weekly goal's done count for the current week
// against its target. Percentage is not clamped; exceeding the target reads
// as more than 100%.
func (s *GoalService) WeeklyProgress(ctx context.Context, userID string) ([]models.GoalProgressReport, error) {
	record, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var reports []models.GoalProgressReport
	for _, goal := range record.Goals {
		if goal.Frequency != models.FrequencyWeekly {
			continue
		}

		weekly := weeklyDoneCount(&goal)
		total := totalDoneCount(&goal)

		percentage := 0
		if goal.Count > 0 {
			percentage = int(math.Round(float64(weekly) / float64(goal.Count) * 100))
		}

		reports = append(reports, models.GoalProgressReport{
			Task:           goal.Task,
			Frequency:      goal.Frequency,
			Count:          goal.Count,
			WeeklyProgress: weekly,
			TotalProgress:  total,
			Percentage:     percentage,
		})
	}
	return reports, nil
}

func hasDoneEntryOn(goal *models.Goal, dateKey string) bool {
	for _, p := range goal.Progress {
		if p.Done && p.Date == dateKey {
			return true
		}
	}
	return false
}

func weeklyDoneCount(goal *models.Goal) int {
	count := 0
	for _, p := range goal.Progress {
		if !p.Done {
			continue
		}
		date, err := time.ParseInLocation(utils.DateKeyFormat, p.Date, time.Local)
		if err != nil {
			continue
		}
		if utils.IsInCurrentWeek(date) {
			count++
		}
	}
	return count
}

func totalDoneCount(goal *models.Goal) int {
	count := 0
	for _, p := range goal.Progress {
		if p.Done {
			count++
		}
	}
	return count
}
