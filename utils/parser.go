package utils

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/davonjagah/JagahVA/models"
)

// goalPatterns are tried in order; the first match wins. Patterns with two
// capture groups carry an explicit count.
var goalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(.+?)\s+(\d+)\s+times?\s+a\s+week$`),
	regexp.MustCompile(`(?i)^(.+?)\s+(\d+)\s+times?\s+weekly$`),
	regexp.MustCompile(`(?i)^(.+?)\s+(\d+)\s+times?\s+per\s+week$`),
	regexp.MustCompile(`(?i)^(.+?)\s+daily$`),
	regexp.MustCompile(`(?i)^(.+?)\s+everyday$`),
	regexp.MustCompile(`(?i)^(.+?)\s+every\s+day$`),
	regexp.MustCompile(`(?i)^(.+?)\s+(\d+)\s+times?\s+daily$`),
	regexp.MustCompile(`(?i)^(.+?)\s+(\d+)\s+times?\s+everyday$`),
	regexp.MustCompile(`(?i)^(.+?)\s+(\d+)\s+times?\s+every\s+day$`),
}

var lineSplitRe = regexp.MustCompile(`[,\n]`)

var numberSplitRe = regexp.MustCompile(`[,\s]+`)

var ErrNoNumbers = errors.New("no numbers given")

// SplitLines splits free text on commas and newlines, trimming whitespace
// and dropping empty pieces.
func SplitLines(text string) []string {
	var lines []string
	for _, piece := range lineSplitRe.Split(text, -1) {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			lines = append(lines, piece)
		}
	}
	return lines
}

// ParseGoals turns free text like "workout 3 times a week, read daily" into
// goals. The parser is deliberately permissive and never rejects input: a
// line matching no pattern becomes a daily goal with count 1.
func ParseGoals(text string) []models.Goal {
	var goals []models.Goal
	for _, line := range SplitLines(text) {
		goals = append(goals, parseGoalLine(line))
	}
	return goals
}

func parseGoalLine(line string) models.Goal {
	for _, pattern := range goalPatterns {
		match := pattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		count := 1
		if len(match) > 2 {
			count, _ = strconv.Atoi(match[2])
		}

		frequency := models.FrequencyDaily
		if strings.Contains(strings.ToLower(line), "week") {
			frequency = models.FrequencyWeekly
		}

		return models.Goal{
			Task:      strings.TrimSpace(match[1]),
			Frequency: frequency,
			Count:     count,
			Progress:  []models.ProgressEntry{},
		}
	}

	// Fallback: treat as daily goal with count 1.
	return models.Goal{
		Task:      line,
		Frequency: models.FrequencyDaily,
		Count:     1,
		Progress:  []models.ProgressEntry{},
	}
}

// ParseProgress turns free text into done-today entries, one per comma or
// newline separated piece. No matching against goal names happens here.
func ParseProgress(text string) []models.ProgressEntry {
	today := FormatDate(time.Now())
	var entries []models.ProgressEntry
	for _, line := range SplitLines(text) {
		entries = append(entries, models.ProgressEntry{
			Task: line,
			Done: true,
			Date: today,
		})
	}
	return entries
}

// ParseNumbers parses a list like "1, 2, 5" into positive integers.
func ParseNumbers(text string) ([]int, error) {
	var numbers []int
	for _, piece := range numberSplitRe.Split(strings.TrimSpace(text), -1) {
		if piece == "" {
			continue
		}
		n, err := strconv.Atoi(piece)
		if err != nil || n < 1 {
			return nil, errors.New("invalid number: " + piece)
		}
		numbers = append(numbers, n)
	}
	if len(numbers) == 0 {
		return nil, ErrNoNumbers
	}
	return numbers, nil
}
