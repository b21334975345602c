package models

// Goal frequencies.
const (
	FrequencyDaily  = "daily"
	FrequencyWeekly = "weekly"
)

// TodoItem types.
const (
	TodoTypeGoal   = "goal"
	TodoTypeDay    = "day"
	TodoTypeDate   = "date"
	TodoTypeManual = "manual"
)

// ProgressEntry is one dated completion record in a goal's log.
// The log is append-only; at most one done entry per goal per date.
type ProgressEntry struct {
	Task string `json:"task" bson:"task"`
	Done bool   `json:"done" bson:"done"`
	Date string `json:"date" bson:"date"` // YYYY-MM-DD
}

// Goal is a recurring goal with a target count per period. A goal has no
// stable id; it is referenced by its 1-based position in the user's list.
type Goal struct {
	Task      string          `json:"task" bson:"task"`
	Frequency string          `json:"frequency" bson:"frequency"` // daily, weekly
	Count     int             `json:"count" bson:"count"`
	Progress  []ProgressEntry `json:"progress" bson:"progress"`
}

// ManualTask is a one-off task stored under a single date key.
type ManualTask struct {
	Task      string `json:"task" bson:"task"`
	GoalID    string `json:"goalId" bson:"goalId"`
	Completed bool   `json:"completed" bson:"completed"`
	Type      string `json:"type" bson:"type"` // always "manual"
}

// UserRecord is the full per-user document and the unit of persistence.
// Map keys for Todos and DateTasks are YYYY-MM-DD date keys; DayTasks is
// keyed by lowercase English weekday name.
type UserRecord struct {
	Goals     []Goal                  `json:"goals" bson:"goals"`
	Todos     map[string][]ManualTask `json:"todos" bson:"todos"`
	DayTasks  map[string][]string     `json:"dayTasks" bson:"dayTasks"`
	DateTasks map[string][]string     `json:"dateTasks" bson:"dateTasks"`
	Stats     map[string]interface{}  `json:"stats" bson:"stats"` // reserved, must round-trip
}

// NewUserRecord returns an empty record with all buckets initialized.
func NewUserRecord() *UserRecord {
	return &UserRecord{
		Goals:     []Goal{},
		Todos:     map[string][]ManualTask{},
		DayTasks:  map[string][]string{},
		DateTasks: map[string][]string{},
		Stats:     map[string]interface{}{},
	}
}

// Normalize backfills buckets that are nil after decoding a record written
// by an older revision of the bot.
func (r *UserRecord) Normalize() {
	if r.Goals == nil {
		r.Goals = []Goal{}
	}
	if r.Todos == nil {
		r.Todos = map[string][]ManualTask{}
	}
	if r.DayTasks == nil {
		r.DayTasks = map[string][]string{}
	}
	if r.DateTasks == nil {
		r.DateTasks = map[string][]string{}
	}
	if r.Stats == nil {
		r.Stats = map[string]interface{}{}
	}
}

// TodoItem is the derived per-date view of one due item. It is computed
// fresh per request and never persisted. WeeklyProgress is set only for
// weekly goals.
type TodoItem struct {
	Task           string `json:"task"`
	GoalID         string `json:"goalId"`
	Completed      bool   `json:"completed"`
	Type           string `json:"type"`
	WeeklyProgress *int   `json:"weeklyProgress,omitempty"`
}

// GoalProgressReport is the weekly progress view of one weekly goal.
// Percentage is deliberately not clamped to 100.
type GoalProgressReport struct {
	Task           string `json:"task"`
	Frequency      string `json:"frequency"`
	Count          int    `json:"count"`
	WeeklyProgress int    `json:"weeklyProgress"`
	TotalProgress  int    `json:"totalProgress"`
	Percentage     int    `json:"percentage"`
}
