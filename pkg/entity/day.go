package entity

import "time"

const dayLayout = "2006-01-02"

// Day is a calendar date in the user's zone, formatted as YYYY-MM-DD.
type Day string

func DayOf(t time.Time) Day {
	return Day(t.Format(dayLayout))
}

func ParseDay(s string) (Day, error) {
	if _, err := time.Parse(dayLayout, s); err != nil {
		return "", err
	}
	return Day(s), nil
}

func (d Day) String() string {
	return string(d)
}

type AssignmentState int

const (
	// No dares were ever assigned
	Unassigned AssignmentState = iota
	// Dares are assigned and belong to the current day
	AssignedToday
	// Dares belong to some previous day
	Stale
)

func (s AssignmentState) String() string {
	switch s {
	case Unassigned:
		return "unassigned"
	case AssignedToday:
		return "assigned_today"
	case Stale:
		return "stale"
	}
	return "unknown"
}

// NeedsAssignment is true for every state except AssignedToday.
func (s AssignmentState) NeedsAssignment() bool {
	return s != AssignedToday
}
