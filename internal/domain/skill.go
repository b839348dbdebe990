package domain

import "time"

// Points awarded for daily skill completion. Streak bonuses are granted the
// day the streak reaches the milestone length.
const (
	SkillCompletionPoints = 5
	StreakBonusWeek       = 20
	StreakBonusMonth      = 100

	streakWeek  = 7
	streakMonth = 30
)

// Skill is a daily habit the user tracks ("Jedi skill").
type Skill struct {
	ID        string
	UserID    string
	Name      string
	Icon      string
	CreatedAt time.Time
}

// Validate checks the Skill contract.
func (s *Skill) Validate() error {
	if s.Name == "" {
		return NewValidationError("name", "name is required")
	}
	return nil
}

// dateKey truncates a timestamp to its calendar day in UTC.
func dateKey(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CurrentStreak counts consecutive completed days ending today or yesterday
// relative to now. A streak broken yesterday still counts until today's
// completion is missed, matching habit-ring semantics.
func CurrentStreak(completions []time.Time, now time.Time) int {
	if len(completions) == 0 {
		return 0
	}
	done := make(map[time.Time]bool, len(completions))
	for _, c := range completions {
		done[dateKey(c)] = true
	}

	day := dateKey(now)
	if !done[day] {
		day = day.AddDate(0, 0, -1)
		if !done[day] {
			return 0
		}
	}

	streak := 0
	for done[day] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// LongestStreak returns the longest run of consecutive completion days.
func LongestStreak(completions []time.Time) int {
	if len(completions) == 0 {
		return 0
	}
	done := make(map[time.Time]bool, len(completions))
	for _, c := range completions {
		done[dateKey(c)] = true
	}

	longest := 0
	for day := range done {
		// Only count from the start of a run.
		if done[day.AddDate(0, 0, -1)] {
			continue
		}
		length := 0
		for d := day; done[d]; d = d.AddDate(0, 0, 1) {
			length++
		}
		if length > longest {
			longest = length
		}
	}
	return longest
}

// CompletionPoints returns the points a completion is worth given the streak
// length it produces.
func CompletionPoints(streakAfter int) int {
	points := SkillCompletionPoints
	switch streakAfter {
	case streakWeek:
		points += StreakBonusWeek
	case streakMonth:
		points += StreakBonusMonth
	}
	return points
}
