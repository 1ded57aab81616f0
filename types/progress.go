package types

import "time"

type Milestone struct {
	ID         string     `json:"id"`
	Days       int        `json:"days"`
	Title      string     `json:"title"`
	Achieved   bool       `json:"achieved"`
	AchievedAt *time.Time `json:"achieved_at,omitempty"`
}

// UserProgress is the aggregate root for a user's recovery state.
// StartDate anchors every day-count computation; the streak and day
// totals are derived and recomputed on each read rather than trusted
// from storage.
type UserProgress struct {
	UserID         string      `json:"user_id"`
	StartDate      time.Time   `json:"start_date"`
	CurrentStreak  int         `json:"current_streak"`
	LongestStreak  int         `json:"longest_streak"`
	TotalDaysSober int         `json:"total_days_sober"`
	Relapses       int         `json:"relapses"`
	Milestones     []Milestone `json:"milestones,omitempty"`
	CheckIns       []CheckIn   `json:"check_ins,omitempty"`
}

// DaysSober returns whole days elapsed since StartDate.
func (p UserProgress) DaysSober(now time.Time) int {
	if p.StartDate.IsZero() || now.Before(p.StartDate) {
		return 0
	}
	return int(now.Sub(p.StartDate).Hours() / 24)
}

// Recalculate re-derives CurrentStreak and TotalDaysSober from StartDate.
// Stored values are never authoritative.
func (p *UserProgress) Recalculate(now time.Time) {
	days := p.DaysSober(now)
	p.CurrentStreak = days
	p.TotalDaysSober = days
	if days > p.LongestStreak {
		p.LongestStreak = days
	}
}

type ProgressResponse struct {
	Success      bool         `json:"success"`
	Progress     UserProgress `json:"progress,omitempty"`
	ErrorMessage string       `json:"error,omitempty"`
}
