package types

import "time"

// Mood is the 5-point ordinal scale used on every check-in.
type Mood string

const (
	MoodTerrible Mood = "terrible"
	MoodBad      Mood = "bad"
	MoodOkay     Mood = "okay"
	MoodGood     Mood = "good"
	MoodGreat    Mood = "great"
)

func (m Mood) Valid() bool {
	switch m {
	case MoodTerrible, MoodBad, MoodOkay, MoodGood, MoodGreat:
		return true
	}
	return false
}

type Activity struct {
	Type            string `json:"type"`
	DurationMinutes int    `json:"duration_minutes"`
	Notes           string `json:"notes,omitempty"`
}

// CheckIn is one self-reported daily record. Mood is the only required
// field; everything else may be absent. Check-ins are immutable once
// written and are read-only input to the scoring engine.
type CheckIn struct {
	ID            string     `json:"id,omitempty"`
	UserID        string     `json:"user_id"`
	Date          time.Time  `json:"date"`
	Mood          Mood       `json:"mood"`
	SleepQuality  string     `json:"sleep_quality,omitempty"` // terrible..great
	EnergyLevel   string     `json:"energy_level,omitempty"`  // low|medium|high|very_high
	Activities    []Activity `json:"activities,omitempty"`
	Triggers      []string   `json:"triggers,omitempty"`   // trigger IDs experienced that day
	Notes         string     `json:"notes,omitempty"`      // free text, scanned for keywords
	Strategies    []string   `json:"strategies,omitempty"` // coping strategy IDs used that day
	FeelingBetter bool       `json:"feeling_better"`
	CreatedAt     time.Time  `json:"created_at,omitempty"`
}

type CheckInResponse struct {
	Success      bool    `json:"success"`
	CheckIn      CheckIn `json:"check_in,omitempty"`
	ErrorMessage string  `json:"error,omitempty"`
}

type GetCheckInsResponse struct {
	Success      bool      `json:"success"`
	CheckIns     []CheckIn `json:"check_ins,omitempty"`
	Total        int       `json:"total,omitempty"`
	Limit        int       `json:"limit,omitempty"`
	Offset       int       `json:"offset,omitempty"`
	ErrorMessage string    `json:"error,omitempty"`
}
