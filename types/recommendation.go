package types

import "time"

// Recommendation types
const (
	RecommendationTypeMood              = "mood"
	RecommendationTypeTriggers          = "triggers"
	RecommendationTypeStrategy          = "strategy"
	RecommendationTypeGeneral           = "general"
	RecommendationTypeEducation         = "education"
	RecommendationTypeRelapsePrevention = "relapse-prevention"
)

// Recommendation is the engine's primary output. IDs are stable per rule
// so repeated runs produce the same ID for the same finding; results are
// recomputed fresh on every call and never persisted by the engine.
type Recommendation struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	ResourceIDs []string  `json:"resource_ids,omitempty"`
	Reason      string    `json:"reason"`
	Action      string    `json:"action,omitempty"` // suggested behavior when no resource matches
	Priority    int       `json:"priority"`         // 1-10, higher = more urgent
	CreatedAt   time.Time `json:"created_at"`
}

// Risk levels, ordinal.
const (
	RiskLevelLow      = "low"
	RiskLevelModerate = "moderate"
	RiskLevelHigh     = "high"
	RiskLevelCritical = "critical"
)

type PredictionResult struct {
	RiskLevel       string           `json:"risk_level"`
	RiskScore       int              `json:"risk_score"` // 0-100
	PrimaryFactors  []string         `json:"primary_factors"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
}

type GetRecommendationsResponse struct {
	Success         bool             `json:"success"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
	Total           int              `json:"total,omitempty"`
	ErrorMessage    string           `json:"error,omitempty"`
}

type PredictionResponse struct {
	Success      bool             `json:"success"`
	Prediction   PredictionResult `json:"prediction,omitempty"`
	ErrorMessage string           `json:"error,omitempty"`
}

type ErrorResponse struct {
	Success      bool   `json:"success"`
	ErrorMessage string `json:"error,omitempty"`
}
