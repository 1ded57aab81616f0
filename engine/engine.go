// Package engine is the recommendation and relapse-risk scoring core: a
// deterministic, rule-based pipeline over a user's check-in history and
// the static trigger, strategy and resource catalogs. Everything here is
// a pure function of its inputs — no I/O, no shared state, recomputed
// from scratch on every call.
package engine

import (
	"sort"
	"time"

	"soberpath/recovery-api/types"
)

// Engine bundles the injectable seams (clock, random source) around the
// otherwise pure pipeline.
type Engine struct {
	Picker Picker
	Now    func() time.Time
}

func New() *Engine {
	return &Engine{
		Picker: defaultPicker(),
		Now:    time.Now,
	}
}

// GenerateRecommendations runs every analyzer over the user's history,
// folds in relapse-prevention interventions when the risk level warrants
// them, tops up with the general fallback when results are sparse, and
// returns the merged list sorted by priority, highest first.
//
// The same resource may appear in more than one recommendation — a
// resource can be relevant to several rules, and consolidated display is
// the caller's concern.
func (e *Engine) GenerateRecommendations(progress types.UserProgress, triggers []types.Trigger, strategies []types.CopingStrategy, resources []types.Resource) []types.Recommendation {
	now := e.now()
	checkIns := progress.CheckIns

	var recs []types.Recommendation
	recs = append(recs, AnalyzeMoodPatterns(checkIns, resources, now)...)
	recs = append(recs, AnalyzeFrequentTriggers(checkIns, triggers, resources, now)...)
	recs = append(recs, SuggestUnusedStrategy(checkIns, strategies, resources, e.Picker, now)...)
	recs = append(recs, StageRecommendations(progress, resources, now)...)

	if len(checkIns) >= 3 {
		prediction := e.PredictRelapseRisk(progress, resources)
		if prediction.RiskLevel != types.RiskLevelLow {
			recs = append(recs, prediction.Recommendations...)
		}
	}

	if len(checkIns) < 5 || len(recs) < 2 {
		recs = append(recs, GeneralRecommendations(progress, resources, now)...)
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Priority > recs[j].Priority
	})
	return recs
}

// PredictRelapseRisk scores the six risk factors over the user's history
// and returns the aggregate score, level, dominant factors, and matching
// interventions. Callable independently of the full recommendation flow.
func (e *Engine) PredictRelapseRisk(progress types.UserProgress, resources []types.Resource) types.PredictionResult {
	now := e.now()

	// streak and day totals are derived; never trust stored values
	progress.Recalculate(now)

	factors := ExtractRiskFactors(progress.CheckIns, now)
	score := RiskScore(factors)

	return types.PredictionResult{
		RiskLevel:       RiskLevelForScore(score),
		RiskScore:       score,
		PrimaryFactors:  PrimaryFactors(factors),
		Recommendations: Interventions(factors, resources, now),
	}
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}
