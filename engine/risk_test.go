package engine_test

import (
	"testing"

	"soberpath/recovery-api/engine"
	"soberpath/recovery-api/types"
)

func TestRiskScoreBounds(t *testing.T) {
	if got := engine.RiskScore(engine.RiskFactors{}); got != 0 {
		t.Errorf("RiskScore of zero factors = %d, want 0", got)
	}

	all := engine.RiskFactors{
		MoodDecline:     1,
		TriggerExposure: 1,
		Isolation:       1,
		Stress:          1,
		SleepDisruption: 1,
		MissedCheckIns:  1,
	}
	if got := engine.RiskScore(all); got != 100 {
		t.Errorf("RiskScore of maxed factors = %d, want 100", got)
	}
}

func TestRiskScoreWeights(t *testing.T) {
	// mood decline alone carries 30 of the 100 points
	factors := engine.RiskFactors{MoodDecline: 1}
	if got := engine.RiskScore(factors); got != 30 {
		t.Errorf("RiskScore with full mood decline = %d, want 30", got)
	}

	factors = engine.RiskFactors{TriggerExposure: 0.8}
	if got := engine.RiskScore(factors); got != 20 {
		t.Errorf("RiskScore with 0.8 trigger exposure = %d, want 20", got)
	}
}

func TestRiskLevelThresholds(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{0, types.RiskLevelLow},
		{29, types.RiskLevelLow},
		{30, types.RiskLevelModerate},
		{49, types.RiskLevelModerate},
		{50, types.RiskLevelHigh},
		{69, types.RiskLevelHigh},
		{70, types.RiskLevelCritical},
		{100, types.RiskLevelCritical},
	}

	for _, tc := range cases {
		if got := engine.RiskLevelForScore(tc.score); got != tc.want {
			t.Errorf("RiskLevelForScore(%d) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestPrimaryFactorsNeverEmpty(t *testing.T) {
	subtle := engine.RiskFactors{
		MoodDecline:     0.3,
		TriggerExposure: 0.3,
		Isolation:       0.3,
		Stress:          0.3,
		SleepDisruption: 0.3,
		MissedCheckIns:  0.3,
	}

	got := engine.PrimaryFactors(subtle)
	if len(got) != 1 || got[0] != "Multiple subtle factors" {
		t.Errorf("PrimaryFactors for subtle inputs = %v, want [Multiple subtle factors]", got)
	}
}

func TestPrimaryFactorsLabels(t *testing.T) {
	factors := engine.RiskFactors{
		MoodDecline: 0.8,
		Isolation:   0.6,
		Stress:      0.5, // at the threshold, not above it
	}

	got := engine.PrimaryFactors(factors)
	if len(got) != 2 {
		t.Fatalf("PrimaryFactors = %v, want 2 labels", got)
	}
	if got[0] != "Mood changes" || got[1] != "Social isolation" {
		t.Errorf("PrimaryFactors = %v, want [Mood changes, Social isolation]", got)
	}
}
