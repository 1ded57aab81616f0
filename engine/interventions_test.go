package engine_test

import (
	"strings"
	"testing"

	"soberpath/recovery-api/engine"
	"soberpath/recovery-api/types"
)

func TestInterventionsBelowThreshold(t *testing.T) {
	factors := engine.RiskFactors{MoodDecline: 0.3, Stress: 0.39}

	if got := engine.Interventions(factors, nil, testNow); len(got) != 0 {
		t.Errorf("expected no interventions below the 0.4 threshold, got %d", len(got))
	}
}

func TestInterventionsActionFallback(t *testing.T) {
	factors := engine.RiskFactors{Stress: 0.8}

	got := engine.Interventions(factors, nil, testNow)
	if len(got) != 1 {
		t.Fatalf("expected exactly one fallback intervention, got %d", len(got))
	}

	rec := got[0]
	if rec.Type != types.RecommendationTypeRelapsePrevention {
		t.Errorf("intervention type = %q, want relapse-prevention", rec.Type)
	}
	if len(rec.ResourceIDs) != 0 {
		t.Errorf("fallback intervention has resource IDs: %v", rec.ResourceIDs)
	}
	if rec.Action == "" {
		t.Error("fallback intervention has no action")
	}
	if rec.Priority != 8 {
		t.Errorf("intervention priority = %d, want 8", rec.Priority)
	}
	if !strings.Contains(rec.Reason, "significant") {
		t.Errorf("reason %q should describe a significant signal", rec.Reason)
	}
}

func TestInterventionsResourceBacked(t *testing.T) {
	factors := engine.RiskFactors{Stress: 0.6}
	resources := []types.Resource{
		resource("res-breathe", "breathing"),
		resource("res-relax", "relaxation"),
		resource("res-more", "stress"),
	}

	got := engine.Interventions(factors, resources, testNow)
	if len(got) != 2 {
		t.Fatalf("expected 2 resource-backed interventions, got %d", len(got))
	}
	for _, rec := range got {
		if len(rec.ResourceIDs) != 1 {
			t.Errorf("intervention %s has %d resources, want 1", rec.ID, len(rec.ResourceIDs))
		}
		if rec.Action != "" {
			t.Errorf("resource-backed intervention %s should not carry an action", rec.ID)
		}
		if rec.Priority != 6 {
			t.Errorf("intervention priority = %d, want 6", rec.Priority)
		}
		if !strings.Contains(rec.Reason, "moderate") {
			t.Errorf("reason %q should describe a moderate signal", rec.Reason)
		}
	}
}

func TestInterventionsTopTwoFactorsOnly(t *testing.T) {
	// three factors qualify, only the top two produce interventions
	factors := engine.RiskFactors{
		MoodDecline: 0.9,
		Stress:      0.8,
		Isolation:   0.7,
	}

	got := engine.Interventions(factors, nil, testNow)
	if len(got) != 2 {
		t.Fatalf("expected interventions for the top 2 factors only, got %d", len(got))
	}
	if got[0].ID != "relapse-prevention-mood_decline" {
		t.Errorf("first intervention = %s, want relapse-prevention-mood_decline", got[0].ID)
	}
	if got[1].ID != "relapse-prevention-stress" {
		t.Errorf("second intervention = %s, want relapse-prevention-stress", got[1].ID)
	}
}
