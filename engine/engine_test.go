package engine_test

import (
	"strings"
	"testing"
	"time"

	"soberpath/recovery-api/engine"
	"soberpath/recovery-api/types"
)

func testEngine() *engine.Engine {
	return &engine.Engine{
		Picker: firstPicker{},
		Now:    func() time.Time { return testNow },
	}
}

func TestGenerateRecommendationsEmptyHistory(t *testing.T) {
	progress := types.UserProgress{
		UserID:    "user-1",
		StartDate: testNow.AddDate(0, 0, -20),
	}

	got := testEngine().GenerateRecommendations(progress, nil, nil, nil)
	if len(got) == 0 {
		t.Fatal("expected recommendations even with no history")
	}

	if _, ok := findRecommendation(got, types.RecommendationTypeGeneral); !ok {
		t.Errorf("expected at least one general recommendation, got %+v", got)
	}
}

func TestGenerateRecommendationsSortedByPriority(t *testing.T) {
	moods := []types.Mood{
		types.MoodBad, types.MoodTerrible, types.MoodBad, types.MoodOkay,
		types.MoodBad, types.MoodTerrible, types.MoodOkay, types.MoodBad,
	}
	checkIns := checkInsWithMoods(moods...)
	checkIns[0].Triggers = []string{"trigger-stress"}
	checkIns[1].Triggers = []string{"trigger-stress"}
	checkIns[2].Strategies = []string{"strategy-breathing"}

	progress := types.UserProgress{
		UserID:    "user-1",
		StartDate: testNow.AddDate(0, 0, -15),
		CheckIns:  checkIns,
	}
	triggers := []types.Trigger{{ID: "trigger-stress", Name: "Stress", Category: types.TriggerCategoryEmotional}}
	strategies := []types.CopingStrategy{
		{ID: "strategy-breathing", Name: "Deep breathing"},
		{ID: "strategy-walk", Name: "Take a walk"},
	}
	resources := []types.Resource{
		resource("res-cope", "coping"),
		resource("res-strat", "strategies"),
		resource("res-begin", "beginner"),
		resource("res-care", "self-care"),
		resource("res-stress", "stress"),
	}

	got := testEngine().GenerateRecommendations(progress, triggers, strategies, resources)
	if len(got) < 3 {
		t.Fatalf("expected a rich recommendation list, got %d", len(got))
	}

	for i := 0; i < len(got)-1; i++ {
		if got[i].Priority < got[i+1].Priority {
			t.Fatalf("list not sorted at %d: %d before %d", i, got[i].Priority, got[i+1].Priority)
		}
	}
}

func TestGenerateRecommendationsLowMoodScenario(t *testing.T) {
	// 10 check-ins over 10 days, 7 of them bad or terrible, no triggers
	// or notes: only the mood analyzer (and fallback) should speak up
	moods := []types.Mood{
		types.MoodBad, types.MoodTerrible, types.MoodBad, types.MoodOkay,
		types.MoodBad, types.MoodTerrible, types.MoodOkay, types.MoodBad,
		types.MoodOkay, types.MoodBad,
	}
	progress := types.UserProgress{
		UserID:    "user-1",
		StartDate: testNow.AddDate(0, 0, -10),
		CheckIns:  checkInsWithMoods(moods...),
	}

	got := testEngine().GenerateRecommendations(progress, nil, nil, nil)

	moodRec, ok := findRecommendation(got, types.RecommendationTypeMood)
	if !ok {
		t.Fatalf("expected a mood recommendation, got %+v", got)
	}
	if moodRec.Priority != 9 {
		t.Errorf("mood recommendation priority = %d, want 9", moodRec.Priority)
	}
	if !strings.Contains(moodRec.Reason, "lower moods") {
		t.Errorf("reason %q should mention lower moods", moodRec.Reason)
	}

	if _, ok := findRecommendation(got, types.RecommendationTypeTriggers); ok {
		t.Error("trigger analyzer should stay quiet with no triggers logged")
	}
	if _, ok := findRecommendation(got, types.RecommendationTypeStrategy); ok {
		t.Error("strategy analyzer should stay quiet with no strategy catalog")
	}
}

func TestGenerateRecommendationsEarlyStageScenario(t *testing.T) {
	// 15 days sober, 5 check-ins, a single beginner-tagged resource:
	// early-stage education must surface
	progress := types.UserProgress{
		UserID:    "user-1",
		StartDate: testNow.AddDate(0, 0, -15),
		CheckIns: checkInsWithMoods(
			types.MoodOkay, types.MoodOkay, types.MoodOkay,
			types.MoodOkay, types.MoodOkay,
		),
	}
	resources := []types.Resource{resource("res-begin", "beginner")}

	got := testEngine().GenerateRecommendations(progress, nil, nil, resources)
	if len(got) == 0 {
		t.Fatal("expected recommendations")
	}

	foundation := false
	for _, rec := range got {
		if strings.Contains(rec.Reason, "foundation") {
			foundation = true
		}
	}
	if !foundation {
		t.Errorf("expected early-stage language in %+v", got)
	}
}

func TestGenerateRecommendationsIncludesInterventionsWhenRisky(t *testing.T) {
	notes := "stressed and anxious, overwhelmed, feeling alone and lonely, isolated, tired with insomnia"
	checkIns := make([]types.CheckIn, 0, 7)
	for d := 0; d < 7; d++ {
		ci := checkInDaysAgo(d, types.MoodTerrible)
		ci.Notes = notes
		ci.Triggers = []string{"trigger-stress"}
		checkIns = append(checkIns, ci)
	}
	progress := types.UserProgress{
		UserID:    "user-1",
		StartDate: testNow.AddDate(0, 0, -30),
		CheckIns:  checkIns,
	}

	eng := testEngine()

	prediction := eng.PredictRelapseRisk(progress, nil)
	if prediction.RiskLevel != types.RiskLevelCritical {
		t.Fatalf("risk level = %q (score %d), want critical", prediction.RiskLevel, prediction.RiskScore)
	}
	if len(prediction.PrimaryFactors) == 0 {
		t.Fatal("primary factors must never be empty")
	}

	got := eng.GenerateRecommendations(progress, nil, nil, nil)
	if _, ok := findRecommendation(got, types.RecommendationTypeRelapsePrevention); !ok {
		t.Errorf("expected relapse-prevention entries in %+v", got)
	}
}

func TestPredictRelapseRiskScoreBounds(t *testing.T) {
	progress := types.UserProgress{
		UserID:    "user-1",
		StartDate: testNow.AddDate(0, 0, -5),
		CheckIns:  checkInsWithMoods(types.MoodOkay, types.MoodOkay, types.MoodOkay),
	}

	prediction := testEngine().PredictRelapseRisk(progress, nil)
	if prediction.RiskScore < 0 || prediction.RiskScore > 100 {
		t.Errorf("risk score %d out of bounds", prediction.RiskScore)
	}
	if prediction.RiskLevel != engine.RiskLevelForScore(prediction.RiskScore) {
		t.Errorf("risk level %q does not match score %d", prediction.RiskLevel, prediction.RiskScore)
	}
}

func TestResourcesByIDs(t *testing.T) {
	all := []types.Resource{
		resource("res-1", "coping"),
		resource("res-2", "sleep"),
		resource("res-3", "growth"),
	}

	got := engine.ResourcesByIDs([]string{"res-3", "res-ghost", "res-1"}, all)
	if len(got) != 2 {
		t.Fatalf("expected 2 resolved resources, got %d", len(got))
	}
	if got[0].ID != "res-3" || got[1].ID != "res-1" {
		t.Errorf("resolved order = [%s %s], want [res-3 res-1]", got[0].ID, got[1].ID)
	}
}
