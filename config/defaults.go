package config

import "soberpath/recovery-api/types"

// Default catalogs used when a workspace has no rows in the triggers or
// coping_strategies tables yet. Callers get a fresh slice each time so the
// defaults stay immutable.

func DefaultTriggers() []types.Trigger {
	return []types.Trigger{
		{ID: "trigger-stress", Name: "Stress", Category: types.TriggerCategoryEmotional, Description: "Work, family or financial pressure building up"},
		{ID: "trigger-loneliness", Name: "Loneliness", Category: types.TriggerCategoryEmotional, Description: "Feeling disconnected or isolated from others"},
		{ID: "trigger-social-pressure", Name: "Social pressure", Category: types.TriggerCategorySocial, Description: "Being around people who are using"},
		{ID: "trigger-celebrations", Name: "Celebrations", Category: types.TriggerCategorySocial, Description: "Parties, holidays and other events"},
		{ID: "trigger-old-places", Name: "Old places", Category: types.TriggerCategoryEnvironmental, Description: "Locations associated with past use"},
		{ID: "trigger-fatigue", Name: "Fatigue", Category: types.TriggerCategoryPhysical, Description: "Being run down or exhausted"},
		{ID: "trigger-boredom", Name: "Boredom", Category: types.TriggerCategoryMental, Description: "Unstructured time with nothing to do"},
		{ID: "trigger-cravings", Name: "Cravings", Category: types.TriggerCategoryPhysical, Description: "Sudden physical urges"},
	}
}

func DefaultStrategies() []types.CopingStrategy {
	return []types.CopingStrategy{
		{
			ID:          "strategy-breathing",
			Name:        "Deep breathing",
			Description: "Slow, counted breaths to settle the nervous system",
			Steps:       []string{"Breathe in for 4 counts", "Hold for 4 counts", "Breathe out for 6 counts", "Repeat for 2 minutes"},
			ForTriggers: []string{"trigger-stress", "trigger-cravings"},
		},
		{
			ID:          "strategy-call-someone",
			Name:        "Call someone",
			Description: "Reach out to a sponsor, friend or family member",
			ForTriggers: []string{"trigger-loneliness", "trigger-social-pressure"},
		},
		{
			ID:          "strategy-walk",
			Name:        "Take a walk",
			Description: "Leave the situation and move for at least ten minutes",
			ForTriggers: []string{"trigger-old-places", "trigger-cravings", "trigger-boredom"},
		},
		{
			ID:          "strategy-urge-surfing",
			Name:        "Urge surfing",
			Description: "Notice the craving, rate it, and watch it pass without acting",
			Steps:       []string{"Name the urge", "Rate it 1-10", "Set a 15 minute timer", "Rate it again when the timer ends"},
			ForTriggers: []string{"trigger-cravings"},
		},
		{
			ID:          "strategy-journaling",
			Name:        "Journaling",
			Description: "Write down what happened and how it felt",
			ForTriggers: []string{"trigger-stress", "trigger-loneliness"},
		},
		{
			ID:          "strategy-plan-exit",
			Name:        "Plan an exit",
			Description: "Decide in advance how to leave a risky situation",
			ForTriggers: []string{"trigger-celebrations", "trigger-social-pressure"},
		},
	}
}
