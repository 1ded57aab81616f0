package types

// Trigger categories
const (
	TriggerCategoryEmotional     = "emotional"
	TriggerCategorySocial        = "social"
	TriggerCategoryEnvironmental = "environmental"
	TriggerCategoryPhysical      = "physical"
	TriggerCategoryMental        = "mental"
)

// Trigger is static reference data, looked up by ID from check-ins.
type Trigger struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
}

// CopingStrategy is static reference data describing a named technique
// for managing triggers.
type CopingStrategy struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Steps       []string `json:"steps,omitempty"`
	ForTriggers []string `json:"for_triggers,omitempty"` // trigger IDs it addresses
}

// Resource types
const (
	ResourceTypeArticle  = "article"
	ResourceTypeVideo    = "video"
	ResourceTypeAudio    = "audio"
	ResourceTypeExercise = "exercise"
)

// Resource is a content-catalog entry. Tags are the join key between the
// analyzers and the content library.
type Resource struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Type        string   `json:"type"` // article|video|audio|exercise
	URL         string   `json:"url"`
	ImageURL    string   `json:"image_url,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Duration    string   `json:"duration,omitempty"` // display string, e.g. "10 min"
}

type GetResourcesResponse struct {
	Success      bool       `json:"success"`
	Resources    []Resource `json:"resources,omitempty"`
	Total        int        `json:"total,omitempty"`
	ErrorMessage string     `json:"error,omitempty"`
}
