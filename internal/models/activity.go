package models

import "time"

// Activity event types recorded by the recipe catalog.
const (
	ActivityRecipeCreated = "RECIPE_CREATED"
	ActivityRecipeUpdated = "RECIPE_UPDATED"
	ActivityRecipeDeleted = "RECIPE_DELETED"
)

// ActivityEvent is a single catalog log entry.
type ActivityEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Metadata    any       `json:"metadata,omitempty"`
}
