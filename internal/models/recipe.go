package models

import (
	"encoding/json"
	"time"
)

// Recipe is a catalog entry. CreatedBy is fixed at creation; UpdatedAt is
// refreshed on every successful mutation.
type Recipe struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Ingredients  []string  `json:"ingredients"`
	Instructions string    `json:"instructions"`
	CreatedBy    int       `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// StringList decodes either a JSON array of strings or a single bare
// string, which becomes a one-element list. Clients frequently send
// `"ingredients": "salt"` instead of `["salt"]`.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*l = many
		return nil
	}
	var one string
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*l = []string{one}
	return nil
}
