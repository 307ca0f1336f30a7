package models

// Recipe belongs to exactly one user; UserID is set at creation and never
// changes. Owner is a read-side convenience populated by list queries.
type Recipe struct {
	ID                int      `json:"id"`
	Title             string   `json:"title"`
	Instructions      string   `json:"instructions"` // at least 50 characters
	MinutesToComplete int      `json:"minutes_to_complete"`
	UserID            int      `json:"user_id"`
	Owner             *UserRef `json:"user,omitempty"`
}
