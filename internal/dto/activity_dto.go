package dto

import "time"

// ActivityListRequest defines filters for querying the audit trail.
type ActivityListRequest struct {
	Page      int
	PageSize  int
	Category  string
	User      string
	Search    string
	StartDate *time.Time
	EndDate   *time.Time
}

// ActivityResponse serialises one audit record. Time is a human-relative
// label ("3 hours ago") computed at read time, never stored.
type ActivityResponse struct {
	ID           uint                   `json:"id"`
	Action       string                 `json:"action"`
	Item         string                 `json:"item"`
	Details      string                 `json:"details"`
	Category     string                 `json:"category"`
	User         string                 `json:"user"`
	Icon         string                 `json:"icon"`
	RelatedID    *uint                  `json:"related_id,omitempty"`
	RelatedModel string                 `json:"related_model,omitempty"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
	Time         string                 `json:"time"`
	CreatedAt    time.Time              `json:"created_at"`
}

// ActivityFacets lists the distinct filter values present across visible records.
type ActivityFacets struct {
	Categories []string `json:"categories"`
	Users      []string `json:"users"`
}

// ActivityListResponse wraps a paginated activity query result.
type ActivityListResponse struct {
	Items      []ActivityResponse `json:"items"`
	Pagination PaginationMeta     `json:"pagination"`
	Facets     ActivityFacets     `json:"facets"`
}
