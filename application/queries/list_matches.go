package queries

import "errors"

// ListMatchesQuery represents a query to list match edges. Exactly one of
// DreamID or AuthorID must be set: the former lists matches for a single
// dream, the latter for every dream the user posted.
type ListMatchesQuery struct {
	DreamID  string
	AuthorID string
}

// Validate validates the ListMatchesQuery
func (q ListMatchesQuery) Validate() error {
	if q.DreamID == "" && q.AuthorID == "" {
		return errors.New("dream ID or author ID is required")
	}
	if q.DreamID != "" && q.AuthorID != "" {
		return errors.New("dream ID and author ID are mutually exclusive")
	}
	return nil
}

// MatchResult represents a match edge enriched with the matched dream
type MatchResult struct {
	DreamID        string       `json:"dreamId"`
	MatchedDreamID string       `json:"matchedDreamId"`
	Score          int          `json:"score"`
	CreatedAt      string       `json:"createdAt"`
	MatchedDream   *DreamResult `json:"matchedDream,omitempty"`
}

// ListMatchesResult represents the full match list
type ListMatchesResult struct {
	Matches []MatchResult `json:"matches"`
	Total   int           `json:"total"`
}
