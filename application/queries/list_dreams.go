package queries

import "errors"

// ListDreamsQuery represents a query to list dreams with optional filters
type ListDreamsQuery struct {
	AuthorID string
	Language string
	Tag      string
	Search   string
	Limit    int
	Offset   int
}

// DefaultListLimit bounds unpaginated listing requests
const DefaultListLimit = 50

// MaxListLimit is the hard ceiling for a single page
const MaxListLimit = 200

// Validate validates the ListDreamsQuery
func (q ListDreamsQuery) Validate() error {
	if q.Limit < 0 {
		return errors.New("limit cannot be negative")
	}
	if q.Limit > MaxListLimit {
		return errors.New("limit exceeds maximum page size")
	}
	if q.Offset < 0 {
		return errors.New("offset cannot be negative")
	}
	return nil
}

// ListDreamsResult represents a page of dreams
type ListDreamsResult struct {
	Dreams []DreamResult `json:"dreams"`
	Total  int           `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}
