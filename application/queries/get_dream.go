package queries

import "errors"

// GetDreamQuery represents a query to get a single dream
type GetDreamQuery struct {
	DreamID string
}

// Validate validates the GetDreamQuery
func (q GetDreamQuery) Validate() error {
	if q.DreamID == "" {
		return errors.New("dream ID is required")
	}
	return nil
}

// DreamResult represents a dream in query responses
type DreamResult struct {
	ID        string   `json:"id"`
	AuthorID  string   `json:"authorId"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Language  string   `json:"language"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"createdAt"`
}
