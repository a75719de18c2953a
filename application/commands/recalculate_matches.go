package commands

import "errors"

// RecalculateMatchesCommand represents the administrative command to wipe
// and rebuild the entire match graph. O(N²) in dream count, so this is an
// explicit maintenance operation, never triggered implicitly.
type RecalculateMatchesCommand struct {
	RequestedBy string `json:"requested_by" validate:"required"`
}

// Validate validates the command
func (cmd RecalculateMatchesCommand) Validate() error {
	if cmd.RequestedBy == "" {
		return errors.New("requesting user ID is required")
	}
	return nil
}

// RecalculateMatchesResult reports what the rebuild did
type RecalculateMatchesResult struct {
	DreamsProcessed int `json:"dreams_processed"`
	MatchesCreated  int `json:"matches_created"`
}
