package commands

import "errors"

// DeleteDreamCommand represents the command to delete a dream and every
// match edge touching it
type DeleteDreamCommand struct {
	DreamID string `json:"dream_id" validate:"required,uuid"`
	UserID  string `json:"user_id" validate:"required"`
}

// Validate validates the command
func (cmd DeleteDreamCommand) Validate() error {
	if cmd.DreamID == "" {
		return errors.New("dream ID is required")
	}
	if cmd.UserID == "" {
		return errors.New("user ID is required")
	}
	return nil
}
