package commands

import (
	"errors"
	"unicode/utf8"
)

// CreateDreamCommand represents the command to post a new dream narrative.
// Tags are never supplied by the caller; they are generated server-side
// from the narrative text.
type CreateDreamCommand struct {
	AuthorID string `json:"author_id" validate:"required"`
	Title    string `json:"title" validate:"required,min=1,max=200"`
	Content  string `json:"content" validate:"required,max=20000"`
	Language string `json:"language"`
}

// Validate validates the command
func (cmd CreateDreamCommand) Validate() error {
	if cmd.AuthorID == "" {
		return errors.New("author ID is required")
	}
	if cmd.Title == "" {
		return errors.New("title is required")
	}
	if utf8.RuneCountInString(cmd.Title) > MaxTitleLength {
		return errors.New("title exceeds maximum length")
	}
	if cmd.Content == "" {
		return errors.New("content is required")
	}
	if utf8.RuneCountInString(cmd.Content) > MaxContentLength {
		return errors.New("content exceeds maximum length")
	}
	return nil
}

const (
	MaxTitleLength   = 200
	MaxContentLength = 20000
)
