package valueobjects

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Emm4L92/DreamsConnect/domain/config"
	pkgerrors "github.com/Emm4L92/DreamsConnect/pkg/errors"
)

// DreamContent is a value object for the narrative of a dream
type DreamContent struct {
	title string
	body  string
}

// NewDreamContent creates content with validation using default configuration
func NewDreamContent(title, body string) (DreamContent, error) {
	return NewDreamContentWithConfig(title, body, config.DefaultDomainConfig())
}

// NewDreamContentWithConfig creates content with validation and configuration
func NewDreamContentWithConfig(title, body string, cfg *config.DomainConfig) (DreamContent, error) {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}

	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)

	if title == "" {
		return DreamContent{}, pkgerrors.NewValidationError("title cannot be empty")
	}
	if body == "" {
		return DreamContent{}, pkgerrors.NewValidationError("content cannot be empty")
	}

	titleLength := utf8.RuneCountInString(title)
	if titleLength < cfg.MinTitleLength {
		return DreamContent{}, fmt.Errorf("title too short: minimum %d characters required", cfg.MinTitleLength)
	}

	if titleLength > cfg.MaxTitleLength {
		return DreamContent{}, fmt.Errorf("title exceeds maximum length of %d characters", cfg.MaxTitleLength)
	}

	if utf8.RuneCountInString(body) > cfg.MaxContentLength {
		return DreamContent{}, fmt.Errorf("content body exceeds maximum length of %d characters", cfg.MaxContentLength)
	}

	return DreamContent{
		title: title,
		body:  body,
	}, nil
}

// Title returns the content title
func (c DreamContent) Title() string {
	return c.title
}

// Body returns the content body
func (c DreamContent) Body() string {
	return c.body
}

// IsEmpty checks if content is empty
func (c DreamContent) IsEmpty() bool {
	return c.title == "" && c.body == ""
}

// Equals checks if two contents are equal
func (c DreamContent) Equals(other DreamContent) bool {
	return c.title == other.title && c.body == other.body
}

// Combined returns title and body joined for text analysis
func (c DreamContent) Combined() string {
	return c.title + " " + c.body
}

// WordCount returns the approximate word count
func (c DreamContent) WordCount() int {
	return len(strings.Fields(c.Combined()))
}

// Summary returns a truncated summary of the content
func (c DreamContent) Summary(maxLength int) string {
	if maxLength <= 0 {
		return ""
	}

	combined := c.title
	if c.body != "" {
		combined += ": " + c.body
	}

	if utf8.RuneCountInString(combined) <= maxLength {
		return combined
	}

	runes := []rune(combined)
	return string(runes[:maxLength-3]) + "..."
}
