package validators

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Emm4L92/DreamsConnect/domain/config"
	"github.com/Emm4L92/DreamsConnect/domain/core/valueobjects"
	"github.com/Emm4L92/DreamsConnect/pkg/errors"
)

// DreamValidator validates dream-related domain rules
type DreamValidator struct {
	titleMinLength   int
	titleMaxLength   int
	contentMaxLength int
	tagMinLength     int
	tagMaxLength     int
	tagMaxWords      int
	maxTags          int
}

// NewDreamValidator creates a validator from domain configuration
func NewDreamValidator(cfg *config.DomainConfig) *DreamValidator {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	return &DreamValidator{
		titleMinLength:   cfg.MinTitleLength,
		titleMaxLength:   cfg.MaxTitleLength,
		contentMaxLength: cfg.MaxContentLength,
		tagMinLength:     cfg.MinTagLength,
		tagMaxLength:     cfg.MaxTagLength,
		tagMaxWords:      cfg.MaxTagWords,
		maxTags:          cfg.MaxTagsPerDream,
	}
}

// ValidateDreamContent validates the content value object
func (v *DreamValidator) ValidateDreamContent(content *valueobjects.DreamContent) error {
	validationErrors := errors.NewValidationErrors()

	if err := v.validateTitle(content.Title()); err != nil {
		if domainErr, ok := err.(*errors.DomainError); ok {
			validationErrors.AddError(domainErr)
		} else {
			validationErrors.Add("title", err.Error())
		}
	}

	if err := v.validateBody(content.Body()); err != nil {
		if domainErr, ok := err.(*errors.DomainError); ok {
			validationErrors.AddError(domainErr)
		} else {
			validationErrors.Add("body", err.Error())
		}
	}

	if validationErrors.HasErrors() {
		return validationErrors
	}
	return nil
}

func (v *DreamValidator) validateTitle(title string) error {
	title = strings.TrimSpace(title)

	if utf8.RuneCountInString(title) < v.titleMinLength {
		return errors.ErrDreamTitleRequired
	}

	if utf8.RuneCountInString(title) > v.titleMaxLength {
		return errors.NewDomainError(
			errors.DomainValidationError,
			"DREAM_TITLE_TOO_LONG",
			"Dream title exceeds maximum length",
		).WithDetail("actual_length", utf8.RuneCountInString(title)).
			WithDetail("max_length", v.titleMaxLength)
	}

	return nil
}

func (v *DreamValidator) validateBody(body string) error {
	if strings.TrimSpace(body) == "" {
		return errors.ErrDreamContentRequired
	}

	if utf8.RuneCountInString(body) > v.contentMaxLength {
		return errors.ErrDreamContentTooLong.
			WithDetail("actual_length", utf8.RuneCountInString(body)).
			WithDetail("max_length", v.contentMaxLength)
	}

	// Reject embedded script content before it reaches storage
	if strings.Contains(body, "<script>") || strings.Contains(body, "javascript:") {
		return errors.NewDomainError(
			errors.DomainValidationError,
			"MALICIOUS_CONTENT",
			"Content contains potentially malicious code",
		).WithDetail("field", "content")
	}

	return nil
}

// ValidateTags validates a generated tag list against the tag shape rules
func (v *DreamValidator) ValidateTags(tags []string) error {
	if len(tags) == 0 {
		return errors.NewDomainError(
			errors.DomainValidationError,
			"EMPTY_TAG_LIST",
			"Dream must carry at least one tag",
		).WithDetail("field", "tags")
	}

	if len(tags) > v.maxTags {
		return errors.NewDomainError(
			errors.DomainValidationError,
			"TOO_MANY_TAGS",
			fmt.Sprintf("Cannot have more than %d tags", v.maxTags),
		).WithDetail("field", "tags").WithDetail("count", len(tags))
	}

	for _, tag := range tags {
		if err := v.validateTag(tag); err != nil {
			return err
		}
	}

	return nil
}

var validTagPattern = regexp.MustCompile(`^[\p{L}\p{N}' -]+$`)

func (v *DreamValidator) validateTag(tag string) error {
	tag = strings.TrimSpace(tag)

	length := utf8.RuneCountInString(tag)
	if length < v.tagMinLength {
		return errors.NewDomainError(
			errors.DomainValidationError,
			"TAG_TOO_SHORT",
			fmt.Sprintf("Tag must be at least %d characters", v.tagMinLength),
		).WithDetail("field", "tags").WithDetail("tag", tag)
	}

	if length > v.tagMaxLength {
		return errors.NewDomainError(
			errors.DomainValidationError,
			"TAG_TOO_LONG",
			fmt.Sprintf("Tag exceeds maximum length of %d characters", v.tagMaxLength),
		).WithDetail("field", "tags").WithDetail("tag", tag)
	}

	if len(strings.Fields(tag)) > v.tagMaxWords {
		return errors.NewDomainError(
			errors.DomainValidationError,
			"TAG_TOO_MANY_WORDS",
			fmt.Sprintf("Tag cannot exceed %d words", v.tagMaxWords),
		).WithDetail("field", "tags").WithDetail("tag", tag)
	}

	if tag != strings.ToLower(tag) {
		return errors.NewDomainError(
			errors.DomainValidationError,
			"TAG_NOT_LOWERCASE",
			"Tags must be lower-case",
		).WithDetail("field", "tags").WithDetail("tag", tag)
	}

	if !validTagPattern.MatchString(tag) {
		return errors.NewDomainError(
			errors.DomainValidationError,
			"INVALID_TAG_FORMAT",
			"Tag contains invalid characters",
		).WithDetail("field", "tags").WithDetail("tag", tag)
	}

	return nil
}

// MatchValidator validates match-related domain rules
type MatchValidator struct{}

// NewMatchValidator creates a new match validator
func NewMatchValidator() *MatchValidator {
	return &MatchValidator{}
}

// ValidateMatch validates a match edge creation between two dreams
func (v *MatchValidator) ValidateMatch(dreamID, matchedDreamID, authorID, matchedAuthorID string) error {
	if dreamID == matchedDreamID {
		return errors.NewDomainError(
			errors.DomainBusinessRuleError,
			"SELF_REFERENTIAL_MATCH",
			"Cannot match a dream with itself",
		).WithDetail("dream_id", dreamID)
	}

	if authorID == matchedAuthorID {
		return errors.ErrSelfMatch.
			WithDetail("dream_id", dreamID).
			WithDetail("matched_dream_id", matchedDreamID)
	}

	return nil
}

// ValidateScore validates a persisted match score
func (v *MatchValidator) ValidateScore(score int) error {
	if score < 0 || score > 100 {
		return errors.ErrMatchScoreOutOfRange.WithDetail("score", score)
	}
	return nil
}
