package entities

import (
	"errors"
	"time"

	"github.com/Emm4L92/DreamsConnect/domain/core/valueobjects"
	"github.com/Emm4L92/DreamsConnect/domain/events"
	"github.com/Emm4L92/DreamsConnect/domain/nlp"
)

// Dream is the aggregate root for a posted dream narrative.
// Tags are computed once at creation time and never recomputed on edit.
type Dream struct {
	id        valueobjects.DreamID
	authorID  string
	content   valueobjects.DreamContent
	language  nlp.Language
	tags      []string
	createdAt time.Time
	version   int

	uncommittedEvents []events.DomainEvent
}

// NewDream creates a new dream aggregate and raises DreamCreated.
// The language code is normalized to the supported set; tags are the
// consolidated output of the extraction pipeline.
func NewDream(authorID string, content valueobjects.DreamContent, languageCode string, tags []string) (*Dream, error) {
	if authorID == "" {
		return nil, errors.New("author ID cannot be empty")
	}
	if content.IsEmpty() {
		return nil, errors.New("dream content cannot be empty")
	}
	if len(tags) == 0 {
		return nil, errors.New("dream must carry at least one tag")
	}

	now := time.Now()
	dream := &Dream{
		id:        valueobjects.NewDreamID(),
		authorID:  authorID,
		content:   content,
		language:  nlp.NormalizeLanguage(languageCode),
		tags:      append([]string(nil), tags...),
		createdAt: now,
		version:   1,
	}

	dream.raise(events.NewDreamCreated(dream.id, authorID, string(dream.language), dream.Tags(), now))
	return dream, nil
}

// ReconstructDream rebuilds a dream from persistence without raising events
func ReconstructDream(id valueobjects.DreamID, authorID string, content valueobjects.DreamContent, language nlp.Language, tags []string, createdAt time.Time, version int) *Dream {
	return &Dream{
		id:        id,
		authorID:  authorID,
		content:   content,
		language:  language,
		tags:      append([]string(nil), tags...),
		createdAt: createdAt,
		version:   version,
	}
}

// ID returns the dream identifier
func (d *Dream) ID() valueobjects.DreamID { return d.id }

// AuthorID returns the posting user's identifier
func (d *Dream) AuthorID() string { return d.authorID }

// Content returns the narrative content
func (d *Dream) Content() valueobjects.DreamContent { return d.content }

// Language returns the normalized narrative language
func (d *Dream) Language() nlp.Language { return d.language }

// Tags returns a copy of the dream's tag list
func (d *Dream) Tags() []string {
	return append([]string(nil), d.tags...)
}

// CreatedAt returns the creation timestamp
func (d *Dream) CreatedAt() time.Time { return d.createdAt }

// Version returns the aggregate version
func (d *Dream) Version() int { return d.version }

// HasTag reports whether the dream carries the given tag
func (d *Dream) HasTag(tag string) bool {
	for _, t := range d.tags {
		if t == tag {
			return true
		}
	}
	return false
}

// TagOverlap counts how many of the dream's tags appear in the other set
func (d *Dream) TagOverlap(other []string) int {
	otherSet := make(map[string]struct{}, len(other))
	for _, t := range other {
		otherSet[t] = struct{}{}
	}
	count := 0
	for _, t := range d.tags {
		if _, ok := otherSet[t]; ok {
			count++
		}
	}
	return count
}

// MarkDeleted raises the DreamDeleted event prior to removal
func (d *Dream) MarkDeleted() {
	d.raise(events.NewDreamDeleted(d.id, d.authorID, d.Tags(), time.Now()))
}

// GetUncommittedEvents returns events raised since the last commit
func (d *Dream) GetUncommittedEvents() []events.DomainEvent {
	return d.uncommittedEvents
}

// MarkEventsAsCommitted clears the uncommitted event list
func (d *Dream) MarkEventsAsCommitted() {
	d.uncommittedEvents = nil
}

func (d *Dream) raise(event events.DomainEvent) {
	d.uncommittedEvents = append(d.uncommittedEvents, event)
}
