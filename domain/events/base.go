package events

import (
	"time"

	"github.com/Emm4L92/DreamsConnect/domain/core/valueobjects"
)

// DomainEvent is the base interface for all domain events
// Events represent something that has happened in the past
type DomainEvent interface {
	GetAggregateID() string
	GetEventType() string
	GetTimestamp() time.Time
	GetVersion() int
}

// BaseEvent provides common event fields
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
	Version     int       `json:"version"`
}

func (e BaseEvent) GetAggregateID() string  { return e.AggregateID }
func (e BaseEvent) GetEventType() string    { return e.EventType }
func (e BaseEvent) GetTimestamp() time.Time { return e.Timestamp }
func (e BaseEvent) GetVersion() int         { return e.Version }

// Dream Events

// DreamCreated is raised when a new dream is posted
type DreamCreated struct {
	BaseEvent
	DreamID  valueobjects.DreamID `json:"dream_id"`
	AuthorID string               `json:"author_id"`
	Language string               `json:"language"`
	Tags     []string             `json:"tags"`
}

// NewDreamCreated creates a DreamCreated event
func NewDreamCreated(dreamID valueobjects.DreamID, authorID, language string, tags []string, timestamp time.Time) DreamCreated {
	return DreamCreated{
		BaseEvent: BaseEvent{
			AggregateID: dreamID.String(),
			EventType:   "dream.created",
			Timestamp:   timestamp,
			Version:     1,
		},
		DreamID:  dreamID,
		AuthorID: authorID,
		Language: language,
		Tags:     tags,
	}
}

// DreamDeleted is raised when a dream is removed along with its matches
type DreamDeleted struct {
	BaseEvent
	DreamID  valueobjects.DreamID `json:"dream_id"`
	AuthorID string               `json:"author_id"`
	Tags     []string             `json:"tags"`
}

// NewDreamDeleted creates a DreamDeleted event
func NewDreamDeleted(dreamID valueobjects.DreamID, authorID string, tags []string, timestamp time.Time) DreamDeleted {
	return DreamDeleted{
		BaseEvent: BaseEvent{
			AggregateID: dreamID.String(),
			EventType:   "dream.deleted",
			Timestamp:   timestamp,
			Version:     1,
		},
		DreamID:  dreamID,
		AuthorID: authorID,
		Tags:     tags,
	}
}

// Match Events

// DreamsMatched is raised when two dreams pass the match thresholds
type DreamsMatched struct {
	BaseEvent
	DreamID        valueobjects.DreamID `json:"dream_id"`
	MatchedDreamID valueobjects.DreamID `json:"matched_dream_id"`
	Score          int                  `json:"score"`
}

// NewDreamsMatched creates a DreamsMatched event
func NewDreamsMatched(dreamID, matchedDreamID valueobjects.DreamID, score int, timestamp time.Time) DreamsMatched {
	return DreamsMatched{
		BaseEvent: BaseEvent{
			AggregateID: dreamID.String(),
			EventType:   "dreams.matched",
			Timestamp:   timestamp,
			Version:     1,
		},
		DreamID:        dreamID,
		MatchedDreamID: matchedDreamID,
		Score:          score,
	}
}

// MatchesRecalculated is raised after a full recalculation pass completes
type MatchesRecalculated struct {
	BaseEvent
	DreamsProcessed int `json:"dreams_processed"`
	MatchesCreated  int `json:"matches_created"`
}

// NewMatchesRecalculated creates a MatchesRecalculated event
func NewMatchesRecalculated(dreamsProcessed, matchesCreated int, timestamp time.Time) MatchesRecalculated {
	return MatchesRecalculated{
		BaseEvent: BaseEvent{
			AggregateID: "matches",
			EventType:   "matches.recalculated",
			Timestamp:   timestamp,
			Version:     1,
		},
		DreamsProcessed: dreamsProcessed,
		MatchesCreated:  matchesCreated,
	}
}
