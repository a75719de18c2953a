package ports

import (
	"context"

	"github.com/Emm4L92/DreamsConnect/domain/core/entities"
	"github.com/Emm4L92/DreamsConnect/domain/core/valueobjects"
	"github.com/Emm4L92/DreamsConnect/domain/events"
)

// DreamRepository defines the interface for dream persistence
// This is a port in hexagonal architecture - the domain doesn't know about the implementation
type DreamRepository interface {
	// Save persists a dream (create or update)
	Save(ctx context.Context, dream *entities.Dream) error

	// GetByID retrieves a dream by its ID
	GetByID(ctx context.Context, id valueobjects.DreamID) (*entities.Dream, error)

	// GetByAuthorID retrieves all dreams posted by a user
	GetByAuthorID(ctx context.Context, authorID string) ([]*entities.Dream, error)

	// GetAll retrieves every dream; match resolution scans the full set
	GetAll(ctx context.Context) ([]*entities.Dream, error)

	// Search finds dreams matching the given criteria
	Search(ctx context.Context, criteria SearchCriteria) ([]*entities.Dream, error)

	// Delete removes a dream
	Delete(ctx context.Context, id valueobjects.DreamID) error
}

// MatchRepository defines the interface for match edge persistence
type MatchRepository interface {
	// SaveIfAbsent persists a directed edge unless the ordered pair already
	// exists. Returns true when a new edge was written. Concurrent creations
	// racing on the same pair resolve through this idempotency, not locking.
	SaveIfAbsent(ctx context.Context, edge *entities.MatchEdge) (bool, error)

	// GetByDreamID retrieves all edges originating from a dream
	GetByDreamID(ctx context.Context, dreamID valueobjects.DreamID) ([]*entities.MatchEdge, error)

	// GetByAuthorID retrieves all edges originating from a user's dreams
	GetByAuthorID(ctx context.Context, authorID string) ([]*entities.MatchEdge, error)

	// DeleteByDreamID removes all edges touching a dream, both directions
	DeleteByDreamID(ctx context.Context, dreamID valueobjects.DreamID) error

	// DeleteAll clears every edge; used by full recalculation
	DeleteAll(ctx context.Context) error
}

// SearchCriteria defines search parameters
type SearchCriteria struct {
	AuthorID  string
	Language  string
	Tag       string
	Query     string
	Limit     int
	Offset    int
	OrderDesc bool
}

// EventPublisher defines the interface for publishing domain events
type EventPublisher interface {
	// Publish sends a single event
	Publish(ctx context.Context, event events.DomainEvent) error

	// PublishBatch sends multiple events
	PublishBatch(ctx context.Context, events []events.DomainEvent) error
}

// Cache defines the interface for caching
type Cache interface {
	// Get retrieves a value from cache
	Get(ctx context.Context, key string) (interface{}, bool)

	// Set stores a value in cache with TTL in seconds
	Set(ctx context.Context, key string, value interface{}, ttl int) error

	// Delete removes a value from cache
	Delete(ctx context.Context, key string) error

	// Clear removes all values from cache
	Clear(ctx context.Context) error
}
