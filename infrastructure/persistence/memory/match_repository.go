package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/Emm4L92/DreamsConnect/domain/core/entities"
	"github.com/Emm4L92/DreamsConnect/domain/core/valueobjects"
)

// MatchRepository is an in-memory implementation of ports.MatchRepository.
// Edges are keyed by the ordered (dream, matched dream) pair, which makes
// SaveIfAbsent a plain map existence check.
type MatchRepository struct {
	mu     sync.RWMutex
	edges  map[string]*entities.MatchEdge
	dreams *DreamRepository
}

// NewMatchRepository creates an empty in-memory match repository. The dream
// repository is consulted to resolve author ownership for GetByAuthorID.
func NewMatchRepository(dreams *DreamRepository) *MatchRepository {
	return &MatchRepository{
		edges:  make(map[string]*entities.MatchEdge),
		dreams: dreams,
	}
}

func edgeKey(dreamID, matchedDreamID valueobjects.DreamID) string {
	return dreamID.String() + "#" + matchedDreamID.String()
}

// SaveIfAbsent persists a directed edge unless the ordered pair exists.
// Returns true when a new edge was written.
func (r *MatchRepository) SaveIfAbsent(ctx context.Context, edge *entities.MatchEdge) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := edgeKey(edge.DreamID(), edge.MatchedDreamID())
	if _, exists := r.edges[key]; exists {
		return false, nil
	}
	r.edges[key] = edge
	return true, nil
}

// GetByDreamID retrieves all edges originating from a dream, best score first
func (r *MatchRepository) GetByDreamID(ctx context.Context, dreamID valueobjects.DreamID) ([]*entities.MatchEdge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*entities.MatchEdge
	for _, edge := range r.edges {
		if edge.DreamID().Equals(dreamID) {
			result = append(result, edge)
		}
	}
	sortEdgesBestFirst(result)
	return result, nil
}

// GetByAuthorID retrieves all edges originating from a user's dreams
func (r *MatchRepository) GetByAuthorID(ctx context.Context, authorID string) ([]*entities.MatchEdge, error) {
	owned, err := r.dreams.GetByAuthorID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	ownedSet := make(map[string]struct{}, len(owned))
	for _, dream := range owned {
		ownedSet[dream.ID().String()] = struct{}{}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*entities.MatchEdge
	for _, edge := range r.edges {
		if _, ok := ownedSet[edge.DreamID().String()]; ok {
			result = append(result, edge)
		}
	}
	sortEdgesBestFirst(result)
	return result, nil
}

// DeleteByDreamID removes all edges touching a dream, both directions
func (r *MatchRepository) DeleteByDreamID(ctx context.Context, dreamID valueobjects.DreamID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, edge := range r.edges {
		if edge.DreamID().Equals(dreamID) || edge.MatchedDreamID().Equals(dreamID) {
			delete(r.edges, key)
		}
	}
	return nil
}

// DeleteAll clears every edge
func (r *MatchRepository) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.edges = make(map[string]*entities.MatchEdge)
	return nil
}

func sortEdgesBestFirst(edges []*entities.MatchEdge) {
	sort.SliceStable(edges, func(i, j int) bool {
		if edges[i].Score() != edges[j].Score() {
			return edges[i].Score() > edges[j].Score()
		}
		return edges[i].CreatedAt().After(edges[j].CreatedAt())
	})
}
