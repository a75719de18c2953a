package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/Emm4L92/DreamsConnect/application/ports"
	"github.com/Emm4L92/DreamsConnect/domain/core/entities"
	"github.com/Emm4L92/DreamsConnect/domain/core/valueobjects"
	"github.com/Emm4L92/DreamsConnect/pkg/errors"
)

// DreamRepository is an in-memory implementation of ports.DreamRepository.
// Used for local development and tests; all operations are safe for
// concurrent use.
type DreamRepository struct {
	mu     sync.RWMutex
	dreams map[string]*entities.Dream
}

// NewDreamRepository creates an empty in-memory dream repository
func NewDreamRepository() *DreamRepository {
	return &DreamRepository{
		dreams: make(map[string]*entities.Dream),
	}
}

// Save persists a dream, overwriting any previous version
func (r *DreamRepository) Save(ctx context.Context, dream *entities.Dream) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dreams[dream.ID().String()] = dream
	return nil
}

// GetByID retrieves a dream by its ID
func (r *DreamRepository) GetByID(ctx context.Context, id valueobjects.DreamID) (*entities.Dream, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	dream, ok := r.dreams[id.String()]
	if !ok {
		return nil, errors.ErrDreamNotFound
	}
	return dream, nil
}

// GetByAuthorID retrieves all dreams posted by a user, newest first
func (r *DreamRepository) GetByAuthorID(ctx context.Context, authorID string) ([]*entities.Dream, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*entities.Dream
	for _, dream := range r.dreams {
		if dream.AuthorID() == authorID {
			result = append(result, dream)
		}
	}
	sortDreamsNewestFirst(result)
	return result, nil
}

// GetAll retrieves every stored dream, newest first
func (r *DreamRepository) GetAll(ctx context.Context) ([]*entities.Dream, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*entities.Dream, 0, len(r.dreams))
	for _, dream := range r.dreams {
		result = append(result, dream)
	}
	sortDreamsNewestFirst(result)
	return result, nil
}

// Search filters stored dreams against the given criteria
func (r *DreamRepository) Search(ctx context.Context, criteria ports.SearchCriteria) ([]*entities.Dream, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*entities.Dream
	for _, dream := range r.dreams {
		if !matchesCriteria(dream, criteria) {
			continue
		}
		result = append(result, dream)
	}

	sortDreamsNewestFirst(result)
	if !criteria.OrderDesc {
		reverseDreams(result)
	}

	if criteria.Offset > 0 {
		if criteria.Offset >= len(result) {
			return nil, nil
		}
		result = result[criteria.Offset:]
	}
	if criteria.Limit > 0 && criteria.Limit < len(result) {
		result = result[:criteria.Limit]
	}
	return result, nil
}

// Delete removes a dream
func (r *DreamRepository) Delete(ctx context.Context, id valueobjects.DreamID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.dreams[id.String()]; !ok {
		return errors.ErrDreamNotFound
	}
	delete(r.dreams, id.String())
	return nil
}

func matchesCriteria(dream *entities.Dream, criteria ports.SearchCriteria) bool {
	if criteria.AuthorID != "" && dream.AuthorID() != criteria.AuthorID {
		return false
	}
	if criteria.Language != "" && string(dream.Language()) != criteria.Language {
		return false
	}
	if criteria.Tag != "" && !dream.HasTag(criteria.Tag) {
		return false
	}
	if criteria.Query != "" {
		q := strings.ToLower(criteria.Query)
		combined := strings.ToLower(dream.Content().Combined())
		if !strings.Contains(combined, q) {
			return false
		}
	}
	return true
}

func sortDreamsNewestFirst(dreams []*entities.Dream) {
	sort.SliceStable(dreams, func(i, j int) bool {
		return dreams[i].CreatedAt().After(dreams[j].CreatedAt())
	})
}

func reverseDreams(dreams []*entities.Dream) {
	for i, j := 0, len(dreams)-1; i < j; i, j = i+1, j-1 {
		dreams[i], dreams[j] = dreams[j], dreams[i]
	}
}
