package entities

import (
	"errors"
	"math"
	"time"

	"github.com/Emm4L92/DreamsConnect/domain/core/valueobjects"
)

// MatchEdge links two dreams by different authors with a compatibility
// score. Edges are stored in both directions; an undirected relationship
// is represented as two rows for query symmetry.
type MatchEdge struct {
	dreamID        valueobjects.DreamID
	matchedDreamID valueobjects.DreamID
	score          int
	createdAt      time.Time
}

// NewMatchEdge creates a directed edge. The raw score is NaN-guarded,
// clamped to [0,100] and rounded to an integer before it ever reaches
// persistence.
func NewMatchEdge(dreamID, matchedDreamID valueobjects.DreamID, rawScore float64) (*MatchEdge, error) {
	if dreamID.IsZero() || matchedDreamID.IsZero() {
		return nil, errors.New("match edge requires two dream IDs")
	}
	if dreamID.Equals(matchedDreamID) {
		return nil, errors.New("cannot match a dream with itself")
	}

	return &MatchEdge{
		dreamID:        dreamID,
		matchedDreamID: matchedDreamID,
		score:          SanitizeScore(rawScore),
		createdAt:      time.Now(),
	}, nil
}

// ReconstructMatchEdge rebuilds an edge from persistence
func ReconstructMatchEdge(dreamID, matchedDreamID valueobjects.DreamID, score int, createdAt time.Time) *MatchEdge {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return &MatchEdge{
		dreamID:        dreamID,
		matchedDreamID: matchedDreamID,
		score:          score,
		createdAt:      createdAt,
	}
}

// DreamID returns the edge's source dream
func (m *MatchEdge) DreamID() valueobjects.DreamID { return m.dreamID }

// MatchedDreamID returns the edge's target dream
func (m *MatchEdge) MatchedDreamID() valueobjects.DreamID { return m.matchedDreamID }

// Score returns the integer compatibility score in [0,100]
func (m *MatchEdge) Score() int { return m.score }

// CreatedAt returns the edge creation timestamp
func (m *MatchEdge) CreatedAt() time.Time { return m.createdAt }

// Reverse returns the mirrored edge carrying the same score
func (m *MatchEdge) Reverse() *MatchEdge {
	return &MatchEdge{
		dreamID:        m.matchedDreamID,
		matchedDreamID: m.dreamID,
		score:          m.score,
		createdAt:      m.createdAt,
	}
}

// SanitizeScore coerces a raw float score into a persisted integer:
// invalid values become 0, everything else is clamped and rounded.
func SanitizeScore(raw float64) int {
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 0
	}
	clamped := math.Min(100, math.Max(0, raw))
	return int(math.Round(clamped))
}
