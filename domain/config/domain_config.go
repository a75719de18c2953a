package config

import "fmt"

// DomainConfig holds all configurable business rules and constraints
type DomainConfig struct {
	// Tag constraints
	MaxTagsPerDream  int
	MinTagLength     int
	MaxTagLength     int
	MaxTagWords      int
	MaxPairTagLength int

	// Extraction tuning
	ExactPhraseScore     float64
	WordBoundaryScore    float64
	PartialMatchScore    float64
	ConjugationScore     float64
	FallbackScore        float64
	PartialMatchMaxCands int
	FallbackMaxCands     int
	MaxTFIDFBonus        float64

	// Similarity weights
	JaccardWeight  float64
	LengthWeight   float64
	DensityWeight  float64
	DensityScale   float64
	MinTokenLength int

	// Match thresholds
	TagOverlapRatio float64
	MinTagScore     float64
	MinFinalScore   float64
	TagScoreWeight  float64
	ContentWeight   float64

	// Content constraints
	MaxTitleLength   int
	MaxContentLength int
	MinTitleLength   int
}

// DefaultDomainConfig returns the default domain configuration
func DefaultDomainConfig() *DomainConfig {
	return &DomainConfig{
		// Tag constraints
		MaxTagsPerDream:  5,
		MinTagLength:     3,
		MaxTagLength:     18,
		MaxTagWords:      2,
		MaxPairTagLength: 18,

		// Extraction tuning
		ExactPhraseScore:     10,
		WordBoundaryScore:    8,
		PartialMatchScore:    5,
		ConjugationScore:     7,
		FallbackScore:        4,
		PartialMatchMaxCands: 5,
		FallbackMaxCands:     4,
		MaxTFIDFBonus:        10,

		// Similarity weights
		JaccardWeight:  0.65,
		LengthWeight:   0.15,
		DensityWeight:  0.20,
		DensityScale:   100,
		MinTokenLength: 3,

		// Match thresholds
		TagOverlapRatio: 0.3,
		MinTagScore:     50,
		MinFinalScore:   60,
		TagScoreWeight:  0.6,
		ContentWeight:   0.4,

		// Content constraints
		MaxTitleLength:   200,
		MaxContentLength: 20000,
		MinTitleLength:   1,
	}
}

// ProductionDomainConfig returns production-specific configuration
func ProductionDomainConfig() *DomainConfig {
	config := DefaultDomainConfig()

	// Tighter content limits for production
	config.MaxContentLength = 10000

	return config
}

// DevelopmentDomainConfig returns development-specific configuration
func DevelopmentDomainConfig() *DomainConfig {
	config := DefaultDomainConfig()

	// More permissive for development
	config.MaxContentLength = 50000

	return config
}

// LoadDomainConfig loads domain configuration based on environment
func LoadDomainConfig(environment string) *DomainConfig {
	switch environment {
	case "production":
		return ProductionDomainConfig()
	case "development":
		return DevelopmentDomainConfig()
	default:
		return DefaultDomainConfig()
	}
}

// Validate checks if the configuration is valid
func (c *DomainConfig) Validate() error {
	if c.MaxTagsPerDream <= 0 {
		return fmt.Errorf("MaxTagsPerDream must be positive, got %d", c.MaxTagsPerDream)
	}
	if c.MinTagLength <= 0 || c.MaxTagLength < c.MinTagLength {
		return fmt.Errorf("invalid tag length bounds [%d, %d]", c.MinTagLength, c.MaxTagLength)
	}
	weightSum := c.JaccardWeight + c.LengthWeight + c.DensityWeight
	if weightSum < 0.99 || weightSum > 1.01 {
		return fmt.Errorf("similarity weights must sum to 1.0, got %f", weightSum)
	}
	if c.TagScoreWeight+c.ContentWeight < 0.99 || c.TagScoreWeight+c.ContentWeight > 1.01 {
		return fmt.Errorf("match weights must sum to 1.0, got %f", c.TagScoreWeight+c.ContentWeight)
	}
	if c.TagOverlapRatio <= 0 || c.TagOverlapRatio > 1 {
		return fmt.Errorf("TagOverlapRatio must be in (0, 1], got %f", c.TagOverlapRatio)
	}
	return nil
}
