// Package main implements the Lambda handler for asynchronous match
// resolution. It consumes dream.created events from EventBridge and runs the
// matching pipeline for the new dream.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	awsevents "github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/Emm4L92/DreamsConnect/application/services"
	"github.com/Emm4L92/DreamsConnect/domain/core/valueobjects"
	"github.com/Emm4L92/DreamsConnect/infrastructure/config"
	"github.com/Emm4L92/DreamsConnect/infrastructure/di"
)

// Global dependencies for Lambda performance optimization
var matchService *services.MatchService

func init() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	container, err := di.InitializeContainer(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize dependency container: %v", err)
	}

	matchService = container.MatchService

	log.Println("Match-dream handler initialized successfully")
}

// MatchRequest represents a direct invocation payload
type MatchRequest struct {
	DreamID string `json:"dream_id"`
}

// MatchResponse reports the edges written for the dream
type MatchResponse struct {
	DreamID        string `json:"dream_id"`
	MatchesCreated int    `json:"matches_created"`
}

// resolveMatches runs the matching pipeline for a single dream
func resolveMatches(ctx context.Context, dreamID string) (*MatchResponse, error) {
	id, err := valueobjects.NewDreamIDFromString(dreamID)
	if err != nil {
		return nil, fmt.Errorf("invalid dream id %q: %w", dreamID, err)
	}

	edges, err := matchService.OnDreamCreated(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("match resolution failed for %s: %w", dreamID, err)
	}

	log.Printf("Resolved %d matches for dream %s", len(edges), dreamID)

	return &MatchResponse{
		DreamID:        dreamID,
		MatchesCreated: len(edges),
	}, nil
}

// handler dispatches EventBridge and direct invocations
func handler(ctx context.Context, event json.RawMessage) error {
	// EventBridge rule delivery
	var cloudWatchEvent awsevents.CloudWatchEvent
	if err := json.Unmarshal(event, &cloudWatchEvent); err == nil && cloudWatchEvent.DetailType != "" {
		if cloudWatchEvent.DetailType != "dream.created" {
			log.Printf("Ignoring event type %s", cloudWatchEvent.DetailType)
			return nil
		}

		var detail struct {
			DreamID string `json:"dream_id"`
		}
		if err := json.Unmarshal(cloudWatchEvent.Detail, &detail); err != nil {
			return fmt.Errorf("failed to parse dream.created event: %w", err)
		}

		_, err := resolveMatches(ctx, detail.DreamID)
		return err
	}

	// Direct invocation
	var request MatchRequest
	if err := json.Unmarshal(event, &request); err == nil && request.DreamID != "" {
		_, err := resolveMatches(ctx, request.DreamID)
		return err
	}

	return fmt.Errorf("unable to parse event")
}

func main() {
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		log.Println("Starting match-dream Lambda")
		lambda.Start(handler)
		return
	}

	// Local testing mode
	if len(os.Args) < 2 {
		log.Fatal("Usage: match-dream <dream-id>")
	}

	response, err := resolveMatches(context.Background(), os.Args[1])
	if err != nil {
		log.Fatalf("Match resolution failed: %v", err)
	}

	responseJSON, _ := json.MarshalIndent(response, "", "  ")
	log.Printf("Result:\n%s", responseJSON)
}
