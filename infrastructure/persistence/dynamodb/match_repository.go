package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"github.com/Emm4L92/DreamsConnect/application/ports"
	"github.com/Emm4L92/DreamsConnect/domain/core/entities"
	"github.com/Emm4L92/DreamsConnect/domain/core/valueobjects"
)

// MatchRepository implements ports.MatchRepository on the same single
// table. Edges live under the source dream's partition as MATCH# items,
// so listing a dream's matches is a single query and the reverse edge of
// any pair is addressable without an index.
type MatchRepository struct {
	client    *dynamodb.Client
	tableName string
	dreamRepo ports.DreamRepository
	logger    *zap.Logger
}

// NewMatchRepository creates a new MatchRepository. The dream repository
// resolves author ownership for GetByAuthorID.
func NewMatchRepository(client *dynamodb.Client, tableName string, dreamRepo ports.DreamRepository, logger *zap.Logger) *MatchRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MatchRepository{
		client:    client,
		tableName: tableName,
		dreamRepo: dreamRepo,
		logger:    logger,
	}
}

// matchItem represents the DynamoDB item structure for a match edge
type matchItem struct {
	PK             string `dynamodbav:"PK"`
	SK             string `dynamodbav:"SK"`
	EntityType     string `dynamodbav:"EntityType"`
	DreamID        string `dynamodbav:"DreamID"`
	MatchedDreamID string `dynamodbav:"MatchedDreamID"`
	Score          int    `dynamodbav:"Score"`
	CreatedAt      string `dynamodbav:"CreatedAt"`
}

func matchSK(matchedDreamID valueobjects.DreamID) string {
	return fmt.Sprintf("MATCH#%s", matchedDreamID.String())
}

// SaveIfAbsent writes a directed edge unless the ordered pair already
// exists. The conditional put makes concurrent resolutions racing on the
// same pair collapse into one row without any locking.
func (r *MatchRepository) SaveIfAbsent(ctx context.Context, edge *entities.MatchEdge) (bool, error) {
	item := matchItem{
		PK:             dreamPK(edge.DreamID()),
		SK:             matchSK(edge.MatchedDreamID()),
		EntityType:     "MATCH",
		DreamID:        edge.DreamID().String(),
		MatchedDreamID: edge.MatchedDreamID().String(),
		Score:          edge.Score(),
		CreatedAt:      edge.CreatedAt().UTC().Format(time.RFC3339Nano),
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return false, fmt.Errorf("failed to marshal match edge: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(PK) AND attribute_not_exists(SK)"),
	}

	if _, err := r.client.PutItem(ctx, input); err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return false, nil
		}
		return false, fmt.Errorf("failed to save match edge: %w", err)
	}

	r.logger.Debug("Match edge saved",
		zap.String("dreamID", item.DreamID),
		zap.String("matchedDreamID", item.MatchedDreamID),
		zap.Int("score", item.Score),
	)
	return true, nil
}

// GetByDreamID retrieves all edges originating from a dream
func (r *MatchRepository) GetByDreamID(ctx context.Context, dreamID valueobjects.DreamID) ([]*entities.MatchEdge, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("PK = :pk AND begins_with(SK, :sk)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: dreamPK(dreamID)},
			":sk": &types.AttributeValueMemberS{Value: "MATCH#"},
		},
	}

	var edges []*entities.MatchEdge
	paginator := dynamodb.NewQueryPaginator(r.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to query match edges: %w", err)
		}
		for _, raw := range page.Items {
			edge, err := r.reconstructEdge(raw)
			if err != nil {
				r.logger.Warn("Skipping corrupt match item", zap.Error(err))
				continue
			}
			edges = append(edges, edge)
		}
	}
	return edges, nil
}

// GetByAuthorID retrieves all edges originating from a user's dreams
func (r *MatchRepository) GetByAuthorID(ctx context.Context, authorID string) ([]*entities.MatchEdge, error) {
	dreams, err := r.dreamRepo.GetByAuthorID(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve author dreams: %w", err)
	}

	var edges []*entities.MatchEdge
	for _, dream := range dreams {
		dreamEdges, err := r.GetByDreamID(ctx, dream.ID())
		if err != nil {
			return nil, err
		}
		edges = append(edges, dreamEdges...)
	}
	return edges, nil
}

// DeleteByDreamID removes all edges touching a dream. Every stored pair
// exists in both directions, so the forward edges identify exactly the
// reverse rows to remove.
func (r *MatchRepository) DeleteByDreamID(ctx context.Context, dreamID valueobjects.DreamID) error {
	edges, err := r.GetByDreamID(ctx, dreamID)
	if err != nil {
		return err
	}

	for _, edge := range edges {
		if err := r.deleteEdge(ctx, edge.DreamID(), edge.MatchedDreamID()); err != nil {
			return err
		}
		if err := r.deleteEdge(ctx, edge.MatchedDreamID(), edge.DreamID()); err != nil {
			return err
		}
	}

	r.logger.Debug("Match edges deleted for dream",
		zap.String("dreamID", dreamID.String()),
		zap.Int("pairs", len(edges)),
	)
	return nil
}

// DeleteAll clears every edge in the table; used by full recalculation
func (r *MatchRepository) DeleteAll(ctx context.Context) error {
	filter := expression.Name("EntityType").Equal(expression.Value("MATCH"))
	proj := expression.NamesList(expression.Name("PK"), expression.Name("SK"))
	expr, err := expression.NewBuilder().WithFilter(filter).WithProjection(proj).Build()
	if err != nil {
		return fmt.Errorf("failed to build scan expression: %w", err)
	}

	input := &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		FilterExpression:          expr.Filter(),
		ProjectionExpression:      expr.Projection(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	deleted := 0
	paginator := dynamodb.NewScanPaginator(r.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("failed to scan match edges: %w", err)
		}
		for _, raw := range page.Items {
			deleteInput := &dynamodb.DeleteItemInput{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"PK": raw["PK"],
					"SK": raw["SK"],
				},
			}
			if _, err := r.client.DeleteItem(ctx, deleteInput); err != nil {
				return fmt.Errorf("failed to delete match edge: %w", err)
			}
			deleted++
		}
	}

	r.logger.Info("All match edges cleared", zap.Int("deleted", deleted))
	return nil
}

func (r *MatchRepository) deleteEdge(ctx context.Context, from, to valueobjects.DreamID) error {
	input := &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: dreamPK(from)},
			"SK": &types.AttributeValueMemberS{Value: matchSK(to)},
		},
	}
	if _, err := r.client.DeleteItem(ctx, input); err != nil {
		return fmt.Errorf("failed to delete match edge: %w", err)
	}
	return nil
}

func (r *MatchRepository) reconstructEdge(raw map[string]types.AttributeValue) (*entities.MatchEdge, error) {
	var item matchItem
	if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match edge: %w", err)
	}

	dreamID, err := valueobjects.NewDreamIDFromString(item.DreamID)
	if err != nil {
		return nil, fmt.Errorf("invalid stored dream ID %q: %w", item.DreamID, err)
	}
	matchedID, err := valueobjects.NewDreamIDFromString(item.MatchedDreamID)
	if err != nil {
		return nil, fmt.Errorf("invalid stored matched dream ID %q: %w", item.MatchedDreamID, err)
	}

	createdAt, err := time.Parse(time.RFC3339Nano, item.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid stored timestamp: %w", err)
	}

	return entities.ReconstructMatchEdge(dreamID, matchedID, item.Score, createdAt), nil
}
