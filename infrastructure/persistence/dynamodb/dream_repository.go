package dynamodb

import (
	"context"
	"fmt"
	"strings"
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
	"github.com/Emm4L92/DreamsConnect/domain/nlp"
	apperrors "github.com/Emm4L92/DreamsConnect/pkg/errors"
)

// DreamRepository implements ports.DreamRepository on a DynamoDB single
// table. Dreams live under PK DREAM#<id>; the AuthorIndex GSI serves
// per-author listing ordered by creation time.
type DreamRepository struct {
	client    *dynamodb.Client
	tableName string
	indexName string
	logger    *zap.Logger
}

// NewDreamRepository creates a new DreamRepository
func NewDreamRepository(client *dynamodb.Client, tableName, indexName string, logger *zap.Logger) *DreamRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DreamRepository{
		client:    client,
		tableName: tableName,
		indexName: indexName,
		logger:    logger,
	}
}

// dreamItem represents the DynamoDB item structure for a dream
type dreamItem struct {
	PK         string   `dynamodbav:"PK"`
	SK         string   `dynamodbav:"SK"`
	GSI1PK     string   `dynamodbav:"GSI1PK"`
	GSI1SK     string   `dynamodbav:"GSI1SK"`
	EntityType string   `dynamodbav:"EntityType"`
	DreamID    string   `dynamodbav:"DreamID"`
	AuthorID   string   `dynamodbav:"AuthorID"`
	Title      string   `dynamodbav:"Title"`
	Content    string   `dynamodbav:"Content"`
	Language   string   `dynamodbav:"Language"`
	Tags       []string `dynamodbav:"Tags"`
	CreatedAt  string   `dynamodbav:"CreatedAt"`
	Version    int      `dynamodbav:"Version"`
}

func dreamPK(id valueobjects.DreamID) string {
	return fmt.Sprintf("DREAM#%s", id.String())
}

func toDreamItem(dream *entities.Dream) dreamItem {
	createdAt := dream.CreatedAt().UTC().Format(time.RFC3339Nano)
	return dreamItem{
		PK:         dreamPK(dream.ID()),
		SK:         "METADATA",
		GSI1PK:     fmt.Sprintf("USER#%s", dream.AuthorID()),
		GSI1SK:     fmt.Sprintf("DREAM#%s#%s", createdAt, dream.ID().String()),
		EntityType: "DREAM",
		DreamID:    dream.ID().String(),
		AuthorID:   dream.AuthorID(),
		Title:      dream.Content().Title(),
		Content:    dream.Content().Body(),
		Language:   string(dream.Language()),
		Tags:       dream.Tags(),
		CreatedAt:  createdAt,
		Version:    dream.Version(),
	}
}

func (r *DreamRepository) reconstructDream(item dreamItem) (*entities.Dream, error) {
	id, err := valueobjects.NewDreamIDFromString(item.DreamID)
	if err != nil {
		return nil, fmt.Errorf("invalid stored dream ID %q: %w", item.DreamID, err)
	}

	content, err := valueobjects.NewDreamContent(item.Title, item.Content)
	if err != nil {
		return nil, fmt.Errorf("invalid stored dream content for %s: %w", item.DreamID, err)
	}

	createdAt, err := time.Parse(time.RFC3339Nano, item.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid stored timestamp for %s: %w", item.DreamID, err)
	}

	return entities.ReconstructDream(
		id,
		item.AuthorID,
		content,
		nlp.Language(item.Language),
		item.Tags,
		createdAt,
		item.Version,
	), nil
}

// Save persists a dream to DynamoDB
func (r *DreamRepository) Save(ctx context.Context, dream *entities.Dream) error {
	av, err := attributevalue.MarshalMap(toDreamItem(dream))
	if err != nil {
		return fmt.Errorf("failed to marshal dream: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}

	if _, err := r.client.PutItem(ctx, input); err != nil {
		r.logger.Error("Failed to save dream to DynamoDB",
			zap.Error(err),
			zap.String("dreamID", dream.ID().String()),
		)
		return apperrors.ErrDatabaseConnection.WithCause(err)
	}

	r.logger.Debug("Dream saved",
		zap.String("dreamID", dream.ID().String()),
		zap.String("authorID", dream.AuthorID()),
	)
	return nil
}

// GetByID retrieves a dream by its ID
func (r *DreamRepository) GetByID(ctx context.Context, id valueobjects.DreamID) (*entities.Dream, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: dreamPK(id)},
			"SK": &types.AttributeValueMemberS{Value: "METADATA"},
		},
	}

	result, err := r.client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get dream: %w", err)
	}

	if result.Item == nil {
		return nil, apperrors.ErrDreamNotFound.WithDetail("dream_id", id.String())
	}

	var item dreamItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dream: %w", err)
	}

	return r.reconstructDream(item)
}

// GetByAuthorID retrieves all dreams posted by a user, newest first
func (r *DreamRepository) GetByAuthorID(ctx context.Context, authorID string) ([]*entities.Dream, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(r.indexName),
		KeyConditionExpression: aws.String("GSI1PK = :pk AND begins_with(GSI1SK, :sk)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: fmt.Sprintf("USER#%s", authorID)},
			":sk": &types.AttributeValueMemberS{Value: "DREAM#"},
		},
		ScanIndexForward: aws.Bool(false),
	}

	var dreams []*entities.Dream
	paginator := dynamodb.NewQueryPaginator(r.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to query dreams by author: %w", err)
		}
		for _, raw := range page.Items {
			var item dreamItem
			if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
				r.logger.Warn("Failed to unmarshal dream item", zap.Error(err))
				continue
			}
			dream, err := r.reconstructDream(item)
			if err != nil {
				r.logger.Warn("Skipping corrupt dream item",
					zap.String("dreamID", item.DreamID),
					zap.Error(err),
				)
				continue
			}
			dreams = append(dreams, dream)
		}
	}

	return dreams, nil
}

// GetAll retrieves every stored dream. Match resolution compares a new
// dream against the full corpus, so this is a deliberate table scan.
func (r *DreamRepository) GetAll(ctx context.Context) ([]*entities.Dream, error) {
	filter := expression.Name("EntityType").Equal(expression.Value("DREAM"))
	expr, err := expression.NewBuilder().WithFilter(filter).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build scan expression: %w", err)
	}

	return r.scan(ctx, expr)
}

// Search finds dreams matching the given criteria. Author-scoped searches
// go through the AuthorIndex; everything else filters a table scan.
func (r *DreamRepository) Search(ctx context.Context, criteria ports.SearchCriteria) ([]*entities.Dream, error) {
	var dreams []*entities.Dream
	var err error

	if criteria.AuthorID != "" {
		dreams, err = r.GetByAuthorID(ctx, criteria.AuthorID)
	} else {
		filter := expression.Name("EntityType").Equal(expression.Value("DREAM"))
		if criteria.Language != "" {
			filter = filter.And(expression.Name("Language").Equal(expression.Value(criteria.Language)))
		}
		if criteria.Tag != "" {
			filter = filter.And(expression.Name("Tags").Contains(criteria.Tag))
		}

		var expr expression.Expression
		expr, err = expression.NewBuilder().WithFilter(filter).Build()
		if err != nil {
			return nil, fmt.Errorf("failed to build scan expression: %w", err)
		}
		dreams, err = r.scan(ctx, expr)
	}
	if err != nil {
		return nil, err
	}

	dreams = filterDreams(dreams, criteria)

	if criteria.Offset > 0 {
		if criteria.Offset >= len(dreams) {
			return nil, nil
		}
		dreams = dreams[criteria.Offset:]
	}
	if criteria.Limit > 0 && criteria.Limit < len(dreams) {
		dreams = dreams[:criteria.Limit]
	}
	return dreams, nil
}

// Delete removes a dream
func (r *DreamRepository) Delete(ctx context.Context, id valueobjects.DreamID) error {
	input := &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: dreamPK(id)},
			"SK": &types.AttributeValueMemberS{Value: "METADATA"},
		},
	}

	if _, err := r.client.DeleteItem(ctx, input); err != nil {
		return fmt.Errorf("failed to delete dream: %w", err)
	}

	r.logger.Debug("Dream deleted", zap.String("dreamID", id.String()))
	return nil
}

func (r *DreamRepository) scan(ctx context.Context, expr expression.Expression) ([]*entities.Dream, error) {
	input := &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	var dreams []*entities.Dream
	paginator := dynamodb.NewScanPaginator(r.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dreams: %w", err)
		}
		for _, raw := range page.Items {
			var item dreamItem
			if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
				r.logger.Warn("Failed to unmarshal dream item", zap.Error(err))
				continue
			}
			dream, err := r.reconstructDream(item)
			if err != nil {
				r.logger.Warn("Skipping corrupt dream item",
					zap.String("dreamID", item.DreamID),
					zap.Error(err),
				)
				continue
			}
			dreams = append(dreams, dream)
		}
	}
	return dreams, nil
}

// filterDreams applies the criteria that DynamoDB expressions don't cover:
// free-text search and language/tag filters after an author-index query
func filterDreams(dreams []*entities.Dream, criteria ports.SearchCriteria) []*entities.Dream {
	result := dreams[:0]
	query := strings.ToLower(criteria.Query)
	for _, dream := range dreams {
		if criteria.Language != "" && string(dream.Language()) != criteria.Language {
			continue
		}
		if criteria.Tag != "" && !dream.HasTag(criteria.Tag) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(dream.Content().Combined()), query) {
			continue
		}
		result = append(result, dream)
	}
	return result
}
