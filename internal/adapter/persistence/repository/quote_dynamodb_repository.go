package repository

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"machine_shop_suite/internal/domain/entities"
	"machine_shop_suite/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotesTableName = "quotes"

// quoteItem stores the full signed document verbatim next to the attributes
// the List scan filters on. The document, not the item attributes, is the
// authoritative record: signatures are computed over it.
type quoteItem struct {
	ID       string `dynamodbav:"id"`
	Status   string `dynamodbav:"status"`
	Document string `dynamodbav:"document"`
}

// QuoteDynamoRepository is the DynamoDB-backed quote store, selected with
// QUOTES_BACKEND=dynamodb.
//
// Table requirements:
//   - PK: id (string)
//
// PutItem replaces the whole item, which gives Save the same
// no-partial-record guarantee as the file backend's rename.
type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	now       func() int64
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
		now:       func() int64 { return time.Now().Unix() },
	}
}

func (r *QuoteDynamoRepository) NewID() string {
	return newQuoteID()
}

func (r *QuoteDynamoRepository) Now() int64 {
	return r.now()
}

func (r *QuoteDynamoRepository) Save(ctx context.Context, quoteID string, q entities.Quote) error {
	if !entities.IsValidQuoteID(quoteID) {
		return ErrMalformedQuoteID
	}

	doc, err := json.Marshal(q)
	if err != nil {
		return err
	}

	av, err := attributevalue.MarshalMap(quoteItem{
		ID:       quoteID,
		Status:   string(q.Status),
		Document: string(doc),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *QuoteDynamoRepository) Load(ctx context.Context, quoteID string) (entities.Quote, error) {
	if !entities.IsValidQuoteID(quoteID) {
		return entities.Quote{}, nil
	}

	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: quoteID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		log.Printf("[quote][repo] corrupt item quote_id=%s err=%v", quoteID, err)
		return entities.Quote{}, nil
	}

	var q entities.Quote
	if err := json.Unmarshal([]byte(it.Document), &q); err != nil {
		log.Printf("[quote][repo] corrupt document quote_id=%s err=%v", quoteID, err)
		return entities.Quote{}, nil
	}
	return q, nil
}

func (r *QuoteDynamoRepository) List(ctx context.Context, query interfaces.QuoteListQuery) ([]entities.Quote, string, error) {
	limit := clampListLimit(query.Limit)

	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
		// Fetch one page beyond the requested limit so the next cursor is
		// only emitted when more matching items actually exist.
		Limit: aws.Int32(int32(limit + 1)),
	}
	if query.Status != "" {
		input.FilterExpression = aws.String("#status = :status")
		input.ExpressionAttributeNames = map[string]string{"#status": "status"}
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(query.Status)},
		}
	}
	if query.Cursor != "" {
		input.ExclusiveStartKey = map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: query.Cursor},
		}
	}

	items := make([]entities.Quote, 0, limit)
	nextCursor := ""
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, "", err
		}

		for _, raw := range out.Items {
			var it quoteItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				continue
			}
			var q entities.Quote
			if err := json.Unmarshal([]byte(it.Document), &q); err != nil {
				continue
			}
			if !matchesSearch(q, query.Search) {
				continue
			}
			if len(items) == limit {
				nextCursor = items[len(items)-1].QuoteID
				return items, nextCursor, nil
			}
			items = append(items, q)
		}

		if out.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return items, nextCursor, nil
}
