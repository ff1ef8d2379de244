package repository

import (
	"context"
	"fmt"
	"time"

	"mecanica_quotes/internal/domain/entities"
	"mecanica_quotes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultQuotesTableName = "quotes"
	quotesPublicTokenIndex = "public_token-index"
)

// DynamoQueryAPI is the part of *dynamodb.Client the repository needs.
type DynamoQueryAPI interface {
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

type lineItemItem struct {
	Description string `dynamodbav:"description"`
	Quantity    int    `dynamodbav:"quantity"`
	UnitPrice   int64  `dynamodbav:"unit_price"`
}

type workshopItem struct {
	Name     string  `dynamodbav:"name"`
	Document string  `dynamodbav:"document"`
	Phone    *string `dynamodbav:"phone,omitempty"`
	Email    *string `dynamodbav:"email,omitempty"`
	Address  *string `dynamodbav:"address,omitempty"`
}

type vehicleItem struct {
	Plate string  `dynamodbav:"plate"`
	Brand string  `dynamodbav:"brand"`
	Model string  `dynamodbav:"model"`
	Year  *int    `dynamodbav:"year,omitempty"`
	Color *string `dynamodbav:"color,omitempty"`
}

type mediaItem struct {
	Type    string  `dynamodbav:"type"`
	URL     string  `dynamodbav:"url"`
	Caption *string `dynamodbav:"caption,omitempty"`
}

type quoteItem struct {
	ID           string         `dynamodbav:"id"`
	PublicToken  string         `dynamodbav:"public_token"`
	Description  string         `dynamodbav:"description"`
	Observations *string        `dynamodbav:"observations,omitempty"`
	Status       string         `dynamodbav:"status"`
	TotalAmount  int64          `dynamodbav:"total_amount"`
	Items        []lineItemItem `dynamodbav:"items"`
	CreatedAt    string         `dynamodbav:"created_at"`
	ExpiresAt    string         `dynamodbav:"expires_at,omitempty"`
	Workshop     workshopItem   `dynamodbav:"workshop"`
	CustomerName string         `dynamodbav:"customer_name"`
	Vehicle      vehicleItem    `dynamodbav:"vehicle"`
	Media        []mediaItem    `dynamodbav:"media"`
}

// QuoteDynamoRepository reads quote documents from DynamoDB.
//
// Table requirements:
//   - PK: id (string, the service order id)
//   - GSI: public_token-index (PK: public_token, projection ALL)
//
// Each item is the quote already joined with its workshop, customer, vehicle,
// items and media, so a lookup is a single query.

type QuoteDynamoRepository struct {
	ddb       DynamoQueryAPI
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb DynamoQueryAPI, tableName string) *QuoteDynamoRepository {
	if tableName == "" {
		tableName = DefaultQuotesTableName
	}
	return &QuoteDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *QuoteDynamoRepository) GetByPublicToken(ctx context.Context, token string) (entities.QuoteRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesPublicTokenIndex),
		KeyConditionExpression: aws.String("#token = :token"),
		ExpressionAttributeNames: map[string]string{
			"#token": "public_token",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":token": &types.AttributeValueMemberS{Value: token},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.QuoteRecord{}, err
	}
	if len(out.Items) == 0 {
		return entities.QuoteRecord{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.QuoteRecord{}, err
	}
	return fromQuoteItem(it)
}

func toQuoteItem(q entities.QuoteRecord) quoteItem {
	items := make([]lineItemItem, 0, len(q.Items))
	for _, li := range q.Items {
		items = append(items, lineItemItem{Description: li.Description, Quantity: li.Quantity, UnitPrice: li.UnitPrice})
	}
	media := make([]mediaItem, 0, len(q.Media))
	for _, m := range q.Media {
		media = append(media, mediaItem{Type: string(m.Type), URL: m.URL, Caption: m.Caption})
	}
	return quoteItem{
		ID:           q.OrderID,
		PublicToken:  q.PublicToken,
		Description:  q.Description,
		Observations: q.Observations,
		Status:       string(q.Status),
		TotalAmount:  q.TotalAmount,
		Items:        items,
		CreatedAt:    formatTime(q.CreatedAt),
		ExpiresAt:    formatOptionalTime(q.ExpiresAt),
		Workshop: workshopItem{
			Name:     q.Workshop.Name,
			Document: q.Workshop.Document,
			Phone:    q.Workshop.Phone,
			Email:    q.Workshop.Email,
			Address:  q.Workshop.Address,
		},
		CustomerName: q.Customer.Name,
		Vehicle: vehicleItem{
			Plate: q.Vehicle.Plate,
			Brand: q.Vehicle.Brand,
			Model: q.Vehicle.Model,
			Year:  q.Vehicle.Year,
			Color: q.Vehicle.Color,
		},
		Media: media,
	}
}

func fromQuoteItem(it quoteItem) (entities.QuoteRecord, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, it.CreatedAt)
	if err != nil {
		return entities.QuoteRecord{}, fmt.Errorf("quote %s: created_at: %w", it.ID, err)
	}
	expiresAt, err := parseOptionalTime(it.ExpiresAt)
	if err != nil {
		return entities.QuoteRecord{}, fmt.Errorf("quote %s: expires_at: %w", it.ID, err)
	}

	items := make([]entities.LineItem, 0, len(it.Items))
	for _, li := range it.Items {
		items = append(items, entities.LineItem{Description: li.Description, Quantity: li.Quantity, UnitPrice: li.UnitPrice})
	}
	media := make([]entities.Media, 0, len(it.Media))
	for _, m := range it.Media {
		media = append(media, entities.Media{Type: entities.MediaType(m.Type), URL: m.URL, Caption: m.Caption})
	}

	return entities.QuoteRecord{
		OrderID:      it.ID,
		PublicToken:  it.PublicToken,
		Description:  it.Description,
		Observations: it.Observations,
		Status:       entities.OrderStatus(it.Status),
		TotalAmount:  it.TotalAmount,
		Items:        items,
		CreatedAt:    createdAt,
		ExpiresAt:    expiresAt,
		Workshop: entities.Workshop{
			Name:     it.Workshop.Name,
			Document: it.Workshop.Document,
			Phone:    it.Workshop.Phone,
			Email:    it.Workshop.Email,
			Address:  it.Workshop.Address,
		},
		Customer: entities.Customer{Name: it.CustomerName},
		Vehicle: entities.Vehicle{
			Plate: it.Vehicle.Plate,
			Brand: it.Vehicle.Brand,
			Model: it.Vehicle.Model,
			Year:  it.Vehicle.Year,
			Color: it.Vehicle.Color,
		},
		Media: media,
	}, nil
}
