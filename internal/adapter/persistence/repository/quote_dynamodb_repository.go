package repository

import (
	"context"
	"os"
	"time"

	"condado_dog/internal/domain/entities"
	"condado_dog/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultQuotesTableName = "quotes"

type quoteItem struct {
	ID               string   `dynamodbav:"id"`
	OwnerName        string   `dynamodbav:"owner_name"`
	PetNames         []string `dynamodbav:"pet_names"`
	DogCount         int      `dynamodbav:"dog_count"`
	CheckIn          string   `dynamodbav:"check_in"`
	CheckOut         string   `dynamodbav:"check_out"`
	HighSeason       bool     `dynamodbav:"high_season"`
	ClientType       string   `dynamodbav:"client_type"`
	PlanWeekdays     []int    `dynamodbav:"plan_weekdays"`
	BillableUnits    string   `dynamodbav:"billable_units"`
	UnitPrice        string   `dynamodbav:"unit_price"`
	GrossTotal       string   `dynamodbav:"gross_total"`
	DiscountTotal    string   `dynamodbav:"discount_total"`
	MatchingDayCount int      `dynamodbav:"matching_day_count"`
	FinalTotal       string   `dynamodbav:"final_total"`
	Note             string   `dynamodbav:"note"`
	CreatedAt        string   `dynamodbav:"created_at"`
}

// QuoteDynamoRepository persists finished quotes in DynamoDB.
//
// Table requirements:
//   - PK: id (string, uuid)
//
// Quotes are an append-only audit log; monetary fields are stored as
// decimal strings so no precision is lost in transit.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	it := toQuoteItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
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
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:               q.ID,
		OwnerName:        q.OwnerName,
		PetNames:         q.PetNames,
		DogCount:         q.DogCount,
		CheckIn:          q.CheckIn.UTC().Format(time.RFC3339Nano),
		CheckOut:         q.CheckOut.UTC().Format(time.RFC3339Nano),
		HighSeason:       q.HighSeason,
		ClientType:       string(q.ClientType),
		PlanWeekdays:     q.PlanWeekdays,
		BillableUnits:    q.BillableUnits.String(),
		UnitPrice:        q.UnitPrice.String(),
		GrossTotal:       q.GrossTotal.String(),
		DiscountTotal:    q.DiscountTotal.String(),
		MatchingDayCount: q.MatchingDayCount,
		FinalTotal:       q.FinalTotal.String(),
		Note:             q.Note,
		CreatedAt:        q.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	checkIn, _ := time.Parse(time.RFC3339Nano, it.CheckIn)
	checkOut, _ := time.Parse(time.RFC3339Nano, it.CheckOut)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	units, _ := decimal.NewFromString(it.BillableUnits)
	unitPrice, _ := decimal.NewFromString(it.UnitPrice)
	gross, _ := decimal.NewFromString(it.GrossTotal)
	discount, _ := decimal.NewFromString(it.DiscountTotal)
	final, _ := decimal.NewFromString(it.FinalTotal)
	return entities.Quote{
		ID:               it.ID,
		OwnerName:        it.OwnerName,
		PetNames:         it.PetNames,
		DogCount:         it.DogCount,
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		HighSeason:       it.HighSeason,
		ClientType:       entities.ClientType(it.ClientType),
		PlanWeekdays:     it.PlanWeekdays,
		BillableUnits:    units,
		UnitPrice:        unitPrice,
		GrossTotal:       gross,
		DiscountTotal:    discount,
		MatchingDayCount: it.MatchingDayCount,
		FinalTotal:       final,
		Note:             it.Note,
		CreatedAt:        createdAt,
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
