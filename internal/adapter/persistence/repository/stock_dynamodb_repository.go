package repository

import (
	"context"
	"errors"
	"strconv"

	"partsdesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultStockTableName = "stock"

// StockDynamoRepository stores stock levels in DynamoDB.
//
// Table requirements:
//   - PK: product_id (string); attribute quantity (number)
//
// Adjust relies on ADD being atomic; the non-negative guard is a condition
// expression so concurrent deliveries against the same product cannot race
// the level below zero.

type StockDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IStockStore = (*StockDynamoRepository)(nil)

func NewStockDynamoRepository(ddb *dynamodb.Client) *StockDynamoRepository {
	return &StockDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("STOCK_TABLE", defaultStockTableName),
	}
}

func (r *StockDynamoRepository) GetStock(ctx context.Context, productID string) (int, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"product_id": &types.AttributeValueMemberS{Value: productID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return 0, err
	}
	if len(out.Item) == 0 {
		return 0, nil
	}

	n, ok := out.Item["quantity"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, nil
	}
	qty, err := strconv.Atoi(n.Value)
	if err != nil {
		return 0, err
	}
	return qty, nil
}

func (r *StockDynamoRepository) Adjust(ctx context.Context, productID string, delta int, allowNegative bool) (int, error) {
	in := &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"product_id": &types.AttributeValueMemberS{Value: productID},
		},
		UpdateExpression: aws.String("ADD #q :delta"),
		ExpressionAttributeNames: map[string]string{
			"#q": "quantity",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":delta": &types.AttributeValueMemberN{Value: strconv.Itoa(delta)},
		},
		ReturnValues: types.ReturnValueAllNew,
	}

	if !allowNegative && delta < 0 {
		in.ConditionExpression = aws.String("#q >= :need")
		in.ExpressionAttributeValues[":need"] = &types.AttributeValueMemberN{Value: strconv.Itoa(-delta)}
	}

	out, err := r.ddb.UpdateItem(ctx, in)
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return 0, interfaces.ErrInsufficientStock
		}
		return 0, err
	}

	n, ok := out.Attributes["quantity"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, nil
	}
	return strconv.Atoi(n.Value)
}
