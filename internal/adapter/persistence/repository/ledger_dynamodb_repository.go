package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"partsdesk/internal/domain/entities"
	"partsdesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const defaultLedgerTableName = "ledger"

var ErrMovementNotFound = errors.New("ledger movement not found")
var ErrMovementAlreadyReversed = errors.New("ledger movement already reversed")
var ErrMovementNotReversed = errors.New("ledger movement is not reversed")

// Ledger item key layout (single table):
//   - profile#<client_id>  — credit profile (has_credit_account, balance, credit_limit)
//   - mov#<uuid>           — one balance movement, linked to its transaction
//
// Movements are append-only: a reversal posts an opposite movement and marks
// the original reversed, never deletes it.

type profileItem struct {
	ID               string  `dynamodbav:"id"`
	ClientID         string  `dynamodbav:"client_id"`
	HasCreditAccount bool    `dynamodbav:"has_credit_account"`
	Balance          float64 `dynamodbav:"balance"`
	CreditLimit      string  `dynamodbav:"credit_limit,omitempty"`
}

type movementItem struct {
	ID            string `dynamodbav:"id"`
	ClientID      string `dynamodbav:"client_id"`
	Amount        string `dynamodbav:"amount"`
	TransactionID string `dynamodbav:"transaction_id,omitempty"`
	ReversalOf    string `dynamodbav:"reversal_of,omitempty"`
	Reversed      bool   `dynamodbav:"reversed"`
	CreatedAt     string `dynamodbav:"created_at"`
}

type LedgerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClientLedger = (*LedgerDynamoRepository)(nil)

func NewLedgerDynamoRepository(ddb *dynamodb.Client) *LedgerDynamoRepository {
	return &LedgerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LEDGER_TABLE", defaultLedgerTableName),
	}
}

// GetProfile loads a client's credit profile. A missing profile item maps to
// a profile without a credit account, so the credit policy fails closed.
func (r *LedgerDynamoRepository) GetProfile(ctx context.Context, clientID string) (entities.ClientCreditProfile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: "profile#" + clientID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ClientCreditProfile{}, err
	}
	if len(out.Item) == 0 {
		return entities.ClientCreditProfile{ClientID: clientID}, nil
	}

	var it profileItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ClientCreditProfile{}, err
	}

	profile := entities.ClientCreditProfile{
		ClientID:         clientID,
		HasCreditAccount: it.HasCreditAccount,
		Balance:          it.Balance,
	}
	if it.CreditLimit != "" {
		limit, err := strconv.ParseFloat(it.CreditLimit, 64)
		if err == nil {
			profile.CreditLimit = &limit
		}
	}
	return profile, nil
}

// PostMovement appends a movement and bumps the profile balance in one
// DynamoDB transaction.
func (r *LedgerDynamoRepository) PostMovement(ctx context.Context, clientID string, amount float64, transactionID string) (string, error) {
	movementID := "mov#" + uuid.NewString()
	av, err := attributevalue.MarshalMap(movementItem{
		ID:            movementID,
		ClientID:      clientID,
		Amount:        floatToString(amount),
		TransactionID: transactionID,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return "", err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			r.balanceAdjustment(clientID, amount),
		},
	})
	if err != nil {
		return "", err
	}
	return movementID, nil
}

// ReverseMovement posts the opposite movement, marks the original reversed
// and restores the profile balance, atomically. Reversing twice fails on the
// condition expression.
func (r *LedgerDynamoRepository) ReverseMovement(ctx context.Context, movementID string) error {
	original, err := r.getMovement(ctx, movementID)
	if err != nil {
		return err
	}
	if original.ID == "" {
		return ErrMovementNotFound
	}
	if original.Reversed {
		return ErrMovementAlreadyReversed
	}

	amount, err := strconv.ParseFloat(original.Amount, 64)
	if err != nil {
		return err
	}

	av, err := attributevalue.MarshalMap(movementItem{
		ID:            "mov#" + uuid.NewString(),
		ClientID:      original.ClientID,
		Amount:        floatToString(-amount),
		TransactionID: original.TransactionID,
		ReversalOf:    original.ID,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName: aws.String(r.tableName),
					Item:      av,
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: original.ID},
					},
					UpdateExpression:    aws.String("SET #rev = :true"),
					ConditionExpression: aws.String("attribute_exists(#id) AND #rev <> :true"),
					ExpressionAttributeNames: map[string]string{
						"#id":  "id",
						"#rev": "reversed",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":true": &types.AttributeValueMemberBOOL{Value: true},
					},
				},
			},
			r.balanceAdjustment(original.ClientID, -amount),
		},
	})
	if err != nil {
		var canceled *types.TransactionCanceledException
		if errors.As(err, &canceled) {
			return ErrMovementAlreadyReversed
		}
		return err
	}
	return nil
}

// ReinstateMovement undoes a reversal: posts a movement re-applying the
// original amount, clears the reversed flag and restores the balance, all
// atomically. The original becomes reversible again for a retried cancel.
func (r *LedgerDynamoRepository) ReinstateMovement(ctx context.Context, movementID string) error {
	original, err := r.getMovement(ctx, movementID)
	if err != nil {
		return err
	}
	if original.ID == "" {
		return ErrMovementNotFound
	}
	if !original.Reversed {
		return ErrMovementNotReversed
	}

	amount, err := strconv.ParseFloat(original.Amount, 64)
	if err != nil {
		return err
	}

	av, err := attributevalue.MarshalMap(movementItem{
		ID:            "mov#" + uuid.NewString(),
		ClientID:      original.ClientID,
		Amount:        floatToString(amount),
		TransactionID: original.TransactionID,
		ReversalOf:    original.ID,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName: aws.String(r.tableName),
					Item:      av,
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: original.ID},
					},
					UpdateExpression:    aws.String("SET #rev = :false"),
					ConditionExpression: aws.String("attribute_exists(#id) AND #rev = :true"),
					ExpressionAttributeNames: map[string]string{
						"#id":  "id",
						"#rev": "reversed",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":true":  &types.AttributeValueMemberBOOL{Value: true},
						":false": &types.AttributeValueMemberBOOL{Value: false},
					},
				},
			},
			r.balanceAdjustment(original.ClientID, amount),
		},
	})
	if err != nil {
		var canceled *types.TransactionCanceledException
		if errors.As(err, &canceled) {
			return ErrMovementNotReversed
		}
		return err
	}
	return nil
}

func (r *LedgerDynamoRepository) getMovement(ctx context.Context, movementID string) (movementItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: movementID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return movementItem{}, err
	}
	if len(out.Item) == 0 {
		return movementItem{}, nil
	}

	var it movementItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return movementItem{}, err
	}
	return it, nil
}

// balanceAdjustment builds the profile-balance update for a transact write.
// Balance is a number attribute so ADD stays atomic.
func (r *LedgerDynamoRepository) balanceAdjustment(clientID string, amount float64) types.TransactWriteItem {
	return types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: "profile#" + clientID},
			},
			UpdateExpression:    aws.String("ADD #bal :amount"),
			ConditionExpression: aws.String("attribute_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id":  "id",
				"#bal": "balance",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":amount": &types.AttributeValueMemberN{Value: floatToString(amount)},
			},
		},
	}
}
