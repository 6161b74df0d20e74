package repository

import (
	"context"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"partsdesk/internal/domain/entities"
	"partsdesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTransactionsTableName = "transactions"
	defaultCountersTableName     = "counters"
	defaultListPageSize          = 50
)

type transactionLineItem struct {
	ID          string  `dynamodbav:"id"`
	ProductID   string  `dynamodbav:"product_id"`
	Quantity    int     `dynamodbav:"quantity"`
	Delivered   int     `dynamodbav:"delivered"`
	UnitPrice   string  `dynamodbav:"unit_price"`
	DiscountPct float64 `dynamodbav:"discount_pct"`
	Subtotal    string  `dynamodbav:"subtotal"`
}

type paymentItem struct {
	ID               string `dynamodbav:"id"`
	Type             string `dynamodbav:"type"`
	Amount           string `dynamodbav:"amount"`
	Description      string `dynamodbav:"description,omitempty"`
	LedgerMovementID string `dynamodbav:"ledger_movement_id,omitempty"`
	GatewayRef       string `dynamodbav:"gateway_ref,omitempty"`
}

type transactionItem struct {
	ID                string                `dynamodbav:"id"`
	DocumentNumber    string                `dynamodbav:"document_number"`
	Kind              string                `dynamodbav:"kind"`
	ClientID          string                `dynamodbav:"client_id,omitempty"`
	QuotationID       string                `dynamodbav:"quotation_id,omitempty"`
	Notes             string                `dynamodbav:"notes,omitempty"`
	Subtotal          string                `dynamodbav:"subtotal"`
	Discount          string                `dynamodbav:"discount"`
	Surcharge         string                `dynamodbav:"surcharge"`
	Total             string                `dynamodbav:"total"`
	Status            string                `dynamodbav:"status"`
	CancelReason      string                `dynamodbav:"cancel_reason,omitempty"`
	CancelledAt       string                `dynamodbav:"cancelled_at,omitempty"`
	Lines             []transactionLineItem `dynamodbav:"lines"`
	Payments          []paymentItem         `dynamodbav:"payments"`
	AppliedRequestIDs []string              `dynamodbav:"applied_request_ids,omitempty"`
	DocumentDate      string                `dynamodbav:"document_date"`
	CreatedAt         string                `dynamodbav:"created_at"`
	UpdatedAt         string                `dynamodbav:"updated_at"`
}

// TransactionDynamoRepository persists Transaction documents in DynamoDB.
//
// Table requirements:
//   - transactions table, PK: id (string); lines/payments embedded
//   - counters table, PK: id (string), attribute value (number) for the
//     sequential document numbers
//
// Monetary amounts are stored as exact decimal strings (same convention the
// rest of the repos use) to avoid float drift in storage.

type TransactionDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	countersTable string
}

var _ interfaces.ITransactionStore = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb *dynamodb.Client) *TransactionDynamoRepository {
	return &TransactionDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("TRANSACTIONS_TABLE", defaultTransactionsTableName),
		countersTable: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
	}
}

// NextDocumentNumber reserves the next sequential number for a kind using an
// atomic counter item (ADD is atomic in DynamoDB).
func (r *TransactionDynamoRepository) NextDocumentNumber(ctx context.Context, kind entities.TransactionKind) (string, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.countersTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: "docnum#" + string(kind)},
		},
		UpdateExpression: aws.String("ADD #v :one"),
		ExpressionAttributeNames: map[string]string{
			"#v": "value",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return "", err
	}

	n, ok := out.Attributes["value"].(*types.AttributeValueMemberN)
	if !ok {
		return "", fmt.Errorf("unexpected counter attribute for kind %s", kind)
	}
	seq, err := strconv.ParseInt(n.Value, 10, 64)
	if err != nil {
		return "", err
	}

	prefix := "V"
	if kind == entities.KindPresupuesto {
		prefix = "P"
	}
	return fmt.Sprintf("%s-%08d", prefix, seq), nil
}

func (r *TransactionDynamoRepository) Create(ctx context.Context, t entities.Transaction) (entities.Transaction, error) {
	av, err := attributevalue.MarshalMap(toTransactionItem(t))
	if err != nil {
		return entities.Transaction{}, err
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
		return entities.Transaction{}, err
	}
	return t, nil
}

func (r *TransactionDynamoRepository) Update(ctx context.Context, t entities.Transaction) (entities.Transaction, error) {
	av, err := attributevalue.MarshalMap(toTransactionItem(t))
	if err != nil {
		return entities.Transaction{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	return t, nil
}

func (r *TransactionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Transaction, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	if len(out.Item) == 0 {
		return entities.Transaction{}, nil
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it), nil
}

// List scans with filter expressions. The cursor is the base64-encoded id of
// the last evaluated item (the table key has a single attribute).
func (r *TransactionDynamoRepository) List(ctx context.Context, f interfaces.ListFilters) ([]entities.Transaction, string, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = defaultListPageSize
	}

	var exprParts []string
	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	if f.Kind != "" {
		exprParts = append(exprParts, "#kind = :kind")
		names["#kind"] = "kind"
		values[":kind"] = &types.AttributeValueMemberS{Value: string(f.Kind)}
	}
	if f.Status != "" {
		exprParts = append(exprParts, "#status = :status")
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(f.Status)}
	}
	if f.ClientID != "" {
		exprParts = append(exprParts, "#client_id = :client_id")
		names["#client_id"] = "client_id"
		values[":client_id"] = &types.AttributeValueMemberS{Value: f.ClientID}
	}

	in := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
		Limit:     aws.Int32(int32(limit)),
	}
	if len(exprParts) > 0 {
		in.FilterExpression = aws.String(strings.Join(exprParts, " AND "))
		in.ExpressionAttributeNames = names
		in.ExpressionAttributeValues = values
	}
	if f.Cursor != "" {
		lastID, err := base64.RawURLEncoding.DecodeString(f.Cursor)
		if err != nil {
			return nil, "", fmt.Errorf("invalid cursor: %w", err)
		}
		in.ExclusiveStartKey = map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: string(lastID)},
		}
	}

	out, err := r.ddb.Scan(ctx, in)
	if err != nil {
		return nil, "", err
	}

	items := make([]entities.Transaction, 0, len(out.Items))
	for _, raw := range out.Items {
		var it transactionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, "", err
		}
		items = append(items, fromTransactionItem(it))
	}

	next := ""
	if lek, ok := out.LastEvaluatedKey["id"].(*types.AttributeValueMemberS); ok {
		next = base64.RawURLEncoding.EncodeToString([]byte(lek.Value))
	}
	return items, next, nil
}

func toTransactionItem(t entities.Transaction) transactionItem {
	lines := make([]transactionLineItem, 0, len(t.Lines))
	for _, l := range t.Lines {
		lines = append(lines, transactionLineItem{
			ID:          l.ID,
			ProductID:   l.ProductID,
			Quantity:    l.Quantity,
			Delivered:   l.Delivered,
			UnitPrice:   floatToString(l.UnitPrice),
			DiscountPct: l.DiscountPct,
			Subtotal:    floatToString(l.Subtotal),
		})
	}
	payments := make([]paymentItem, 0, len(t.Payments))
	for _, p := range t.Payments {
		payments = append(payments, paymentItem{
			ID:               p.ID,
			Type:             string(p.Type),
			Amount:           floatToString(p.Amount),
			Description:      p.Description,
			LedgerMovementID: p.LedgerMovementID,
			GatewayRef:       p.GatewayRef,
		})
	}

	it := transactionItem{
		ID:                t.ID,
		DocumentNumber:    t.DocumentNumber,
		Kind:              string(t.Kind),
		Notes:             t.Notes,
		Subtotal:          floatToString(t.Subtotal),
		Discount:          floatToString(t.Discount),
		Surcharge:         floatToString(t.Surcharge),
		Total:             floatToString(t.Total),
		Status:            string(t.Status),
		CancelReason:      t.CancelReason,
		Lines:             lines,
		Payments:          payments,
		AppliedRequestIDs: t.AppliedRequestIDs,
		DocumentDate:      t.DocumentDate.UTC().Format(time.RFC3339Nano),
		CreatedAt:         t.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         t.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if t.ClientID != nil {
		it.ClientID = *t.ClientID
	}
	if t.QuotationID != nil {
		it.QuotationID = *t.QuotationID
	}
	if t.CancelledAt != nil {
		it.CancelledAt = t.CancelledAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromTransactionItem(it transactionItem) entities.Transaction {
	lines := make([]entities.TransactionLine, 0, len(it.Lines))
	for _, l := range it.Lines {
		unitPrice, _ := strconv.ParseFloat(l.UnitPrice, 64)
		subtotal, _ := strconv.ParseFloat(l.Subtotal, 64)
		lines = append(lines, entities.TransactionLine{
			ID:          l.ID,
			ProductID:   l.ProductID,
			Quantity:    l.Quantity,
			Delivered:   l.Delivered,
			UnitPrice:   unitPrice,
			DiscountPct: l.DiscountPct,
			Subtotal:    subtotal,
		})
	}
	payments := make([]entities.Payment, 0, len(it.Payments))
	for _, p := range it.Payments {
		amount, _ := strconv.ParseFloat(p.Amount, 64)
		payments = append(payments, entities.Payment{
			ID:               p.ID,
			Type:             entities.PaymentType(p.Type),
			Amount:           amount,
			Description:      p.Description,
			LedgerMovementID: p.LedgerMovementID,
			GatewayRef:       p.GatewayRef,
		})
	}

	subtotal, _ := strconv.ParseFloat(it.Subtotal, 64)
	discount, _ := strconv.ParseFloat(it.Discount, 64)
	surcharge, _ := strconv.ParseFloat(it.Surcharge, 64)
	total, _ := strconv.ParseFloat(it.Total, 64)
	documentDate, _ := time.Parse(time.RFC3339Nano, it.DocumentDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	t := entities.Transaction{
		ID:                it.ID,
		DocumentNumber:    it.DocumentNumber,
		Kind:              entities.TransactionKind(it.Kind),
		Notes:             it.Notes,
		Subtotal:          subtotal,
		Discount:          discount,
		Surcharge:         surcharge,
		Total:             total,
		Status:            entities.TransactionStatus(it.Status),
		CancelReason:      it.CancelReason,
		Lines:             lines,
		Payments:          payments,
		AppliedRequestIDs: it.AppliedRequestIDs,
		DocumentDate:      documentDate,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
	if it.ClientID != "" {
		clientID := it.ClientID
		t.ClientID = &clientID
	}
	if it.QuotationID != "" {
		quotationID := it.QuotationID
		t.QuotationID = &quotationID
	}
	if it.CancelledAt != "" {
		cancelledAt, err := time.Parse(time.RFC3339Nano, it.CancelledAt)
		if err == nil {
			t.CancelledAt = &cancelledAt
		}
	}
	return t
}
