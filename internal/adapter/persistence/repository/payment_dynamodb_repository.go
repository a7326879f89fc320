package repository

import (
	"context"
	"fmt"
	"strings"

	"linkpago/internal/domain/entities"
	"linkpago/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	DefaultPaymentsTableName = "payments"
	paymentsCVUIndex         = "cvu-index"
	paymentsMerchantIndex    = "merchant_id-index"
)

type paymentOriginItem struct {
	Holder  string `dynamodbav:"titular"`
	Account string `dynamodbav:"cvu"`
	TaxID   string `dynamodbav:"cuit"`
	Bank    string `dynamodbav:"banco"`
}

type paymentClosureItem struct {
	Blocked  bool   `dynamodbav:"bloqueado"`
	ClosedAt string `dynamodbav:"cerrado_en"`
}

type paymentItem struct {
	OrderID         string              `dynamodbav:"order_id"`
	MerchantID      string              `dynamodbav:"merchant_id"`
	Amount          string              `dynamodbav:"amount"`
	Description     string              `dynamodbav:"description,omitempty"`
	CustomerEmail   string              `dynamodbav:"customer_email,omitempty"`
	Status          string              `dynamodbav:"status"`
	RejectionReason string              `dynamodbav:"motivo_rechazo,omitempty"`
	CreatedAt       string              `dynamodbav:"created_at"`
	ExpiresAt       string              `dynamodbav:"expires_at,omitempty"`
	UpdatedAt       string              `dynamodbav:"updated_at"`
	Alias           string              `dynamodbav:"alias"`
	CVU             string              `dynamodbav:"cvu,omitempty"`
	CustomerID      string              `dynamodbav:"customer_id"`
	Holder          string              `dynamodbav:"titular,omitempty"`
	Origin          *paymentOriginItem  `dynamodbav:"origen,omitempty"`
	Closure         *paymentClosureItem `dynamodbav:"closure,omitempty"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: order_id (string)
//   - GSI: cvu-index (PK: cvu)
//   - GSI: merchant_id-index (PK: merchant_id, SK: created_at)
//
// Every state change is a conditional put on the current status, so concurrent
// webhook deliveries and reads cannot overwrite each other's transition.

type PaymentDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client, tableName string) *PaymentDynamoRepository {
	return newPaymentDynamoRepository(ddb, tableName)
}

func newPaymentDynamoRepository(ddb dynamoAPI, tableName string) *PaymentDynamoRepository {
	if tableName == "" {
		tableName = DefaultPaymentsTableName
	}
	return &PaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#order_id)"),
		ExpressionAttributeNames: map[string]string{
			"#order_id": "order_id",
		},
	})
	if err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByOrderID(ctx context.Context, orderID string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}
	return unmarshalPayment(out.Item)
}

// GetByAccountNumber resolves the payment owning a CVU. The GSI read is eventually
// consistent, so the match is re-read by primary key.
func (r *PaymentDynamoRepository) GetByAccountNumber(ctx context.Context, cvu string) (entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsCVUIndex),
		KeyConditionExpression: aws.String("cvu = :cvu"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cvu": &types.AttributeValueMemberS{Value: cvu},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Items) == 0 {
		return entities.Payment{}, nil
	}
	p, err := unmarshalPayment(out.Items[0])
	if err != nil {
		return entities.Payment{}, err
	}
	return r.GetByOrderID(ctx, p.OrderID)
}

// ListByMerchantID returns the merchant's payments newest first.
func (r *PaymentDynamoRepository) ListByMerchantID(ctx context.Context, merchantID string) ([]entities.Payment, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsMerchantIndex),
		KeyConditionExpression: aws.String("merchant_id = :mid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":mid": &types.AttributeValueMemberS{Value: merchantID},
		},
		ScanIndexForward: aws.Bool(false),
	}

	payments := make([]entities.Payment, 0)
	for {
		out, err := r.ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			p, err := unmarshalPayment(raw)
			if err != nil {
				return nil, err
			}
			payments = append(payments, p)
		}
		if len(out.LastEvaluatedKey) == 0 {
			return payments, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

// Transition writes next only while the stored status is one of from. A failed
// condition returns a zero Payment and no error.
func (r *PaymentDynamoRepository) Transition(ctx context.Context, from []entities.PaymentStatus, next entities.Payment) (entities.Payment, error) {
	if len(from) == 0 {
		return entities.Payment{}, fmt.Errorf("transition of %s: no source status", next.OrderID)
	}
	av, err := attributevalue.MarshalMap(toPaymentItem(next))
	if err != nil {
		return entities.Payment{}, err
	}

	placeholders := make([]string, 0, len(from))
	values := make(map[string]types.AttributeValue, len(from))
	for i, s := range from {
		key := fmt.Sprintf(":s%d", i)
		placeholders = append(placeholders, key)
		values[key] = &types.AttributeValueMemberS{Value: string(s)}
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
		ConditionExpression: aws.String(fmt.Sprintf(
			"attribute_exists(#order_id) AND #status IN (%s)", strings.Join(placeholders, ", "))),
		ExpressionAttributeNames: mergeNames(
			map[string]string{"#status": "status"},
			map[string]string{"#order_id": "order_id"},
		),
		ExpressionAttributeValues: values,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Payment{}, nil
		}
		return entities.Payment{}, err
	}
	return next, nil
}

// Overwrite replaces an existing record regardless of its status.
func (r *PaymentDynamoRepository) Overwrite(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#order_id)"),
		ExpressionAttributeNames: map[string]string{
			"#order_id": "order_id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Payment{}, nil
		}
		return entities.Payment{}, err
	}
	return p, nil
}

func unmarshalPayment(raw map[string]types.AttributeValue) (entities.Payment, error) {
	var it paymentItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it)
}

func toPaymentItem(p entities.Payment) paymentItem {
	it := paymentItem{
		OrderID:         p.OrderID,
		MerchantID:      p.MerchantID,
		Amount:          p.Amount.String(),
		Description:     p.Description,
		CustomerEmail:   p.CustomerEmail,
		Status:          string(p.Status),
		RejectionReason: p.RejectionReason,
		CreatedAt:       formatTime(p.CreatedAt),
		UpdatedAt:       formatTime(p.UpdatedAt),
		Alias:           p.PaymentInfo.Alias,
		CVU:             p.PaymentInfo.CVU,
		CustomerID:      p.PaymentInfo.CustomerID,
		Holder:          p.PaymentInfo.Holder,
	}
	if p.ExpiresAt != nil {
		it.ExpiresAt = formatTime(*p.ExpiresAt)
	}
	if o := p.PaymentInfo.Origin; o != nil {
		it.Origin = &paymentOriginItem{Holder: o.Holder, Account: o.Account, TaxID: o.TaxID, Bank: o.Bank}
	}
	if c := p.PaymentInfo.Closure; c != nil {
		it.Closure = &paymentClosureItem{Blocked: c.Blocked, ClosedAt: formatTime(c.ClosedAt)}
	}
	return it
}

func fromPaymentItem(it paymentItem) (entities.Payment, error) {
	amount, err := decimal.NewFromString(it.Amount)
	if err != nil {
		return entities.Payment{}, fmt.Errorf("payment %s: invalid amount %q: %w", it.OrderID, it.Amount, err)
	}
	p := entities.Payment{
		OrderID:         it.OrderID,
		MerchantID:      it.MerchantID,
		Amount:          amount,
		Description:     it.Description,
		CustomerEmail:   it.CustomerEmail,
		Status:          entities.PaymentStatus(it.Status),
		RejectionReason: it.RejectionReason,
		CreatedAt:       parseTime(it.CreatedAt),
		ExpiresAt:       parseOptionalTime(it.ExpiresAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
		PaymentInfo: entities.PaymentInfo{
			Alias:      it.Alias,
			CVU:        it.CVU,
			CustomerID: it.CustomerID,
			Holder:     it.Holder,
		},
	}
	if o := it.Origin; o != nil {
		p.PaymentInfo.Origin = &entities.PaymentOrigin{Holder: o.Holder, Account: o.Account, TaxID: o.TaxID, Bank: o.Bank}
	}
	if c := it.Closure; c != nil {
		p.PaymentInfo.Closure = &entities.AccountClosure{Blocked: c.Blocked, ClosedAt: parseTime(c.ClosedAt)}
	}
	return p, nil
}
