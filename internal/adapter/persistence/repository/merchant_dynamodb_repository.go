package repository

import (
	"context"

	"linkpago/internal/domain/entities"
	"linkpago/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultClientsTableName = "clients"

type merchantItem struct {
	ID                    string  `dynamodbav:"id"`
	Name                  string  `dynamodbav:"name"`
	CucuruAPIKey          string  `dynamodbav:"cucuru_api_key"`
	CucuruCollectorID     string  `dynamodbav:"cucuru_collector_id"`
	AliasPrefix           string  `dynamodbav:"alias_prefix"`
	DefaultExpiresInHours float64 `dynamodbav:"default_expires_in_hours"`
	ContactEmail          string  `dynamodbav:"contact_email,omitempty"`
	Notes                 string  `dynamodbav:"notes,omitempty"`
	CreatedAt             string  `dynamodbav:"created_at"`
	UpdatedAt             string  `dynamodbav:"updated_at"`
}

// MerchantDynamoRepository persists Merchant (client) entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type MerchantDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IMerchantRepository = (*MerchantDynamoRepository)(nil)

func NewMerchantDynamoRepository(ddb *dynamodb.Client, tableName string) *MerchantDynamoRepository {
	return newMerchantDynamoRepository(ddb, tableName)
}

func newMerchantDynamoRepository(ddb dynamoAPI, tableName string) *MerchantDynamoRepository {
	if tableName == "" {
		tableName = DefaultClientsTableName
	}
	return &MerchantDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *MerchantDynamoRepository) Create(ctx context.Context, m entities.Merchant) (entities.Merchant, error) {
	if err := r.put(ctx, m, "attribute_not_exists(#id)"); err != nil {
		return entities.Merchant{}, err
	}
	return m, nil
}

func (r *MerchantDynamoRepository) GetByID(ctx context.Context, id string) (entities.Merchant, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Merchant{}, err
	}
	if len(out.Item) == 0 {
		return entities.Merchant{}, nil
	}

	var it merchantItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Merchant{}, err
	}
	return fromMerchantItem(it), nil
}

func (r *MerchantDynamoRepository) List(ctx context.Context) ([]entities.Merchant, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}

	merchants := make([]entities.Merchant, 0)
	for {
		out, err := r.ddb.Scan(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it merchantItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			merchants = append(merchants, fromMerchantItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			return merchants, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

// Update replaces an existing merchant. A missing record returns a zero Merchant.
func (r *MerchantDynamoRepository) Update(ctx context.Context, m entities.Merchant) (entities.Merchant, error) {
	if err := r.put(ctx, m, "attribute_exists(#id)"); err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Merchant{}, nil
		}
		return entities.Merchant{}, err
	}
	return m, nil
}

func (r *MerchantDynamoRepository) put(ctx context.Context, m entities.Merchant, condition string) error {
	av, err := attributevalue.MarshalMap(toMerchantItem(m))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String(condition),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func toMerchantItem(m entities.Merchant) merchantItem {
	return merchantItem{
		ID:                    m.ID,
		Name:                  m.Name,
		CucuruAPIKey:          m.CucuruAPIKey,
		CucuruCollectorID:     m.CucuruCollectorID,
		AliasPrefix:           m.AliasPrefix,
		DefaultExpiresInHours: m.DefaultExpiresInHours,
		ContactEmail:          m.ContactEmail,
		Notes:                 m.Notes,
		CreatedAt:             formatTime(m.CreatedAt),
		UpdatedAt:             formatTime(m.UpdatedAt),
	}
}

func fromMerchantItem(it merchantItem) entities.Merchant {
	return entities.Merchant{
		ID:                    it.ID,
		Name:                  it.Name,
		CucuruAPIKey:          it.CucuruAPIKey,
		CucuruCollectorID:     it.CucuruCollectorID,
		AliasPrefix:           it.AliasPrefix,
		DefaultExpiresInHours: it.DefaultExpiresInHours,
		ContactEmail:          it.ContactEmail,
		Notes:                 it.Notes,
		CreatedAt:             parseTime(it.CreatedAt),
		UpdatedAt:             parseTime(it.UpdatedAt),
	}
}
