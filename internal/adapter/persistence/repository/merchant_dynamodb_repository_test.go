package repository

import (
	"context"
	"testing"
	"time"

	"linkpago/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMerchant() entities.Merchant {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return entities.Merchant{
		ID:                    "8b0e4a52-8f8e-4c55-9a57-3f1c2f1d5c11",
		Name:                  "Tienda Demo",
		CucuruAPIKey:          "key-1",
		CucuruCollectorID:     "col-1",
		AliasPrefix:           "tienda",
		DefaultExpiresInHours: 1.5,
		ContactEmail:          "ops@tienda.com",
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}

func TestMerchantItemMapping(t *testing.T) {
	m := sampleMerchant()

	av, err := attributevalue.MarshalMap(toMerchantItem(m))
	require.NoError(t, err)
	assert.Equal(t, &types.AttributeValueMemberN{Value: "1.5"}, av["default_expires_in_hours"])
	assert.NotContains(t, av, "notes")

	var it merchantItem
	require.NoError(t, attributevalue.UnmarshalMap(av, &it))
	assert.Equal(t, m, fromMerchantItem(it))
}

func TestMerchantDynamoRepository(t *testing.T) {
	t.Run("create is conditional on new id", func(t *testing.T) {
		stub := &stubDynamo{}
		repo := newMerchantDynamoRepository(stub, "")

		_, err := repo.Create(context.Background(), sampleMerchant())
		require.NoError(t, err)
		assert.Equal(t, "clients", aws.ToString(stub.puts[0].TableName))
		assert.Equal(t, "attribute_not_exists(#id)", aws.ToString(stub.puts[0].ConditionExpression))
	})

	t.Run("update of missing merchant returns zero value", func(t *testing.T) {
		stub := &stubDynamo{putErr: &types.ConditionalCheckFailedException{}}
		repo := newMerchantDynamoRepository(stub, "clients")

		got, err := repo.Update(context.Background(), sampleMerchant())
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})

	t.Run("get missing", func(t *testing.T) {
		repo := newMerchantDynamoRepository(&stubDynamo{}, "clients")

		got, err := repo.GetByID(context.Background(), "nope")
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})

	t.Run("list follows scan pages", func(t *testing.T) {
		a := sampleMerchant()
		b := sampleMerchant()
		b.ID = "other"
		avA, err := attributevalue.MarshalMap(toMerchantItem(a))
		require.NoError(t, err)
		avB, err := attributevalue.MarshalMap(toMerchantItem(b))
		require.NoError(t, err)

		stub := &stubDynamo{scanOuts: []*dynamodb.ScanOutput{
			{Items: []map[string]types.AttributeValue{avA}, LastEvaluatedKey: map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: a.ID}}},
			{Items: []map[string]types.AttributeValue{avB}},
		}}
		repo := newMerchantDynamoRepository(stub, "clients")

		got, err := repo.List(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "other", got[1].ID)
	})
}
