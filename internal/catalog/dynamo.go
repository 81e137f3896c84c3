package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"

	"github.com/GjorgiG/ds-assignment2/internal/model"
)

const keyAttribute = "imageName"

// dynamoAPI is the subset of the DynamoDB client used by DynamoStore.
type dynamoAPI interface {
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// DynamoStore implements Store on a DynamoDB table partitioned by imageName.
type DynamoStore struct {
	client dynamoAPI
	table  string
}

// NewDynamoStore returns a store backed by the given table.
func NewDynamoStore(client dynamoAPI, table string) *DynamoStore {
	return &DynamoStore{client: client, table: table}
}

func (s *DynamoStore) Upsert(ctx context.Context, rec model.ImageRecord) error {
	// if_not_exists keeps replayed Created events state-identical: the
	// original uploadedAt survives, and metadata accrued between delivery
	// and redelivery is never clobbered. The empty map seeds the document
	// path for later per-field updates.
	_, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(s.table),
		Key:              recordKey(rec.ImageName),
		UpdateExpression: aws.String("SET uploadedAt = if_not_exists(uploadedAt, :t), #s = :s, metadata = if_not_exists(metadata, :m)"),
		ExpressionAttributeNames: map[string]string{
			"#s": "status",
		},
		ExpressionAttributeValues: map[string]ddbtypes.AttributeValue{
			":t": &ddbtypes.AttributeValueMemberS{Value: rec.UploadedAt},
			":s": &ddbtypes.AttributeValueMemberS{Value: rec.Status},
			":m": &ddbtypes.AttributeValueMemberM{Value: map[string]ddbtypes.AttributeValue{}},
		},
	})
	if err != nil {
		return fmt.Errorf("upsert record %q: %w", rec.ImageName, err)
	}
	return nil
}

func (s *DynamoStore) Delete(ctx context.Context, imageName string) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.table),
		Key:       recordKey(imageName),
	})
	if err != nil {
		return fmt.Errorf("delete record %q: %w", imageName, err)
	}
	return nil
}

func (s *DynamoStore) SetMetadataField(ctx context.Context, imageName, field, value string) error {
	_, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.table),
		Key:                 recordKey(imageName),
		UpdateExpression:    aws.String("SET metadata.#f = :v"),
		ConditionExpression: aws.String("attribute_exists(imageName)"),
		ExpressionAttributeNames: map[string]string{
			"#f": field,
		},
		ExpressionAttributeValues: map[string]ddbtypes.AttributeValue{
			":v": &ddbtypes.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return ErrNotFound
		}
		return fmt.Errorf("update %s on record %q: %w", field, imageName, err)
	}
	return nil
}

func (s *DynamoStore) Get(ctx context.Context, imageName string) (*model.ImageRecord, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key:       recordKey(imageName),
	})
	if err != nil {
		return nil, fmt.Errorf("get record %q: %w", imageName, err)
	}
	if len(out.Item) == 0 {
		return nil, ErrNotFound
	}

	var rec model.ImageRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal record %q: %w", imageName, err)
	}
	return &rec, nil
}

func recordKey(imageName string) map[string]ddbtypes.AttributeValue {
	return map[string]ddbtypes.AttributeValue{
		keyAttribute: &ddbtypes.AttributeValueMemberS{Value: imageName},
	}
}

func isConditionalCheckFailed(err error) bool {
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == "ConditionalCheckFailedException"
}
