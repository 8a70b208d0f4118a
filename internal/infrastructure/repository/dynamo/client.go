// Package dynamo persists selections and team scores in DynamoDB.
package dynamo

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
)

// API is the slice of the DynamoDB client the repositories use, kept small
// so tests can stub it.
type API interface {
	GetItemWithContext(ctx aws.Context, input *dynamodb.GetItemInput, opts ...request.Option) (*dynamodb.GetItemOutput, error)
	PutItemWithContext(ctx aws.Context, input *dynamodb.PutItemInput, opts ...request.Option) (*dynamodb.PutItemOutput, error)
	ScanPagesWithContext(ctx aws.Context, input *dynamodb.ScanInput, fn func(*dynamodb.ScanOutput, bool) bool, opts ...request.Option) error
}

var _ API = dynamodbiface.DynamoDBAPI(nil)

// NewClient builds a DynamoDB client. An empty endpoint uses the regional
// default; set one to target DynamoDB Local.
func NewClient(region, endpoint string) *dynamodb.DynamoDB {
	cfg := aws.NewConfig().WithRegion(region)
	if endpoint != "" {
		cfg = cfg.WithEndpoint(endpoint)
	}
	return dynamodb.New(session.Must(session.NewSession()), cfg)
}
