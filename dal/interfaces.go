package dal

import (
	"context"
	"fieldops-backend/models"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DatabaseClientInterface is the persistence surface the repositories build
// on. Writes are whole-document puts; partial updates go through a read,
// mutate, put cycle in the repository layer so entity invariants stay in one
// place.
type DatabaseClientInterface interface {
	GetItem(ctx context.Context, config models.QueryConfig, result interface{}) error
	PutItem(ctx context.Context, tableName string, item interface{}) error
	DeleteItem(ctx context.Context, tableName, key, value string) error

	QueryByIndex(ctx context.Context, tableName, indexName, keyName, keyValue string, results interface{}) error
	ScanTable(ctx context.Context, tableName string, results interface{}) error

	// Table bootstrap, used by infrastructure at startup
	CreateTable(ctx context.Context, input *dynamodb.CreateTableInput) error
	DescribeTable(ctx context.Context, tableName string) (*dynamodb.DescribeTableOutput, error)
}
