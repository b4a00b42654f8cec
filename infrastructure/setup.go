package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fieldops-backend/dal"
	"fieldops-backend/models"
	"fieldops-backend/utils/logger"

	"github.com/aws/smithy-go"
)

// EnsureTables describes every configured table and creates the missing
// ones from the embedded schema. It is safe to call on every startup.
func EnsureTables(ctx context.Context, db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) error {
	for _, base := range cfg.Tables {
		tableName := cfg.DynamoDBTablePrefix + "_" + base

		_, err := db.DescribeTable(ctx, tableName)
		if err == nil {
			log.Debugf("Table %s already exists", tableName)
			continue
		}
		if !isTableNotFound(err) {
			return fmt.Errorf("failed to describe table %s: %w", tableName, err)
		}

		input, err := GetTableInput(tableName)
		if err != nil {
			return err
		}

		log.Infof("Creating table %s", tableName)
		if err := db.CreateTable(ctx, input); err != nil {
			return fmt.Errorf("failed to create table %s: %w", tableName, err)
		}
	}

	return nil
}

// isTableNotFound reports whether err is a DynamoDB ResourceNotFoundException.
func isTableNotFound(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() == "ResourceNotFoundException"
	}
	return strings.Contains(err.Error(), "ResourceNotFoundException")
}
