package worker

import (
	"context"
	"errors"
	"fmt"
	"maintdesk-backend/dal"
	"maintdesk-backend/infrastructure"
	"maintdesk-backend/models"
	"maintdesk-backend/utils/logger"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// TableSetup ensures the DynamoDB tables the service depends on exist before
// the first sweep runs.
type TableSetup struct {
	models.TableSetup
}

// NewTableSetup creates a table setup handler over an existing DB client
func NewTableSetup(cfg *models.Config, log logger.Logger, dbClient dal.DatabaseClientInterface) *TableSetup {
	return &TableSetup{
		TableSetup: models.TableSetup{
			Config:   cfg,
			Logger:   log,
			DBClient: dbClient,
		},
	}
}

// ToModelsTableSetup returns the embedded models.TableSetup
func (ts *TableSetup) ToModelsTableSetup() *models.TableSetup {
	return &ts.TableSetup
}

// requiredTableNames returns the fully prefixed table names from config.
func (ts *TableSetup) requiredTableNames() []string {
	names := make([]string, 0, len(ts.Config.Tables))
	for _, table := range ts.Config.Tables {
		names = append(names, ts.Config.DynamoDBTablePrefix+"_"+table)
	}
	return names
}

// EnsureTables creates any missing tables and waits until they are active.
func (ts *TableSetup) EnsureTables(ctx context.Context, statusManager *StatusManager) error {
	for _, tableName := range ts.requiredTableNames() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		_, err := ts.DBClient.DescribeTable(ctx, tableName)
		if err == nil {
			ts.Logger.Debugf("Table %s already exists", tableName)
			if err := statusManager.AddTableEnsured(tableName, "ACTIVE"); err != nil {
				ts.Logger.Warnf("Failed to record table status for %s: %v", tableName, err)
			}
			continue
		}

		var notFound *types.ResourceNotFoundException
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to describe table %s: %w", tableName, err)
		}

		ts.Logger.Infof("Creating table %s", tableName)
		input, err := infrastructure.GetTables(tableName)
		if err != nil {
			return fmt.Errorf("failed to resolve schema for %s: %w", tableName, err)
		}

		if err := ts.DBClient.CreateTable(ctx, input); err != nil {
			return fmt.Errorf("failed to create table %s: %w", tableName, err)
		}

		if err := ts.waitForTableActive(ctx, tableName); err != nil {
			return err
		}

		if err := statusManager.AddTableEnsured(tableName, "CREATING"); err != nil {
			ts.Logger.Warnf("Failed to record table status for %s: %v", tableName, err)
		}
	}

	return nil
}

// waitForTableActive polls until the table reaches ACTIVE or the context ends.
func (ts *TableSetup) waitForTableActive(ctx context.Context, tableName string) error {
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	deadline := time.After(2 * time.Minute)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-deadline:
			return fmt.Errorf("timed out waiting for table %s to become active", tableName)
		case <-ticker.C:
			out, err := ts.DBClient.DescribeTable(ctx, tableName)
			if err != nil {
				continue
			}
			if out.Table != nil && out.Table.TableStatus == types.TableStatusActive {
				ts.Logger.Infof("Table %s is active", tableName)
				return nil
			}
		}
	}
}
