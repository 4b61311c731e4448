package service

import (
	"context"

	"warehouse-console/internal/model"
)

type DBClient interface {
	Connect(ctx context.Context, creds model.Credentials) error
	Disconnect() error

	ListWarehouses(ctx context.Context) ([]string, error)
	CreateWarehouse(ctx context.Context, name string) error
	ListDatabases(ctx context.Context) ([]string, error)
	CreateDatabase(ctx context.Context, name string) error
	ListSchemas(ctx context.Context, database string) ([]string, error)
	CreateSchema(ctx context.Context, database, schema string) error
	ListTables(ctx context.Context, database, schema string) ([]string, error)
	CreateTable(ctx context.Context, database, schema, table, columns string) error

	ReadTable(ctx context.Context, ref model.TableRef) (*model.TableData, error)
	UpdateTable(ctx context.Context, req model.UpdateTableRequest) (int64, error)
	DropTable(ctx context.Context, ref model.TableRef) error
}
