package testutil

import (
	"context"
	"sync/atomic"

	"warehouse-console/internal/model"
	"warehouse-console/internal/service"
)

var _ service.DBClient = (*MockDBClient)(nil)

// MockDBClient delegates each call to the matching func field. A nil field
// makes the call succeed with an empty result.
type MockDBClient struct {
	ConnectFunc         func(ctx context.Context, creds model.Credentials) error
	DisconnectFunc      func() error
	ListWarehousesFunc  func(ctx context.Context) ([]string, error)
	CreateWarehouseFunc func(ctx context.Context, name string) error
	ListDatabasesFunc   func(ctx context.Context) ([]string, error)
	CreateDatabaseFunc  func(ctx context.Context, name string) error
	ListSchemasFunc     func(ctx context.Context, database string) ([]string, error)
	CreateSchemaFunc    func(ctx context.Context, database, schema string) error
	ListTablesFunc      func(ctx context.Context, database, schema string) ([]string, error)
	CreateTableFunc     func(ctx context.Context, database, schema, table, columns string) error
	ReadTableFunc       func(ctx context.Context, ref model.TableRef) (*model.TableData, error)
	UpdateTableFunc     func(ctx context.Context, req model.UpdateTableRequest) (int64, error)
	DropTableFunc       func(ctx context.Context, ref model.TableRef) error

	connectCalls atomic.Int32
}

// ConnectCalls reports how many times Connect was called.
func (m *MockDBClient) ConnectCalls() int {
	return int(m.connectCalls.Load())
}

// NewFailingClient returns a client whose every call fails with err.
func NewFailingClient(err error) *MockDBClient {
	return &MockDBClient{
		ConnectFunc:         func(context.Context, model.Credentials) error { return err },
		DisconnectFunc:      func() error { return err },
		ListWarehousesFunc:  func(context.Context) ([]string, error) { return nil, err },
		CreateWarehouseFunc: func(context.Context, string) error { return err },
		ListDatabasesFunc:   func(context.Context) ([]string, error) { return nil, err },
		CreateDatabaseFunc:  func(context.Context, string) error { return err },
		ListSchemasFunc:     func(context.Context, string) ([]string, error) { return nil, err },
		CreateSchemaFunc:    func(context.Context, string, string) error { return err },
		ListTablesFunc:      func(context.Context, string, string) ([]string, error) { return nil, err },
		CreateTableFunc:     func(context.Context, string, string, string, string) error { return err },
		ReadTableFunc:       func(context.Context, model.TableRef) (*model.TableData, error) { return nil, err },
		UpdateTableFunc:     func(context.Context, model.UpdateTableRequest) (int64, error) { return 0, err },
		DropTableFunc:       func(context.Context, model.TableRef) error { return err },
	}
}

func (m *MockDBClient) Connect(ctx context.Context, creds model.Credentials) error {
	m.connectCalls.Add(1)
	if m.ConnectFunc != nil {
		return m.ConnectFunc(ctx, creds)
	}
	return nil
}

func (m *MockDBClient) Disconnect() error {
	if m.DisconnectFunc != nil {
		return m.DisconnectFunc()
	}
	return nil
}

func (m *MockDBClient) ListWarehouses(ctx context.Context) ([]string, error) {
	if m.ListWarehousesFunc != nil {
		return m.ListWarehousesFunc(ctx)
	}
	return []string{}, nil
}

func (m *MockDBClient) CreateWarehouse(ctx context.Context, name string) error {
	if m.CreateWarehouseFunc != nil {
		return m.CreateWarehouseFunc(ctx, name)
	}
	return nil
}

func (m *MockDBClient) ListDatabases(ctx context.Context) ([]string, error) {
	if m.ListDatabasesFunc != nil {
		return m.ListDatabasesFunc(ctx)
	}
	return []string{}, nil
}

func (m *MockDBClient) CreateDatabase(ctx context.Context, name string) error {
	if m.CreateDatabaseFunc != nil {
		return m.CreateDatabaseFunc(ctx, name)
	}
	return nil
}

func (m *MockDBClient) ListSchemas(ctx context.Context, database string) ([]string, error) {
	if m.ListSchemasFunc != nil {
		return m.ListSchemasFunc(ctx, database)
	}
	return []string{}, nil
}

func (m *MockDBClient) CreateSchema(ctx context.Context, database, schema string) error {
	if m.CreateSchemaFunc != nil {
		return m.CreateSchemaFunc(ctx, database, schema)
	}
	return nil
}

func (m *MockDBClient) ListTables(ctx context.Context, database, schema string) ([]string, error) {
	if m.ListTablesFunc != nil {
		return m.ListTablesFunc(ctx, database, schema)
	}
	return []string{}, nil
}

func (m *MockDBClient) CreateTable(ctx context.Context, database, schema, table, columns string) error {
	if m.CreateTableFunc != nil {
		return m.CreateTableFunc(ctx, database, schema, table, columns)
	}
	return nil
}

func (m *MockDBClient) ReadTable(ctx context.Context, ref model.TableRef) (*model.TableData, error) {
	if m.ReadTableFunc != nil {
		return m.ReadTableFunc(ctx, ref)
	}
	return &model.TableData{Columns: []string{}, Rows: [][]any{}}, nil
}

func (m *MockDBClient) UpdateTable(ctx context.Context, req model.UpdateTableRequest) (int64, error) {
	if m.UpdateTableFunc != nil {
		return m.UpdateTableFunc(ctx, req)
	}
	return 0, nil
}

func (m *MockDBClient) DropTable(ctx context.Context, ref model.TableRef) error {
	if m.DropTableFunc != nil {
		return m.DropTableFunc(ctx, ref)
	}
	return nil
}
