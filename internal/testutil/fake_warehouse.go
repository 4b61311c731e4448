package testutil

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"warehouse-console/internal/model"
	"warehouse-console/internal/service"
)

var _ service.DBClient = (*FakeWarehouse)(nil)

// FakeWarehouse is an in-memory catalog that behaves like the service for the
// statements the console issues: creates are idempotent, drops are visible to
// the next listing, unknown qualifiers are rejected.
type FakeWarehouse struct {
	mu         sync.Mutex
	warehouses []string
	databases  []string
	schemas    map[string][]string // database -> schemas
	tables     map[string][]string // database.schema -> tables
	data       map[string]*model.TableData

	Connects int
	// Calls records qualifiers in the order listing operations received them.
	Calls []string
}

func NewFakeWarehouse() *FakeWarehouse {
	return &FakeWarehouse{
		schemas: make(map[string][]string),
		tables:  make(map[string][]string),
		data:    make(map[string]*model.TableData),
	}
}

// WithDatabase seeds a database with schemas.
func (f *FakeWarehouse) WithDatabase(name string, schemas ...string) *FakeWarehouse {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.databases = appendUnique(f.databases, name)
	for _, s := range schemas {
		f.schemas[name] = appendUnique(f.schemas[name], s)
	}
	return f
}

// WithTable seeds a table and its rows.
func (f *FakeWarehouse) WithTable(ref model.TableRef, data *model.TableData) *FakeWarehouse {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := ref.Database + "." + ref.Schema
	f.tables[key] = appendUnique(f.tables[key], ref.Table)
	f.data[key+"."+ref.Table] = data
	return f
}

func (f *FakeWarehouse) WithWarehouse(name string) *FakeWarehouse {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.warehouses = appendUnique(f.warehouses, name)
	return f
}

func (f *FakeWarehouse) Connect(context.Context, model.Credentials) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Connects++
	return nil
}

func (f *FakeWarehouse) Disconnect() error { return nil }

func (f *FakeWarehouse) ListWarehouses(context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, "warehouses")
	return slices.Clone(nonNil(f.warehouses)), nil
}

func (f *FakeWarehouse) CreateWarehouse(_ context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if name == "" {
		return service.ErrInvalidIdentifier
	}
	f.warehouses = appendUnique(f.warehouses, name)
	return nil
}

func (f *FakeWarehouse) ListDatabases(context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, "databases")
	return slices.Clone(nonNil(f.databases)), nil
}

func (f *FakeWarehouse) CreateDatabase(_ context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if name == "" {
		return service.ErrInvalidIdentifier
	}
	f.databases = appendUnique(f.databases, name)
	return nil
}

func (f *FakeWarehouse) ListSchemas(_ context.Context, database string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, "schemas:"+database)
	if !slices.Contains(f.databases, database) {
		return nil, fmt.Errorf("Database '%s' does not exist or not authorized.", database)
	}
	return slices.Clone(nonNil(f.schemas[database])), nil
}

func (f *FakeWarehouse) CreateSchema(_ context.Context, database, schema string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if database == "" || schema == "" {
		return service.ErrInvalidIdentifier
	}
	if !slices.Contains(f.databases, database) {
		return fmt.Errorf("Database '%s' does not exist or not authorized.", database)
	}
	f.schemas[database] = appendUnique(f.schemas[database], schema)
	return nil
}

func (f *FakeWarehouse) ListTables(_ context.Context, database, schema string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, "tables:"+database+"."+schema)
	if !slices.Contains(f.schemas[database], schema) {
		return nil, fmt.Errorf("Schema '%s.%s' does not exist or not authorized.", database, schema)
	}
	return slices.Clone(nonNil(f.tables[database+"."+schema])), nil
}

func (f *FakeWarehouse) CreateTable(_ context.Context, database, schema, table, columns string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if database == "" || schema == "" || table == "" {
		return service.ErrInvalidIdentifier
	}
	if columns == "" {
		return service.ErrEmptyFragment
	}
	if !slices.Contains(f.schemas[database], schema) {
		return fmt.Errorf("Schema '%s.%s' does not exist or not authorized.", database, schema)
	}
	key := database + "." + schema
	if !slices.Contains(f.tables[key], table) {
		f.tables[key] = append(f.tables[key], table)
		f.data[key+"."+table] = &model.TableData{Columns: []string{}, Rows: [][]any{}}
	}
	return nil
}

func (f *FakeWarehouse) ReadTable(_ context.Context, ref model.TableRef) (*model.TableData, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.data[ref.Database+"."+ref.Schema+"."+ref.Table]
	if !ok {
		return nil, fmt.Errorf("Table '%s' does not exist or not authorized.", ref.Table)
	}
	return d, nil
}

func (f *FakeWarehouse) UpdateTable(_ context.Context, req model.UpdateTableRequest) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.data[req.Database+"."+req.Schema+"."+req.Table]
	if !ok {
		return 0, fmt.Errorf("Table '%s' does not exist or not authorized.", req.Table)
	}
	col := slices.Index(d.Columns, req.Column)
	if col < 0 {
		return 0, fmt.Errorf("invalid identifier '%s'", req.Column)
	}
	// The condition is not evaluated; every row matches.
	for _, row := range d.Rows {
		row[col] = req.Value
	}
	return int64(len(d.Rows)), nil
}

func (f *FakeWarehouse) DropTable(_ context.Context, ref model.TableRef) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := ref.Database + "." + ref.Schema
	i := slices.Index(f.tables[key], ref.Table)
	if i < 0 {
		return fmt.Errorf("Table '%s' does not exist or not authorized.", ref.Table)
	}
	f.tables[key] = slices.Delete(f.tables[key], i, i+1)
	delete(f.data, key+"."+ref.Table)
	return nil
}

func appendUnique(list []string, s string) []string {
	if slices.Contains(list, s) {
		return list
	}
	return append(list, s)
}

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
