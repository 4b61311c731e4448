// Package console runs the catalog and row operations behind the admin page.
// Every failure is turned into exactly one inline message and an empty
// result, so the rest of the page can still render.
package console

import (
	"context"
	"fmt"
	"log/slog"

	"warehouse-console/internal/model"
	"warehouse-console/internal/service"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

type Message struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
}

type Console struct {
	client   service.DBClient
	logger   *slog.Logger
	messages []Message
}

func New(client service.DBClient, logger *slog.Logger) *Console {
	return &Console{client: client, logger: logger}
}

// Messages returns the messages recorded so far, in order.
func (c *Console) Messages() []Message {
	return c.messages
}

// Errors returns the text of the error messages recorded so far.
func (c *Console) Errors() []string {
	var out []string
	for _, m := range c.messages {
		if m.Level == LevelError {
			out = append(out, m.Text)
		}
	}
	return out
}

func (c *Console) add(level Level, format string, args ...any) {
	c.messages = append(c.messages, Message{Level: level, Text: fmt.Sprintf(format, args...)})
}

func (c *Console) fail(op string, err error, text string) {
	c.logger.Warn("operation failed", "op", op, "error", err)
	c.add(LevelError, "%s: %s", text, service.Describe(err))
}

func (c *Console) ListWarehouses(ctx context.Context) []string {
	names, err := c.client.ListWarehouses(ctx)
	if err != nil {
		c.fail("list_warehouses", err, "Failed to list warehouses")
		return []string{}
	}
	return names
}

func (c *Console) CreateWarehouse(ctx context.Context, name string) bool {
	if err := c.client.CreateWarehouse(ctx, name); err != nil {
		c.fail("create_warehouse", err, fmt.Sprintf("Failed to create warehouse '%s'", name))
		return false
	}
	c.add(LevelSuccess, "Warehouse '%s' created.", name)
	return true
}

func (c *Console) ListDatabases(ctx context.Context) []string {
	names, err := c.client.ListDatabases(ctx)
	if err != nil {
		c.fail("list_databases", err, "Failed to list databases")
		return []string{}
	}
	return names
}

func (c *Console) CreateDatabase(ctx context.Context, name string) bool {
	if err := c.client.CreateDatabase(ctx, name); err != nil {
		c.fail("create_database", err, fmt.Sprintf("Failed to create database '%s'", name))
		return false
	}
	c.add(LevelSuccess, "Database '%s' created.", name)
	return true
}

func (c *Console) ListSchemas(ctx context.Context, database string) []string {
	names, err := c.client.ListSchemas(ctx, database)
	if err != nil {
		c.fail("list_schemas", err, "Failed to list schemas")
		return []string{}
	}
	return names
}

func (c *Console) CreateSchema(ctx context.Context, database, schema string) bool {
	if err := c.client.CreateSchema(ctx, database, schema); err != nil {
		c.fail("create_schema", err, fmt.Sprintf("Failed to create schema '%s'", schema))
		return false
	}
	c.add(LevelSuccess, "Schema '%s' created.", schema)
	return true
}

func (c *Console) ListTables(ctx context.Context, database, schema string) []string {
	names, err := c.client.ListTables(ctx, database, schema)
	if err != nil {
		c.fail("list_tables", err, "Failed to list tables")
		return []string{}
	}
	return names
}

func (c *Console) CreateTable(ctx context.Context, database, schema, table, columns string) bool {
	if err := c.client.CreateTable(ctx, database, schema, table, columns); err != nil {
		c.fail("create_table", err, fmt.Sprintf("Failed to create table '%s'", table))
		return false
	}
	c.add(LevelSuccess, "Table '%s' created.", table)
	return true
}

func (c *Console) ReadTable(ctx context.Context, ref model.TableRef) *model.TableData {
	data, err := c.client.ReadTable(ctx, ref)
	if err != nil {
		c.fail("read_table", err, fmt.Sprintf("Failed to read table '%s'", ref.Table))
		return &model.TableData{Columns: []string{}, Rows: [][]any{}}
	}
	return data
}

func (c *Console) UpdateTable(ctx context.Context, req model.UpdateTableRequest) (int64, bool) {
	n, err := c.client.UpdateTable(ctx, req)
	if err != nil {
		c.fail("update_table", err, fmt.Sprintf("Failed to update table '%s'", req.Table))
		return 0, false
	}
	c.add(LevelSuccess, "Table '%s' updated (%d rows).", req.Table, n)
	return n, true
}

func (c *Console) DropTable(ctx context.Context, ref model.TableRef) bool {
	if err := c.client.DropTable(ctx, ref); err != nil {
		c.fail("drop_table", err, fmt.Sprintf("Failed to drop table '%s'", ref.Table))
		return false
	}
	c.add(LevelSuccess, "Table '%s' dropped.", ref.Table)
	return true
}

// CountObjects re-runs the warehouse, database and schema listings and
// reports their sizes. Without a database the schema count is zero.
func (c *Console) CountObjects(ctx context.Context, database string) model.ObjectCounts {
	counts := model.ObjectCounts{
		Warehouses: len(c.ListWarehouses(ctx)),
		Databases:  len(c.ListDatabases(ctx)),
	}
	if database != "" {
		counts.Schemas = len(c.ListSchemas(ctx, database))
	}
	return counts
}
