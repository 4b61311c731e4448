package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sf "github.com/snowflakedb/gosnowflake"

	"warehouse-console/helper"
	"warehouse-console/internal/model"
)

// openDB opens the driver handle. It can be overridden in tests.
var openDB = func(dsn string) (*sql.DB, error) { return sql.Open("snowflake", dsn) }

var _ DBClient = (*SnowflakeClient)(nil)

type SnowflakeClient struct {
	db *sql.DB
}

func NewSnowflakeClient() *SnowflakeClient {
	return &SnowflakeClient{}
}

func (s *SnowflakeClient) Connect(ctx context.Context, creds model.Credentials) error {
	if creds.User == "" || creds.Password == "" || creds.Account == "" {
		return ErrMissingCredentials
	}

	dsn, err := sf.DSN(&sf.Config{
		Account:  creds.Account,
		User:     creds.User,
		Password: creds.Password,
	})
	if err != nil {
		return fmt.Errorf("build dsn: %w", err)
	}

	db, err := openDB(dsn)
	if err != nil {
		return err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}
	s.db = db
	return nil
}

func (s *SnowflakeClient) Disconnect() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *SnowflakeClient) ListWarehouses(ctx context.Context) ([]string, error) {
	return s.listNames(ctx, "SHOW WAREHOUSES", 0)
}

func (s *SnowflakeClient) CreateWarehouse(ctx context.Context, name string) error {
	if name == "" {
		return ErrInvalidIdentifier
	}
	return s.exec(ctx, "CREATE WAREHOUSE IF NOT EXISTS "+helper.QuoteIdentifier(name))
}

func (s *SnowflakeClient) ListDatabases(ctx context.Context) ([]string, error) {
	return s.listNames(ctx, "SHOW DATABASES", 1)
}

func (s *SnowflakeClient) CreateDatabase(ctx context.Context, name string) error {
	if name == "" {
		return ErrInvalidIdentifier
	}
	return s.exec(ctx, "CREATE DATABASE IF NOT EXISTS "+helper.QuoteIdentifier(name))
}

func (s *SnowflakeClient) ListSchemas(ctx context.Context, database string) ([]string, error) {
	if database == "" {
		return nil, ErrInvalidIdentifier
	}
	return s.listNames(ctx, "SHOW SCHEMAS IN DATABASE "+helper.QuoteName(database), 1)
}

func (s *SnowflakeClient) CreateSchema(ctx context.Context, database, schema string) error {
	if database == "" || schema == "" {
		return ErrInvalidIdentifier
	}
	return s.exec(ctx, "CREATE SCHEMA IF NOT EXISTS "+helper.QuoteName(database)+"."+helper.QuoteIdentifier(schema))
}

func (s *SnowflakeClient) ListTables(ctx context.Context, database, schema string) ([]string, error) {
	if database == "" || schema == "" {
		return nil, ErrInvalidIdentifier
	}
	return s.listNames(ctx, "SHOW TABLES IN SCHEMA "+helper.QualifiedName(database, schema), 1)
}

func (s *SnowflakeClient) CreateTable(ctx context.Context, database, schema, table, columns string) error {
	if database == "" || schema == "" || table == "" {
		return ErrInvalidIdentifier
	}
	if strings.TrimSpace(columns) == "" {
		return fmt.Errorf("columns: %w", ErrEmptyFragment)
	}
	query := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s.%s (%s)",
		helper.QualifiedName(database, schema), helper.QuoteIdentifier(table), columns)
	return s.exec(ctx, query)
}

func (s *SnowflakeClient) ReadTable(ctx context.Context, ref model.TableRef) (*model.TableData, error) {
	if err := validateRef(ref); err != nil {
		return nil, err
	}
	if s.db == nil {
		return nil, ErrNotConnected
	}

	rows, err := s.db.QueryContext(ctx, "SELECT * FROM "+qualify(ref))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	data := &model.TableData{Columns: cols, Rows: [][]any{}}
	for rows.Next() {
		values, err := scanRow(rows, len(cols))
		if err != nil {
			return nil, err
		}
		data.Rows = append(data.Rows, values)
	}
	return data, rows.Err()
}

func (s *SnowflakeClient) UpdateTable(ctx context.Context, req model.UpdateTableRequest) (int64, error) {
	if err := validateRef(req.TableRef); err != nil {
		return 0, err
	}
	if req.Column == "" {
		return 0, ErrInvalidIdentifier
	}
	if strings.TrimSpace(req.Condition) == "" {
		return 0, fmt.Errorf("condition: %w", ErrEmptyFragment)
	}
	if s.db == nil {
		return 0, ErrNotConnected
	}

	query := fmt.Sprintf("UPDATE %s SET %s = ? WHERE %s",
		qualify(req.TableRef), helper.QuoteIdentifier(req.Column), req.Condition)
	res, err := s.db.ExecContext(ctx, query, req.Value)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *SnowflakeClient) DropTable(ctx context.Context, ref model.TableRef) error {
	if err := validateRef(ref); err != nil {
		return err
	}
	return s.exec(ctx, "DROP TABLE "+qualify(ref))
}

func (s *SnowflakeClient) exec(ctx context.Context, query string) error {
	if s.db == nil {
		return ErrNotConnected
	}
	_, err := s.db.ExecContext(ctx, query)
	return err
}

// listNames runs a SHOW statement and collects the "name" column. When the
// result carries no such header, fallback is used as the column position.
func (s *SnowflakeClient) listNames(ctx context.Context, query string, fallback int) ([]string, error) {
	if s.db == nil {
		return nil, ErrNotConnected
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	idx := nameColumn(cols, fallback)
	if idx < 0 {
		return nil, fmt.Errorf("%s: no name column in %d result columns", query, len(cols))
	}

	names := []string{}
	for rows.Next() {
		values, err := scanRow(rows, len(cols))
		if err != nil {
			return nil, err
		}
		names = append(names, asString(values[idx]))
	}
	return names, rows.Err()
}

func nameColumn(cols []string, fallback int) int {
	for i, c := range cols {
		if strings.EqualFold(c, "name") {
			return i
		}
	}
	if fallback < len(cols) {
		return fallback
	}
	return -1
}

func scanRow(rows *sql.Rows, n int) ([]any, error) {
	values := make([]any, n)
	pointers := make([]any, n)
	for i := range values {
		pointers[i] = &values[i]
	}
	if err := rows.Scan(pointers...); err != nil {
		return nil, err
	}
	for i, v := range values {
		if b, ok := v.([]byte); ok {
			values[i] = string(b)
		}
	}
	return values, nil
}

func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	default:
		return fmt.Sprint(t)
	}
}

func validateRef(ref model.TableRef) error {
	if ref.Database == "" || ref.Schema == "" || ref.Table == "" {
		return ErrInvalidIdentifier
	}
	return nil
}

// qualify quotes every part exactly; table references always come from a
// listing.
func qualify(ref model.TableRef) string {
	return helper.QualifiedName(ref.Database, ref.Schema, ref.Table)
}
