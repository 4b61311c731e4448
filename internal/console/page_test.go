package console

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warehouse-console/internal/model"
	"warehouse-console/internal/testutil"
)

func TestRender_NoTablesShowsReadWarning(t *testing.T) {
	var schemaArgs, tableArgs []string
	client := &testutil.MockDBClient{
		ListDatabasesFunc: func(context.Context) ([]string, error) { return []string{"DB1", "DB2"}, nil },
		ListSchemasFunc: func(_ context.Context, database string) ([]string, error) {
			schemaArgs = append(schemaArgs, database)
			return []string{"PUBLIC"}, nil
		},
		ListTablesFunc: func(_ context.Context, database, schema string) ([]string, error) {
			tableArgs = append(tableArgs, database+"/"+schema)
			return []string{}, nil
		},
		ReadTableFunc: func(context.Context, model.TableRef) (*model.TableData, error) {
			t.Fatal("read must not run without a table")
			return nil, nil
		},
	}

	page := New(client, testutil.NewTestLogger(t)).Render(context.Background(), State{
		Database:  "DB1",
		Schema:    "PUBLIC",
		Operation: OpRead,
	})

	assert.Equal(t, []string{"DB1", "DB2"}, page.Databases)
	assert.Equal(t, []string{"PUBLIC"}, page.Schemas)
	assert.Empty(t, page.Tables)
	assert.Equal(t, "No tables available for reading.", page.Warning)
	assert.Nil(t, page.TableData)
	assert.Empty(t, page.Messages)

	assert.Equal(t, "DB1", schemaArgs[0])
	assert.Equal(t, []string{"DB1/PUBLIC"}, tableArgs)
}

func TestRender_SelectionCascades(t *testing.T) {
	fake := testutil.NewFakeWarehouse().
		WithDatabase("DB1", "PUBLIC").
		WithDatabase("my db", "RAW", "PUBLIC").
		WithTable(model.TableRef{Database: "my db", Schema: "RAW", Table: "EVENTS"}, &model.TableData{
			Columns: []string{"ID"},
			Rows:    [][]any{{1}, {2}},
		})

	page := New(fake, testutil.NewTestLogger(t)).Render(context.Background(), State{
		Database:  "my db",
		Operation: OpRead,
	})

	require.Empty(t, page.Messages)
	assert.Equal(t, "my db", page.State.Database)
	assert.Equal(t, "RAW", page.State.Schema)
	assert.Equal(t, "EVENTS", page.State.Table)
	assert.Equal(t, [][]any{{1}, {2}}, page.TableData.Rows)
	assert.Contains(t, fake.Calls, "schemas:my db")
	assert.Contains(t, fake.Calls, "tables:my db.RAW")
}

func TestRender_UnknownSelectionFallsBackToFirst(t *testing.T) {
	fake := testutil.NewFakeWarehouse().WithDatabase("DB1", "PUBLIC").WithDatabase("DB2", "S2")

	page := New(fake, testutil.NewTestLogger(t)).Render(context.Background(), State{
		Database: "GONE",
		Schema:   "GONE",
	})

	assert.Equal(t, "DB1", page.State.Database)
	assert.Equal(t, "PUBLIC", page.State.Schema)
	assert.Equal(t, OpCreate, page.State.Operation)
	assert.Empty(t, page.State.Table)
	assert.Empty(t, page.Warning)
}

func TestRender_NoDatabasesSkipsSchemaListing(t *testing.T) {
	fake := testutil.NewFakeWarehouse().WithWarehouse("COMPUTE_WH")

	page := New(fake, testutil.NewTestLogger(t)).Render(context.Background(), State{Operation: OpDelete})

	assert.Equal(t, []string{"warehouses", "databases", "warehouses", "databases"}, fake.Calls)
	assert.Equal(t, "No tables available for deleting.", page.Warning)
	assert.Equal(t, 1, page.Counts.Warehouses)
	assert.Equal(t, 0, page.Counts.Schemas)
}

func TestRender_FailingServiceStillRenders(t *testing.T) {
	client := testutil.NewFailingClient(errors.New("network down"))

	page := New(client, testutil.NewTestLogger(t)).Render(context.Background(), State{Operation: OpUpdate})

	assert.Empty(t, page.Warehouses)
	assert.Empty(t, page.Databases)
	assert.Equal(t, "No tables available for updating.", page.Warning)
	assert.Equal(t, model.ObjectCounts{}, page.Counts)
	assert.Len(t, page.Messages, 2)
	for _, m := range page.Messages {
		assert.Equal(t, LevelError, m.Level)
	}
}

func TestStateQueryRoundTrip(t *testing.T) {
	s := State{Database: "my db", Schema: "PUBLIC", Table: "T", Operation: OpUpdate}
	parsed, err := url.ParseQuery(s.Query().Encode())
	require.NoError(t, err)
	assert.Equal(t, s, StateFromQuery(parsed))

	assert.Equal(t, OpCreate, ParseOperation("truncate"))
	assert.Equal(t, url.Values{}, State{}.Query())
}
