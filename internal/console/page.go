package console

import (
	"context"
	"net/url"
	"slices"

	"warehouse-console/internal/model"
)

type Operation string

const (
	OpCreate Operation = "create"
	OpRead   Operation = "read"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// Operations lists the table operations in the order the page offers them.
var Operations = []Operation{OpCreate, OpRead, OpUpdate, OpDelete}

func (o Operation) Label() string {
	switch o {
	case OpRead:
		return "Read"
	case OpUpdate:
		return "Update"
	case OpDelete:
		return "Delete"
	default:
		return "Create"
	}
}

func (o Operation) gerund() string {
	switch o {
	case OpUpdate:
		return "updating"
	case OpDelete:
		return "deleting"
	default:
		return "reading"
	}
}

func ParseOperation(s string) Operation {
	op := Operation(s)
	if slices.Contains(Operations, op) {
		return op
	}
	return OpCreate
}

// State is the set of selections currently made on the page.
type State struct {
	Database  string
	Schema    string
	Table     string
	Operation Operation
}

func StateFromQuery(q url.Values) State {
	return State{
		Database:  q.Get("database"),
		Schema:    q.Get("schema"),
		Table:     q.Get("table"),
		Operation: ParseOperation(q.Get("op")),
	}
}

// Query encodes the state for the page URL. Empty selections are omitted.
func (s State) Query() url.Values {
	q := url.Values{}
	if s.Database != "" {
		q.Set("database", s.Database)
	}
	if s.Schema != "" {
		q.Set("schema", s.Schema)
	}
	if s.Table != "" {
		q.Set("table", s.Table)
	}
	if s.Operation != "" {
		q.Set("op", string(s.Operation))
	}
	return q
}

// Page is everything the console template renders.
type Page struct {
	Connected bool
	Account   string

	Warehouses []string
	Databases  []string
	Schemas    []string
	Tables     []string

	State      State
	Operations []Operation
	TableData  *model.TableData
	Warning    string

	Counts   model.ObjectCounts
	Chart    BarChart
	Messages []Message
}

// Render runs the listings needed for the visible widgets, cascading each
// selection into the next listing. A selection not present in its list falls
// back to the first entry.
func (c *Console) Render(ctx context.Context, state State) *Page {
	if state.Operation == "" {
		state.Operation = OpCreate
	}
	page := &Page{Connected: true, Operations: Operations}

	page.Warehouses = c.ListWarehouses(ctx)
	page.Databases = c.ListDatabases(ctx)

	state.Database = choose(state.Database, page.Databases)
	page.Schemas = []string{}
	if state.Database != "" {
		page.Schemas = c.ListSchemas(ctx, state.Database)
	}

	state.Schema = choose(state.Schema, page.Schemas)
	page.Tables = []string{}
	if state.Schema != "" {
		page.Tables = c.ListTables(ctx, state.Database, state.Schema)
	}

	if state.Operation == OpCreate {
		state.Table = ""
	} else {
		state.Table = choose(state.Table, page.Tables)
		if state.Table == "" {
			page.Warning = "No tables available for " + state.Operation.gerund() + "."
		}
	}

	if state.Operation == OpRead && state.Table != "" {
		page.TableData = c.ReadTable(ctx, model.TableRef{
			Database: state.Database,
			Schema:   state.Schema,
			Table:    state.Table,
		})
	}

	page.Counts = c.CountObjects(ctx, state.Database)
	page.Chart = NewBarChart(
		"Number of warehouses, databases and schemas",
		[]string{"Warehouses", "Databases", "Schemas"},
		[]int{page.Counts.Warehouses, page.Counts.Databases, page.Counts.Schemas},
	)

	page.State = state
	page.Messages = dedupe(c.messages)
	return page
}

func choose(selected string, options []string) string {
	if selected != "" && slices.Contains(options, selected) {
		return selected
	}
	if len(options) > 0 {
		return options[0]
	}
	return ""
}

// dedupe drops repeated messages; the counting step re-runs listings that
// may already have failed earlier in the same render.
func dedupe(msgs []Message) []Message {
	out := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		if !slices.Contains(out, m) {
			out = append(out, m)
		}
	}
	return out
}
