package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"warehouse-console/internal/console"
	"warehouse-console/internal/model"
)

// ConsolePage renders the whole console for the selections in the query
// string, re-running every listing the visible widgets need.
func (h *Handler) ConsolePage(c *gin.Context) {
	flashes := h.flashes(c)
	id := h.sessionID(c)

	client, ok := h.registry.Get(id)
	if !ok {
		c.HTML(http.StatusOK, "console.html", &console.Page{Messages: flashes})
		return
	}

	con := console.New(client, h.logger.With("session", id))
	page := con.Render(c.Request.Context(), console.StateFromQuery(c.Request.URL.Query()))
	page.Account = h.registry.Account(id)
	page.Messages = append(flashes, page.Messages...)

	c.HTML(http.StatusOK, "console.html", page)
}

// formState carries the page selections through a form post.
type formState struct {
	Database  string `form:"database"`
	Schema    string `form:"schema"`
	Table     string `form:"table"`
	Operation string `form:"op"`
}

func (f formState) state() console.State {
	return console.State{
		Database:  f.Database,
		Schema:    f.Schema,
		Table:     f.Table,
		Operation: console.ParseOperation(f.Operation),
	}
}

// runAction executes one mutating console operation, flashes its outcome
// and redirects back to the page with the same selections.
func (h *Handler) runAction(c *gin.Context, state console.State, action func(ctx context.Context, con *console.Console)) {
	target := "/?" + state.Query().Encode()

	id := h.sessionID(c)
	client, ok := h.registry.Get(id)
	if !ok {
		h.flash(c, console.Message{Level: console.LevelError, Text: "No active DB connection"})
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	con := console.New(client, h.logger.With("session", id))
	action(c.Request.Context(), con)
	h.flash(c, con.Messages()...)
	c.Redirect(http.StatusSeeOther, target)
}

func (h *Handler) CreateWarehouseForm(c *gin.Context) {
	var sel formState
	_ = c.ShouldBind(&sel)
	name := c.PostForm("name")
	h.runAction(c, sel.state(), func(ctx context.Context, con *console.Console) {
		con.CreateWarehouse(ctx, name)
	})
}

func (h *Handler) CreateDatabaseForm(c *gin.Context) {
	var sel formState
	_ = c.ShouldBind(&sel)
	name := c.PostForm("name")
	h.runAction(c, sel.state(), func(ctx context.Context, con *console.Console) {
		con.CreateDatabase(ctx, name)
	})
}

func (h *Handler) CreateSchemaForm(c *gin.Context) {
	var sel formState
	_ = c.ShouldBind(&sel)
	name := c.PostForm("name")
	h.runAction(c, sel.state(), func(ctx context.Context, con *console.Console) {
		con.CreateSchema(ctx, sel.Database, name)
	})
}

func (h *Handler) CreateTableForm(c *gin.Context) {
	var sel formState
	_ = c.ShouldBind(&sel)
	name := c.PostForm("name")
	columns := c.PostForm("columns")
	h.runAction(c, sel.state(), func(ctx context.Context, con *console.Console) {
		con.CreateTable(ctx, sel.Database, sel.Schema, name, columns)
	})
}

func (h *Handler) UpdateTableForm(c *gin.Context) {
	var sel formState
	_ = c.ShouldBind(&sel)
	req := model.UpdateTableRequest{
		TableRef:  model.TableRef{Database: sel.Database, Schema: sel.Schema, Table: sel.Table},
		Column:    c.PostForm("column"),
		Value:     c.PostForm("value"),
		Condition: c.PostForm("condition"),
	}
	h.runAction(c, sel.state(), func(ctx context.Context, con *console.Console) {
		con.UpdateTable(ctx, req)
	})
}

func (h *Handler) DropTableForm(c *gin.Context) {
	var sel formState
	_ = c.ShouldBind(&sel)
	ref := model.TableRef{Database: sel.Database, Schema: sel.Schema, Table: sel.Table}

	state := sel.state()
	state.Table = ""
	h.runAction(c, state, func(ctx context.Context, con *console.Console) {
		con.DropTable(ctx, ref)
	})
}
