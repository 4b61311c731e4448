package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"warehouse-console/internal/console"
	"warehouse-console/internal/model"
	"warehouse-console/internal/service"
)

func (h *Handler) ListWarehousesHandler(c *gin.Context) {
	client, ok := h.activeClient(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No active DB connection"})
		return
	}

	warehouses, err := client.ListWarehouses(c.Request.Context())
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": service.Describe(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"warehouses": nonNil(warehouses)})
}

func (h *Handler) CreateWarehouseHandler(c *gin.Context) {
	client, ok := h.activeClient(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No active DB connection"})
		return
	}
	var req model.CreateWarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := client.CreateWarehouse(c.Request.Context(), req.Name); err != nil {
		c.JSON(statusFor(err), gin.H{"error": service.Describe(err)})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "warehouse created successfully", "warehouse": req.Name})
}

func (h *Handler) ListDatabasesHandler(c *gin.Context) {
	client, ok := h.activeClient(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No active DB connection"})
		return
	}

	databases, err := client.ListDatabases(c.Request.Context())
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": service.Describe(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"databases": nonNil(databases)})
}

func (h *Handler) CreateDatabaseHandler(c *gin.Context) {
	client, ok := h.activeClient(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No active DB connection"})
		return
	}
	var req model.CreateDatabaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := client.CreateDatabase(c.Request.Context(), req.Name); err != nil {
		c.JSON(statusFor(err), gin.H{"error": service.Describe(err)})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "database created successfully", "database": req.Name})
}

func (h *Handler) ListSchemasHandler(c *gin.Context) {
	client, ok := h.activeClient(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No active DB connection"})
		return
	}

	database := c.Query("database")
	if database == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'database' query parameter"})
		return
	}

	schemas, err := client.ListSchemas(c.Request.Context(), database)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": service.Describe(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"schemas": nonNil(schemas)})
}

func (h *Handler) CreateSchemaHandler(c *gin.Context) {
	client, ok := h.activeClient(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No active DB connection"})
		return
	}
	var req model.CreateSchemaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := client.CreateSchema(c.Request.Context(), req.Database, req.Name); err != nil {
		c.JSON(statusFor(err), gin.H{"error": service.Describe(err)})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "schema created successfully", "schema": req.Name})
}

func (h *Handler) ListTablesHandler(c *gin.Context) {
	client, ok := h.activeClient(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No active DB connection"})
		return
	}

	database := c.Query("database")
	schema := c.Query("schema")
	if database == "" || schema == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'database' or 'schema' query parameter"})
		return
	}

	h.logger.Debug("listing tables", "database", database, "schema", schema)
	tables, err := client.ListTables(c.Request.Context(), database, schema)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": service.Describe(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tables": nonNil(tables)})
}

func (h *Handler) CreateTableHandler(c *gin.Context) {
	client, ok := h.activeClient(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No active DB connection"})
		return
	}
	var req model.CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := client.CreateTable(c.Request.Context(), req.Database, req.Schema, req.Name, req.Columns); err != nil {
		c.JSON(statusFor(err), gin.H{"error": service.Describe(err)})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "table created successfully", "table": req.Name})
}

// CountsHandler re-runs the listings behind the bar chart. Listing failures
// count as zero and are reported alongside the counts.
func (h *Handler) CountsHandler(c *gin.Context) {
	client, ok := h.activeClient(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No active DB connection"})
		return
	}

	con := console.New(client, h.logger)
	counts := con.CountObjects(c.Request.Context(), c.Query("database"))
	errs := con.Errors()
	if errs == nil {
		errs = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"counts": counts, "errors": errs})
}

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
