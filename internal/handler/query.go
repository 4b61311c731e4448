package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"warehouse-console/internal/model"
	"warehouse-console/internal/service"
)

func tableRefFromQuery(c *gin.Context) (model.TableRef, bool) {
	ref := model.TableRef{
		Database: c.Query("database"),
		Schema:   c.Query("schema"),
		Table:    c.Query("table"),
	}
	return ref, ref.Database != "" && ref.Schema != "" && ref.Table != ""
}

// TableDataHandler returns every row of the table.
func (h *Handler) TableDataHandler(c *gin.Context) {
	client, ok := h.activeClient(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No active DB connection"})
		return
	}

	ref, ok := tableRefFromQuery(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing database, schema or table"})
		return
	}

	data, err := client.ReadTable(c.Request.Context(), ref)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": service.Describe(err)})
		return
	}

	c.JSON(http.StatusOK, data)
}

func (h *Handler) UpdateTableHandler(c *gin.Context) {
	var req model.UpdateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	client, ok := h.activeClient(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No active DB connection"})
		return
	}

	rowsAffected, err := client.UpdateTable(c.Request.Context(), req)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": service.Describe(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Table updated successfully", "rows_affected": rowsAffected})
}

func (h *Handler) DropTableHandler(c *gin.Context) {
	client, ok := h.activeClient(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No active DB connection"})
		return
	}

	ref, ok := tableRefFromQuery(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing database, schema or table"})
		return
	}

	if err := client.DropTable(c.Request.Context(), ref); err != nil {
		c.JSON(statusFor(err), gin.H{"error": service.Describe(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "table dropped successfully",
		"table":   ref.Table,
	})
}
