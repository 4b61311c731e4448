package handler

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templateFuncs = template.FuncMap{
	"cell": func(v any) string {
		if v == nil {
			return "NULL"
		}
		return fmt.Sprint(v)
	},
}

func loadTemplates() (*template.Template, error) {
	return template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html")
}

// NewRouter wires the console page, its form actions and the JSON API.
func NewRouter(h *Handler, logger *slog.Logger) (*gin.Engine, error) {
	tmpl, err := loadTemplates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	r := gin.New()
	r.Use(RequestLogger(logger), gin.Recovery())
	r.SetHTMLTemplate(tmpl)

	r.GET("/ping", Ping)

	r.GET("/", h.ConsolePage)
	r.POST("/connect", h.ConnectForm)
	r.POST("/disconnect", h.DisconnectForm)
	r.POST("/warehouses", h.CreateWarehouseForm)
	r.POST("/databases", h.CreateDatabaseForm)
	r.POST("/schemas", h.CreateSchemaForm)
	r.POST("/tables", h.CreateTableForm)
	r.POST("/tables/update", h.UpdateTableForm)
	r.POST("/tables/drop", h.DropTableForm)

	api := r.Group("/api")
	{
		api.POST("/connect", h.ConnectHandler)
		api.POST("/disconnect", h.DisconnectHandler)

		api.GET("/warehouses", h.ListWarehousesHandler)
		api.POST("/warehouses", h.CreateWarehouseHandler)
		api.GET("/databases", h.ListDatabasesHandler)
		api.POST("/databases", h.CreateDatabaseHandler)
		api.GET("/schemas", h.ListSchemasHandler)
		api.POST("/schemas", h.CreateSchemaHandler)
		api.GET("/tables", h.ListTablesHandler)
		api.POST("/tables", h.CreateTableHandler)
		api.DELETE("/tables", h.DropTableHandler)

		api.GET("/tables/data", h.TableDataHandler)
		api.PUT("/tables/data", h.UpdateTableHandler)

		api.GET("/counts", h.CountsHandler)
	}

	return r, nil
}
