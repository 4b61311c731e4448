package model

// TableRef is a fully qualified table.
type TableRef struct {
	Database string `json:"database" form:"database"`
	Schema   string `json:"schema" form:"schema"`
	Table    string `json:"table" form:"table"`
}

type TableData struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

type UpdateTableRequest struct {
	TableRef
	Column    string `json:"column" form:"column"`
	Value     string `json:"value" form:"value"`
	Condition string `json:"condition" form:"condition"` // boolean expression used as the WHERE clause
}

type ObjectCounts struct {
	Warehouses int `json:"warehouses"`
	Databases  int `json:"databases"`
	Schemas    int `json:"schemas"`
}
