package model

// Credentials identify a warehouse login. Two sessions that log in with the
// same Credentials still get independent connections.
type Credentials struct {
	User     string `json:"user" form:"user"`
	Password string `json:"password" form:"password"`
	Account  string `json:"account" form:"account"`
}

type ConnectRequest struct {
	Credentials
}

type CreateWarehouseRequest struct {
	Name string `json:"name" form:"name"`
}

type CreateDatabaseRequest struct {
	Name string `json:"name" form:"name"`
}

type CreateSchemaRequest struct {
	Database string `json:"database" form:"database"`
	Name     string `json:"name" form:"name"`
}

type CreateTableRequest struct {
	Database string `json:"database" form:"database"`
	Schema   string `json:"schema" form:"schema"`
	Name     string `json:"name" form:"name"`
	Columns  string `json:"columns" form:"columns"` // e.g. "id INT, label VARCHAR"
}
