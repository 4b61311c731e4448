package service

import (
	"errors"
	"fmt"

	sf "github.com/snowflakedb/gosnowflake"
)

var (
	ErrNotConnected       = errors.New("not connected to a warehouse")
	ErrInvalidIdentifier  = errors.New("identifier must not be empty")
	ErrEmptyFragment      = errors.New("statement fragment must not be empty")
	ErrMissingCredentials = errors.New("user, password and account are required")
)

// Describe renders err for display next to the control that triggered it.
// Errors reported by the service keep their error code and SQL state.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	var sfErr *sf.SnowflakeError
	if errors.As(err, &sfErr) {
		if sfErr.SQLState != "" {
			return fmt.Sprintf("%06d (%s): %s", sfErr.Number, sfErr.SQLState, sfErr.Message)
		}
		return fmt.Sprintf("%06d: %s", sfErr.Number, sfErr.Message)
	}
	return err.Error()
}
