package helper

import (
	"regexp"
	"strings"
)

// IdentifierRegex matches names that can be used unquoted. Unquoted names keep
// the warehouse's case folding, so "orders" and "ORDERS" refer to the same object.
var IdentifierRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_$]*$`)

func IsValidIdentifier(s string) bool {
	return IdentifierRegex.MatchString(s)
}

// QuoteIdentifier is for names the user types: it returns s unchanged when it
// is a plain identifier, so "orders" still folds to ORDERS, and a
// double-quoted identifier otherwise.
func QuoteIdentifier(s string) string {
	if IsValidIdentifier(s) {
		return s
	}
	return QuoteName(s)
}

// QuoteName always double-quotes s, so it resolves to exactly the object the
// warehouse reported under that name. Lower-case names and reserved words
// such as ORDER need this.
func QuoteName(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// QualifiedName joins names reported by the warehouse with dots, each one
// quoted exactly, e.g. "DB1"."PUBLIC"."ORDERS".
func QualifiedName(parts ...string) string {
	quoted := make([]string, len(parts))
	for i, p := range parts {
		quoted[i] = QuoteName(p)
	}
	return strings.Join(quoted, ".")
}
