package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuoteIdentifier(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{name: "upper case", in: "DB1", expected: "DB1"},
		{name: "lower case kept unquoted", in: "orders", expected: "orders"},
		{name: "dollar sign", in: "T$1", expected: "T$1"},
		{name: "leading digit", in: "1abc", expected: `"1abc"`},
		{name: "space", in: "my table", expected: `"my table"`},
		{name: "embedded quote", in: `a"b`, expected: `"a""b"`},
		{name: "injection attempt", in: "x; DROP DATABASE y", expected: `"x; DROP DATABASE y"`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, QuoteIdentifier(tc.in))
		})
	}
}

func TestQuoteName(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{name: "upper case", in: "DB1", expected: `"DB1"`},
		{name: "lower case keeps its case", in: "my_db", expected: `"my_db"`},
		{name: "reserved word", in: "ORDER", expected: `"ORDER"`},
		{name: "embedded quote", in: `a"b`, expected: `"a""b"`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, QuoteName(tc.in))
		})
	}
}

func TestQualifiedName(t *testing.T) {
	assert.Equal(t, `"DB1"."PUBLIC"."ORDERS"`, QualifiedName("DB1", "PUBLIC", "ORDERS"))
	assert.Equal(t, `"my_db"."my schema"`, QualifiedName("my_db", "my schema"))
	assert.Equal(t, `"DB1"."PUBLIC"."ORDER"`, QualifiedName("DB1", "PUBLIC", "ORDER"))
}

func TestIsValidIdentifier(t *testing.T) {
	assert.True(t, IsValidIdentifier("_tmp"))
	assert.False(t, IsValidIdentifier(""))
	assert.False(t, IsValidIdentifier("a-b"))
}
