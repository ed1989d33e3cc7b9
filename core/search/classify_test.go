package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goto/searchable/core/search"
)

func TestIsNumeric(t *testing.T) {
	type testCase struct {
		Description string
		Config      search.ColumnConfig
		Term        string
		Expected    bool
	}
	var testCases = []testCase{
		{
			Description: "explicit number type wins regardless of term",
			Config:      search.ColumnConfig{Field: "name", Type: search.ColumnTypeNumber},
			Term:        "john",
			Expected:    true,
		},
		{
			Description: "explicit non-number type wins over numeric field name",
			Config:      search.ColumnConfig{Field: "total_cost", Type: "text"},
			Term:        "100",
			Expected:    false,
		},
		{
			Description: "field name containing cost is numeric without explicit type",
			Config:      search.ColumnConfig{Field: "total_cost"},
			Term:        "100",
			Expected:    true,
		},
		{
			Description: "field name hint is case-insensitive",
			Config:      search.ColumnConfig{Field: "OrderQuantity"},
			Term:        "abc",
			Expected:    true,
		},
		{
			Description: "field name hint applies even when term is not numeric",
			Config:      search.ColumnConfig{Field: "price"},
			Term:        "cheap",
			Expected:    true,
		},
		{
			Description: "plain field with numeric term sniffs numeric",
			Config:      search.ColumnConfig{Field: "zip"},
			Term:        "90210",
			Expected:    true,
		},
		{
			Description: "plain field with decimal term sniffs numeric",
			Config:      search.ColumnConfig{Field: "zip"},
			Term:        "12.5",
			Expected:    true,
		},
		{
			Description: "plain field with text term is textual",
			Config:      search.ColumnConfig{Field: "city"},
			Term:        "jakarta",
			Expected:    false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			assert.Equal(t, tc.Expected, search.IsNumeric(tc.Config, tc.Term))
		})
	}
}
