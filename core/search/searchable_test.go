package search_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goto/searchable/core/search"
)

func TestLoadRegistry(t *testing.T) {
	raw := `
entities:
  orders:
    table: orders
    search_columns:
      name: "Customer Name"
      total_cost:
        type: number
      user_name:
        relation: user
        field: full_name
    relations:
      user:
        table: users
        foreign_key: id
        owner_key: user_id
  users:
    table: users
    search_columns:
      full_name: "Full Name"
`
	registry, err := search.LoadRegistry(strings.NewReader(raw))
	require.NoError(t, err)

	assert.Equal(t, []string{"orders", "users"}, registry.Names())

	ent, ok := registry.Get("orders")
	require.True(t, ok)
	assert.Equal(t, "orders", ent.SearchTable())
	assert.Equal(t, []string{"name", "total_cost", "user_name"}, ent.SearchableColumns().Keys())
	assert.Equal(t, search.Relation{
		Table:      "users",
		ForeignKey: "id",
		OwnerKey:   "user_id",
	}, ent.SearchRelations()["user"])

	_, ok = registry.Get("payments")
	assert.False(t, ok)
}

func TestLoadRegistryMissingTable(t *testing.T) {
	raw := `
entities:
  orders:
    search_columns:
      name: "Customer Name"
`
	_, err := search.LoadRegistry(strings.NewReader(raw))
	assert.ErrorContains(t, err, "missing a table name")
}

func TestLoadRegistryInvalidYAML(t *testing.T) {
	_, err := search.LoadRegistry(strings.NewReader("entities: [not, a, mapping]"))
	assert.Error(t, err)
}

func TestRegistryRegisterReplaceKeepsOrder(t *testing.T) {
	registry := search.NewRegistry()
	registry.Register("orders", search.ConfigEntity{Table: "orders"})
	registry.Register("users", search.ConfigEntity{Table: "users"})
	registry.Register("orders", search.ConfigEntity{Table: "orders_v2"})

	assert.Equal(t, []string{"orders", "users"}, registry.Names())
	ent, _ := registry.Get("orders")
	assert.Equal(t, "orders_v2", ent.SearchTable())
}
