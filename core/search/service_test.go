package search_test

import (
	"context"
	"errors"
	"testing"

	"github.com/goto/salt/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/goto/searchable/core/search"
	"github.com/goto/searchable/core/search/mocks"
)

func testEntity() search.ConfigEntity {
	return search.ConfigEntity{
		Table:   "orders",
		Columns: *testColumns(),
		Relations: map[string]search.Relation{
			"user": {Table: "users", ForeignKey: "id", OwnerKey: "user_id"},
		},
	}
}

func newTestService(repo *mocks.RecordRepository) *search.Service {
	registry := search.NewRegistry()
	registry.Register("orders", testEntity())
	return search.NewService(log.NewNoop(), registry, repo)
}

func TestServiceSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("should return not found error for unregistered entity", func(t *testing.T) {
		repo := new(mocks.RecordRepository)
		svc := newTestService(repo)

		_, err := svc.Search(ctx, "unknown", search.Filter{Query: "john"})
		assert.ErrorAs(t, err, &search.NotFoundError{})
		repo.AssertNotCalled(t, "Search")
	})

	t.Run("should default search column to all", func(t *testing.T) {
		repo := new(mocks.RecordRepository)
		svc := newTestService(repo)

		expected := []search.Record{{"id": int64(1), "name": "john"}}
		repo.On("Search", ctx, testEntity(), search.Filter{Query: "john", SearchBy: search.AllColumns}).
			Return(expected, nil)

		records, err := svc.Search(ctx, "orders", search.Filter{Query: "john"})
		assert.NoError(t, err)
		assert.Equal(t, expected, records)
		repo.AssertExpectations(t)
	})

	t.Run("should return invalid error for negative size", func(t *testing.T) {
		repo := new(mocks.RecordRepository)
		svc := newTestService(repo)

		_, err := svc.Search(ctx, "orders", search.Filter{Query: "john", Size: -1})
		assert.ErrorAs(t, err, &search.InvalidError{})
		repo.AssertNotCalled(t, "Search")
	})

	t.Run("should wrap repository errors", func(t *testing.T) {
		repo := new(mocks.RecordRepository)
		svc := newTestService(repo)

		repo.On("Search", ctx, testEntity(), mock.Anything).
			Return(nil, errors.New("connection refused"))

		_, err := svc.Search(ctx, "orders", search.Filter{Query: "john"})
		assert.ErrorContains(t, err, "connection refused")
	})
}

func TestServiceSearchColumnOptions(t *testing.T) {
	t.Run("should return not found error for unregistered entity", func(t *testing.T) {
		svc := newTestService(new(mocks.RecordRepository))

		_, err := svc.SearchColumnOptions("unknown")
		assert.ErrorAs(t, err, &search.NotFoundError{})
	})

	t.Run("should project options in declaration order", func(t *testing.T) {
		svc := newTestService(new(mocks.RecordRepository))

		options, err := svc.SearchColumnOptions("orders")
		assert.NoError(t, err)
		assert.Equal(t, []search.ColumnOption{
			{Key: "name", Label: "Customer Name"},
			{Key: "total_cost", Label: "Total cost"},
			{Key: "user_name", Label: "User name"},
		}, options)
	})
}

func TestServiceEntities(t *testing.T) {
	registry := search.NewRegistry()
	registry.Register("orders", testEntity())
	registry.Register("users", search.ConfigEntity{Table: "users"})
	svc := search.NewService(log.NewNoop(), registry, new(mocks.RecordRepository))

	assert.Equal(t, []string{"orders", "users"}, svc.Entities())
}
