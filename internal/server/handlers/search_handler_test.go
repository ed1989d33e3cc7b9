package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/goto/salt/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/goto/searchable/core/search"
	"github.com/goto/searchable/core/search/mocks"
	"github.com/goto/searchable/internal/server"
	"github.com/goto/searchable/internal/server/handlers"
)

func ordersEntity() search.ConfigEntity {
	return search.ConfigEntity{
		Table: "orders",
		Columns: *(&search.ColumnConfigMap{}).
			Set("name", search.LabelColumn("Customer Name")).
			Set("total_cost", search.StructuredColumn(search.ColumnConfig{Type: search.ColumnTypeNumber})),
	}
}

func setupRouter(repo *mocks.RecordRepository) *mux.Router {
	registry := search.NewRegistry()
	registry.Register("orders", ordersEntity())
	svc := search.NewService(log.NewNoop(), registry, repo)

	router := mux.NewRouter()
	server.RegisterRoutes(router, handlers.NewSearchHandler(log.NewNoop(), svc))
	return router
}

func doRequest(t *testing.T, router *mux.Router, url string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	router.ServeHTTP(rr, req)
	return rr
}

func TestSearchHandlerSearch(t *testing.T) {
	t.Run("should return 404 for unregistered entity", func(t *testing.T) {
		rr := doRequest(t, setupRouter(new(mocks.RecordRepository)), "/v1beta1/entities/unknown/search?q=john")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("should return 400 for negative size", func(t *testing.T) {
		repo := new(mocks.RecordRepository)
		rr := doRequest(t, setupRouter(repo), "/v1beta1/entities/orders/search?q=john&size=-1")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		repo.AssertNotCalled(t, "Search")
	})

	t.Run("should return matching records", func(t *testing.T) {
		repo := new(mocks.RecordRepository)
		repo.On("Search", mock.Anything, ordersEntity(), search.Filter{
			Query:    "john",
			SearchBy: search.AllColumns,
			Size:     5,
		}).Return([]search.Record{{"name": "john"}}, nil)

		rr := doRequest(t, setupRouter(repo), "/v1beta1/entities/orders/search?q=john&size=5")
		assert.Equal(t, http.StatusOK, rr.Code)

		var response handlers.SearchResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.Equal(t, "orders", response.Entity)
		assert.Equal(t, "john", response.Query)
		assert.Equal(t, 1, response.Total)
		require.Len(t, response.Records, 1)
		assert.Equal(t, "john", response.Records[0]["name"])
		repo.AssertExpectations(t)
	})

	t.Run("should pass the requested search column through", func(t *testing.T) {
		repo := new(mocks.RecordRepository)
		repo.On("Search", mock.Anything, ordersEntity(), search.Filter{
			Query:    "100",
			SearchBy: "total_cost",
		}).Return([]search.Record{}, nil)

		rr := doRequest(t, setupRouter(repo), "/v1beta1/entities/orders/search?q=100&search_by=total_cost")
		assert.Equal(t, http.StatusOK, rr.Code)
		repo.AssertExpectations(t)
	})
}

func TestSearchHandlerSearchColumns(t *testing.T) {
	t.Run("should return 404 for unregistered entity", func(t *testing.T) {
		rr := doRequest(t, setupRouter(new(mocks.RecordRepository)), "/v1beta1/entities/unknown/search_columns")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("should return ordered column options", func(t *testing.T) {
		rr := doRequest(t, setupRouter(new(mocks.RecordRepository)), "/v1beta1/entities/orders/search_columns")
		assert.Equal(t, http.StatusOK, rr.Code)

		var response handlers.SearchColumnsResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.Equal(t, "orders", response.Entity)
		assert.Equal(t, []search.ColumnOption{
			{Key: "name", Label: "Customer Name"},
			{Key: "total_cost", Label: "Total cost"},
		}, response.Columns)
	})
}

func TestSearchHandlerEntities(t *testing.T) {
	rr := doRequest(t, setupRouter(new(mocks.RecordRepository)), "/v1beta1/entities")
	assert.Equal(t, http.StatusOK, rr.Code)

	var response handlers.EntitiesResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, []string{"orders"}, response.Entities)
}

func TestSearchHandlerUnknownRoute(t *testing.T) {
	rr := doRequest(t, setupRouter(new(mocks.RecordRepository)), "/v1beta1/nope")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
