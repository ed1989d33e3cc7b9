package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/goto/salt/log"

	"github.com/goto/searchable/core/search"
)

// SearchHandler exposes entity search and column options over HTTP.
type SearchHandler struct {
	logger        log.Logger
	searchService *search.Service
}

func NewSearchHandler(logger log.Logger, searchService *search.Service) *SearchHandler {
	return &SearchHandler{
		logger:        logger,
		searchService: searchService,
	}
}

type SearchResponse struct {
	Entity  string          `json:"entity"`
	Query   string          `json:"query"`
	Total   int             `json:"total"`
	Records []search.Record `json:"records"`
}

type EntitiesResponse struct {
	Entities []string `json:"entities"`
}

type SearchColumnsResponse struct {
	Entity  string                `json:"entity"`
	Columns []search.ColumnOption `json:"columns"`
}

func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	entityName := mux.Vars(r)["name"]
	flt := buildFilter(r.URL.Query())

	records, err := h.searchService.Search(r.Context(), entityName, flt)
	if err != nil {
		var (
			notFound search.NotFoundError
			invalid  search.InvalidError
		)
		switch {
		case errors.As(err, &notFound):
			WriteJSONError(w, http.StatusNotFound, err.Error())
		case errors.As(err, &invalid):
			WriteJSONError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("error searching records", "entity", entityName, "error", err)
			WriteJSONError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		}
		return
	}

	writeJSON(w, http.StatusOK, SearchResponse{
		Entity:  entityName,
		Query:   flt.Query,
		Total:   len(records),
		Records: records,
	})
}

func (h *SearchHandler) SearchColumns(w http.ResponseWriter, r *http.Request) {
	entityName := mux.Vars(r)["name"]

	options, err := h.searchService.SearchColumnOptions(entityName)
	if err != nil {
		var notFound search.NotFoundError
		if errors.As(err, &notFound) {
			WriteJSONError(w, http.StatusNotFound, err.Error())
			return
		}
		h.logger.Error("error building column options", "entity", entityName, "error", err)
		WriteJSONError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	writeJSON(w, http.StatusOK, SearchColumnsResponse{
		Entity:  entityName,
		Columns: options,
	})
}

func (h *SearchHandler) Entities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, EntitiesResponse{
		Entities: h.searchService.Entities(),
	})
}

func buildFilter(params url.Values) search.Filter {
	flt := search.Filter{
		Query:    strings.TrimSpace(params.Get("q")),
		SearchBy: params.Get("search_by"),
	}
	flt.Size, _ = strconv.Atoi(params.Get("size"))
	flt.Offset, _ = strconv.Atoi(params.Get("offset"))
	return flt
}
