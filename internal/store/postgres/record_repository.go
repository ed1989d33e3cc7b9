package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/goto/searchable/core/search"
)

// RecordRepository runs compiled searches against entity tables.
type RecordRepository struct {
	client *Client
}

func NewRecordRepository(client *Client) (*RecordRepository, error) {
	if client == nil {
		return nil, errNilPostgresClient
	}
	return &RecordRepository{client: client}, nil
}

// Search selects records of ent matching the filter's term. An empty term
// or an unknown search column returns the unfiltered selection.
func (r *RecordRepository) Search(ctx context.Context, ent search.Searchable, flt search.Filter) ([]search.Record, error) {
	builder := r.buildSearchQuery(ent, flt)

	query, args, err := builder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building search query: %w", err)
	}

	rows, err := r.client.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error running search query: %w", checkPostgresError(err))
	}
	defer rows.Close()

	records := []search.Record{}
	for rows.Next() {
		row := map[string]interface{}{}
		if err := rows.MapScan(row); err != nil {
			return nil, fmt.Errorf("error scanning search result: %w", err)
		}
		records = append(records, search.Record(row))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading search results: %w", err)
	}

	return records, nil
}

func (r *RecordRepository) buildSearchQuery(ent search.Searchable, flt search.Filter) sq.SelectBuilder {
	builder := sq.Select("*").From(ent.SearchTable())

	qb := newQueryBuilder(ent.SearchTable(), ent.SearchRelations())
	search.ApplySearch(qb, ent.SearchableColumns(), flt.Query, flt.SearchBy)
	if pred := qb.predicate(); pred != nil {
		builder = builder.Where(pred)
	}

	if flt.Size > 0 {
		builder = builder.Limit(uint64(flt.Size))
	}
	if flt.Offset > 0 {
		builder = builder.Offset(uint64(flt.Offset))
	}
	return builder
}
