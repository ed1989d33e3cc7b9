package search

import (
	"context"
	"fmt"

	"github.com/goto/salt/log"
)

// Record is one row returned by a search, keyed by column name.
type Record map[string]interface{}

// RecordRepository executes a compiled search against the record store.
type RecordRepository interface {
	Search(ctx context.Context, ent Searchable, flt Filter) ([]Record, error)
}

// Service exposes entity search to transport layers.
type Service struct {
	logger     log.Logger
	registry   *Registry
	recordRepo RecordRepository
}

func NewService(logger log.Logger, registry *Registry, recordRepo RecordRepository) *Service {
	return &Service{
		logger:     logger,
		registry:   registry,
		recordRepo: recordRepo,
	}
}

// Search runs the term in flt against the named entity's configured
// columns. An empty SearchBy searches every column.
func (s *Service) Search(ctx context.Context, entityName string, flt Filter) ([]Record, error) {
	ent, ok := s.registry.Get(entityName)
	if !ok {
		return nil, NotFoundError{Entity: entityName}
	}

	if flt.SearchBy == "" {
		flt.SearchBy = AllColumns
	}
	if err := flt.Validate(); err != nil {
		return nil, InvalidError{Err: err}
	}

	records, err := s.recordRepo.Search(ctx, ent, flt)
	if err != nil {
		return nil, fmt.Errorf("error searching records of %q: %w", entityName, err)
	}
	return records, nil
}

// SearchColumnOptions returns the UI option list for the named entity.
func (s *Service) SearchColumnOptions(entityName string) ([]ColumnOption, error) {
	ent, ok := s.registry.Get(entityName)
	if !ok {
		return nil, NotFoundError{Entity: entityName}
	}
	return SearchColumnOptions(ent.SearchableColumns()), nil
}

// Entities returns registered entity names in registration order.
func (s *Service) Entities() []string {
	return s.registry.Names()
}
