package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/goto/searchable/core/search"
)

// RecordRepository is a mock of search.RecordRepository.
type RecordRepository struct {
	mock.Mock
}

func (m *RecordRepository) Search(ctx context.Context, ent search.Searchable, flt search.Filter) ([]search.Record, error) {
	args := m.Called(ctx, ent, flt)

	var records []search.Record
	if args.Get(0) != nil {
		records = args.Get(0).([]search.Record)
	}
	return records, args.Error(1)
}
