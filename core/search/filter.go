package search

import (
	"github.com/goto/searchable/core/validator"
)

// Filter is one search invocation against an entity. SearchBy is either
// AllColumns or the key of a configured column; anything else leaves the
// query unfiltered.
type Filter struct {
	Query    string
	SearchBy string
	Size     int `json:"size" validate:"omitempty,gte=0"`
	Offset   int `json:"offset" validate:"omitempty,gte=0"`
}

func (f *Filter) Validate() error {
	return validator.ValidateStruct(f)
}
