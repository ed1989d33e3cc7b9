package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goto/searchable/core/search"
)

func TestNeedsScriptAwareMatch(t *testing.T) {
	type testCase struct {
		Description string
		Term        string
		Expected    bool
	}
	var testCases = []testCase{
		{
			Description: "latin term needs no script-aware match",
			Term:        "Ahmed",
			Expected:    false,
		},
		{
			Description: "empty term needs no script-aware match",
			Term:        "",
			Expected:    false,
		},
		{
			Description: "arabic term is detected",
			Term:        "أحمد",
			Expected:    true,
		},
		{
			Description: "single arabic code point among latin is detected",
			Term:        "abcدxyz",
			Expected:    true,
		},
		{
			Description: "block boundaries are inclusive",
			Term:        string(rune(0x0600)) + string(rune(0x06FF)),
			Expected:    true,
		},
		{
			Description: "code point just past the block is not detected",
			Term:        string(rune(0x0700)),
			Expected:    false,
		},
		{
			Description: "other non-latin scripts are not detected",
			Term:        "東京",
			Expected:    false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			assert.Equal(t, tc.Expected, search.NeedsScriptAwareMatch(tc.Term))
		})
	}
}
