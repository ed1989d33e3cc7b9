package search

import (
	"fmt"
	"strconv"
)

// Operator is a comparison operator understood by a QueryBuilder.
type Operator string

const (
	OperatorEqual Operator = "="
	// OperatorLike is case-insensitive substring containment; the value
	// carries the %term% pattern.
	OperatorLike Operator = "LIKE"
)

// AllColumns selects every configured column for search.
const AllColumns = "all"

// QueryBuilder is the abstract record-store capability the compiler emits
// predicates against. Implementations OR-combine conditions added within
// one group; raw conditions must bind params, never interpolate them.
type QueryBuilder interface {
	// AndGroup applies fn as one grouped clause, AND-combined with
	// whatever else is on the query.
	AndGroup(fn func(QueryBuilder))
	// OrCondition adds a field comparison, OR-combined with prior
	// conditions in the current group.
	OrCondition(field string, op Operator, value interface{})
	// OrRawCondition adds a raw parameterized condition, OR-combined.
	OrRawCondition(expr string, params ...interface{})
	// OrRelationExists adds an OR-combined clause requiring at least one
	// related record satisfying fn to exist.
	OrRelationExists(relation string, fn func(QueryBuilder))
}

// numericTolerance is the strict upper bound on the distance between the
// field value rounded to the nearest integer and the parsed term. It lets a
// term typed without decimals match whole-number-ish stored values while
// the equality branch still catches exact matches.
const numericTolerance = "0.0001"

// ApplySearch compiles the column configuration and term into one grouped
// predicate on the builder: OR across columns, AND with everything outside
// the group. An empty term leaves the query untouched, as does a searchBy
// that names no configured column.
func ApplySearch(qb QueryBuilder, columns ColumnConfigMap, term, searchBy string) {
	if term == "" {
		return
	}

	configs := resolveColumns(columns, searchBy)
	if len(configs) == 0 {
		return
	}

	qb.AndGroup(func(group QueryBuilder) {
		for _, cfg := range configs {
			compileColumn(group, cfg, term)
		}
	})
}

// resolveColumns normalizes the entries selected by searchBy, dropping any
// without a resolvable field.
func resolveColumns(columns ColumnConfigMap, searchBy string) []ColumnConfig {
	if searchBy == AllColumns {
		configs := make([]ColumnConfig, 0, columns.Len())
		for _, key := range columns.Keys() {
			raw, _ := columns.Get(key)
			if cfg := Normalize(key, raw); cfg.Field != "" {
				configs = append(configs, cfg)
			}
		}
		return configs
	}

	raw, ok := columns.Get(searchBy)
	if !ok {
		return nil
	}
	cfg := Normalize(searchBy, raw)
	if cfg.Field == "" {
		return nil
	}
	return []ColumnConfig{cfg}
}

func compileColumn(group QueryBuilder, cfg ColumnConfig, term string) {
	if cfg.IsRelation() {
		compileRelation(group, cfg, term)
		return
	}
	compileDirect(group, cfg, term)
}

// compileRelation scopes the condition to related records. Terms in script
// ranges where charset mismatches break naive matching go through a
// charset round-trip before comparison; everything else reuses the direct
// search semantics on the related column.
func compileRelation(group QueryBuilder, cfg ColumnConfig, term string) {
	group.OrRelationExists(cfg.Relation, func(inner QueryBuilder) {
		if NeedsScriptAwareMatch(term) {
			inner.OrRawCondition(scriptNormalizedContains(cfg.Field), "%"+term+"%")
			return
		}
		compileDirect(inner, cfg, term)
	})
}

// compileDirect emits the numeric-or-text comparison for one column. A
// numerically classified column with a term that does not parse falls back
// to text containment.
func compileDirect(group QueryBuilder, cfg ColumnConfig, term string) {
	if IsNumeric(cfg, term) {
		if v, err := strconv.ParseFloat(term, 64); err == nil {
			group.OrCondition(cfg.Field, OperatorEqual, v)
			group.OrRawCondition(roundedTolerance(cfg.Field), v)
			return
		}
	}
	group.OrCondition(cfg.Field, OperatorLike, "%"+term+"%")
}

// roundedTolerance matches field values whose nearest integer is within
// the tolerance of the term.
func roundedTolerance(field string) string {
	return fmt.Sprintf("ABS(ROUND((%s)::numeric) - ?::numeric) < %s", field, numericTolerance)
}

// scriptNormalizedContains is a case-preserving containment comparison over
// a charset round-trip of the column value.
func scriptNormalizedContains(field string) string {
	return fmt.Sprintf("convert_from(convert_to((%s)::text, 'UTF8'), 'UTF8') LIKE ?", field)
}
