package postgres

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/goto/searchable/core/search"
)

// queryBuilder implements search.QueryBuilder on top of squirrel. Clauses
// added through the Or* methods are OR-combined; groups added through
// AndGroup are AND-combined with each other and with the OR clauses.
type queryBuilder struct {
	table     string
	relations map[string]search.Relation

	and sq.And
	or  sq.Or
}

func newQueryBuilder(table string, relations map[string]search.Relation) *queryBuilder {
	return &queryBuilder{
		table:     table,
		relations: relations,
	}
}

func (b *queryBuilder) AndGroup(fn func(search.QueryBuilder)) {
	inner := newQueryBuilder(b.table, b.relations)
	fn(inner)
	if pred := inner.predicate(); pred != nil {
		b.and = append(b.and, pred)
	}
}

func (b *queryBuilder) OrCondition(field string, op search.Operator, value interface{}) {
	switch op {
	case search.OperatorEqual:
		b.or = append(b.or, sq.Eq{field: value})
	case search.OperatorLike:
		// the contract requires case-insensitive containment
		b.or = append(b.or, sq.ILike{field: value})
	}
	// unknown operators are dropped rather than rendered unparameterized
}

func (b *queryBuilder) OrRawCondition(expr string, params ...interface{}) {
	b.or = append(b.or, sq.Expr(expr, params...))
}

// OrRelationExists emits an EXISTS subquery on the relation's table, joined
// on related.ForeignKey = host.OwnerKey with the inner predicate ANDed in.
// Relation names the entity does not declare are skipped.
func (b *queryBuilder) OrRelationExists(relation string, fn func(search.QueryBuilder)) {
	rel, ok := b.relations[relation]
	if !ok {
		return
	}

	inner := newQueryBuilder(rel.Table, b.relations)
	fn(inner)

	sub := sq.Select("1").
		From(rel.Table).
		Where(fmt.Sprintf("%s.%s = %s.%s", rel.Table, rel.ForeignKey, b.table, rel.OwnerKey))
	if pred := inner.predicate(); pred != nil {
		sub = sub.Where(pred)
	}

	subQuery, subArgs, err := sub.ToSql()
	if err != nil {
		return
	}
	b.or = append(b.or, sq.Expr("EXISTS ("+subQuery+")", subArgs...))
}

// predicate collapses the collected clauses into one Sqlizer, or nil when
// nothing was added.
func (b *queryBuilder) predicate() sq.Sqlizer {
	clauses := append(sq.And{}, b.and...)
	if len(b.or) > 0 {
		clauses = append(clauses, b.or)
	}

	switch len(clauses) {
	case 0:
		return nil
	case 1:
		return clauses[0]
	default:
		return clauses
	}
}
