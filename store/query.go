package store

import (
	"go.mongodb.org/mongo-driver/bson"

	"inventory/apperrors"
)

// MaxPageSize bounds a single page of query results.
const MaxPageSize = 100

// Operator names a comparison applied to a single document field.
type Operator string

const (
	OpEqual          Operator = "eq"
	OpGreaterOrEqual Operator = "gte"
	OpLessOrEqual    Operator = "lte"
	OpLessThan       Operator = "lt"
)

var mongoOps = map[Operator]string{
	OpGreaterOrEqual: "$gte",
	OpLessOrEqual:    "$lte",
	OpLessThan:       "$lt",
}

// Filter is one field comparison; a query is the conjunction of its filters.
type Filter struct {
	Field string
	Op    Operator
	Value interface{}
}

type Sort struct {
	Field      string
	Descending bool
}

// QueryOptions describes a filtered, sorted, paginated collection scan.
type QueryOptions struct {
	Filters  []Filter
	Sort     Sort
	Page     int
	PageSize int
}

// Validate rejects out-of-range paging before any store round trip.
func (o QueryOptions) Validate() error {
	if o.Page < 1 {
		return apperrors.InvalidArgument("page must be >= 1, got %d", o.Page)
	}
	if o.PageSize < 1 || o.PageSize > MaxPageSize {
		return apperrors.InvalidArgument("pageSize must be between 1 and %d, got %d", MaxPageSize, o.PageSize)
	}
	return nil
}

// Skip returns the number of documents to skip for the requested page.
func (o QueryOptions) Skip() int64 {
	return int64(o.Page-1) * int64(o.PageSize)
}

// buildFilter folds the filter list into a single bson.M conjunction. Range
// operators on the same field merge into one operator document, so a
// half-open interval like [v, w) becomes {"$gte": v, "$lt": w}.
func buildFilter(filters []Filter) bson.M {
	query := bson.M{}
	for _, f := range filters {
		if f.Op == OpEqual {
			query[f.Field] = f.Value
			continue
		}
		rangeDoc, ok := query[f.Field].(bson.M)
		if !ok {
			rangeDoc = bson.M{}
			query[f.Field] = rangeDoc
		}
		rangeDoc[mongoOps[f.Op]] = f.Value
	}
	return query
}

// sortDoc maps the single sort key onto mongo's sort document. Ties are left
// to the store's native order.
func sortDoc(s Sort) bson.D {
	dir := 1
	if s.Descending {
		dir = -1
	}
	return bson.D{{Key: s.Field, Value: dir}}
}
