package services

import (
	"context"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"inventory/apperrors"
	"inventory/store"
)

// fakeStore is an in-memory DocumentStore that interprets QueryOptions with
// the same semantics as the mongo adapter: conjunction of filters, single
// sort key, count before pagination, skip/limit. It also counts calls so
// tests can assert that invalid input never reaches the store.
type fakeStore struct {
	docs map[string]map[string]bson.M

	getCalls    int
	addCalls    int
	updateCalls int
	deleteCalls int
	queryCalls  int
}

func newFakeStore() *fakeStore {
	return &fakeStore{docs: map[string]map[string]bson.M{}}
}

func (f *fakeStore) collection(name string) map[string]bson.M {
	if f.docs[name] == nil {
		f.docs[name] = map[string]bson.M{}
	}
	return f.docs[name]
}

func (f *fakeStore) Get(ctx context.Context, collection, id string) (bson.M, error) {
	f.getCalls++
	doc, ok := f.collection(collection)[id]
	if !ok {
		return nil, apperrors.NotFound(collection, id)
	}
	return copyDoc(doc), nil
}

func (f *fakeStore) Add(ctx context.Context, collection string, doc bson.M) (string, error) {
	f.addCalls++
	oid := primitive.NewObjectID()
	stored := copyDoc(doc)
	stored["_id"] = oid
	f.collection(collection)[oid.Hex()] = stored
	return oid.Hex(), nil
}

func (f *fakeStore) Update(ctx context.Context, collection, id string, fields bson.M) error {
	f.updateCalls++
	doc, ok := f.collection(collection)[id]
	if !ok {
		return apperrors.NotFound(collection, id)
	}
	for k, v := range fields {
		doc[k] = v
	}
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, collection, id string) error {
	f.deleteCalls++
	if _, ok := f.collection(collection)[id]; !ok {
		return apperrors.NotFound(collection, id)
	}
	delete(f.collection(collection), id)
	return nil
}

func (f *fakeStore) QueryPage(ctx context.Context, collection string, opts store.QueryOptions) ([]bson.M, int64, error) {
	f.queryCalls++
	if err := opts.Validate(); err != nil {
		return nil, 0, err
	}

	var matched []bson.M
	for _, doc := range f.collection(collection) {
		if matchesAll(doc, opts.Filters) {
			matched = append(matched, copyDoc(doc))
		}
	}
	total := int64(len(matched))

	sort.SliceStable(matched, func(i, j int) bool {
		cmp := compareValues(matched[i][opts.Sort.Field], matched[j][opts.Sort.Field])
		if opts.Sort.Descending {
			return cmp > 0
		}
		return cmp < 0
	})

	skip := int(opts.Skip())
	if skip >= len(matched) {
		return []bson.M{}, total, nil
	}
	end := skip + opts.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[skip:end], total, nil
}

func matchesAll(doc bson.M, filters []store.Filter) bool {
	for _, f := range filters {
		cmp := compareValues(doc[f.Field], f.Value)
		switch f.Op {
		case store.OpEqual:
			if cmp != 0 {
				return false
			}
		case store.OpGreaterOrEqual:
			if cmp < 0 {
				return false
			}
		case store.OpLessOrEqual:
			if cmp > 0 {
				return false
			}
		case store.OpLessThan:
			if cmp >= 0 {
				return false
			}
		}
	}
	return true
}

func compareValues(a, b interface{}) int {
	switch av := a.(type) {
	case string:
		bv, _ := b.(string)
		return strings.Compare(av, bv)
	case int:
		bv, _ := b.(int)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	}
	return 0
}

func copyDoc(doc bson.M) bson.M {
	out := bson.M{}
	for k, v := range doc {
		out[k] = v
	}
	return out
}
