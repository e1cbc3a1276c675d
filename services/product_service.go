package services

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"inventory/models"
	"inventory/store"
)

const productCollection = "products"

// highSentinel sorts after any realistic name character, so the half-open
// range [prefix, prefix+highSentinel) selects every nameLower value starting
// with the prefix.
const highSentinel = "\uf8ff"

// DocumentStore is the adapter contract the catalog needs: generic CRUD plus
// a filter+sort+paginate scan over named collections.
type DocumentStore interface {
	Get(ctx context.Context, collection, id string) (bson.M, error)
	Add(ctx context.Context, collection string, doc bson.M) (string, error)
	Update(ctx context.Context, collection, id string, fields bson.M) error
	Delete(ctx context.Context, collection, id string) error
	QueryPage(ctx context.Context, collection string, opts store.QueryOptions) ([]bson.M, int64, error)
}

// ProductService owns product semantics: the lowercase search-field
// derivation and the mapping from list parameters to store filters.
type ProductService struct {
	store DocumentStore
}

func NewProductService(ds DocumentStore) *ProductService {
	return &ProductService{store: ds}
}

// Create inserts a product and returns the assembled entity with the
// store-assigned id. The returned view is built from the input, not
// re-fetched.
func (s *ProductService) Create(ctx context.Context, in models.CreateProductRequest) (models.Product, error) {
	doc := bson.M{
		"name":        in.Name,
		"nameLower":   strings.ToLower(in.Name),
		"description": in.Description,
		"price":       in.Price,
		"stock":       *in.Stock,
		"category":    in.Category,
	}

	id, err := s.store.Add(ctx, productCollection, doc)
	if err != nil {
		return models.Product{}, err
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Product{}, err
	}

	return models.Product{
		ID:          oid,
		Name:        in.Name,
		NameLower:   strings.ToLower(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Stock:       *in.Stock,
		Category:    in.Category,
	}, nil
}

// List runs the filtered, sorted, paginated query and assembles the
// pagination metadata. The total always reflects the full filtered set.
func (s *ProductService) List(ctx context.Context, q models.ProductQuery) (models.PaginatedProducts, error) {
	opts := store.QueryOptions{
		Filters:  buildProductFilters(q),
		Sort:     store.Sort{Field: q.SortBy, Descending: q.SortOrder == "desc"},
		Page:     q.Page,
		PageSize: q.PageSize,
	}
	if err := opts.Validate(); err != nil {
		return models.PaginatedProducts{}, err
	}

	docs, total, err := s.store.QueryPage(ctx, productCollection, opts)
	if err != nil {
		return models.PaginatedProducts{}, err
	}

	products := make([]models.Product, 0, len(docs))
	for _, doc := range docs {
		p, err := docToProduct(doc)
		if err != nil {
			return models.PaginatedProducts{}, err
		}
		products = append(products, p)
	}

	totalPages := int((total + int64(q.PageSize) - 1) / int64(q.PageSize))
	return models.PaginatedProducts{
		Products: products,
		Pagination: models.Pagination{
			Page:            q.Page,
			PageSize:        q.PageSize,
			Total:           total,
			TotalPages:      totalPages,
			HasNextPage:     q.Page < totalPages,
			HasPreviousPage: q.Page > 1,
		},
	}, nil
}

// Get returns the product with the given id.
func (s *ProductService) Get(ctx context.Context, id string) (models.Product, error) {
	doc, err := s.store.Get(ctx, productCollection, id)
	if err != nil {
		return models.Product{}, err
	}
	return docToProduct(doc)
}

// Update applies a partial update. Existence is checked before any write so
// a missing id never reaches the store's update path; the returned product
// is the fetched state overlaid with the supplied fields, not a re-fetch.
func (s *ProductService) Update(ctx context.Context, id string, in models.UpdateProductRequest) (models.Product, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return models.Product{}, err
	}

	fields := bson.M{}
	if in.Name != nil {
		existing.Name = *in.Name
		existing.NameLower = strings.ToLower(*in.Name)
		fields["name"] = existing.Name
		fields["nameLower"] = existing.NameLower
	}
	if in.Description != nil {
		existing.Description = *in.Description
		fields["description"] = existing.Description
	}
	if in.Price != nil {
		existing.Price = *in.Price
		fields["price"] = existing.Price
	}
	if in.Stock != nil {
		existing.Stock = *in.Stock
		fields["stock"] = existing.Stock
	}
	if in.Category != nil {
		existing.Category = *in.Category
		fields["category"] = existing.Category
	}

	if len(fields) == 0 {
		return existing, nil
	}

	if err := s.store.Update(ctx, productCollection, id, fields); err != nil {
		return models.Product{}, err
	}
	return existing, nil
}

// Remove hard-deletes the product. Existence is checked before the write.
func (s *ProductService) Remove(ctx context.Context, id string) (models.DeleteResult, error) {
	if _, err := s.store.Get(ctx, productCollection, id); err != nil {
		return models.DeleteResult{}, err
	}
	if err := s.store.Delete(ctx, productCollection, id); err != nil {
		return models.DeleteResult{}, err
	}
	return models.DeleteResult{ID: id, Deleted: true}, nil
}

// buildProductFilters maps the optional list parameters onto store filters,
// combined by conjunction. The name filter is a case-insensitive PREFIX
// match over the precomputed nameLower field, emulated as a half-open range
// scan.
func buildProductFilters(q models.ProductQuery) []store.Filter {
	var filters []store.Filter
	if q.Name != "" {
		lower := strings.ToLower(q.Name)
		filters = append(filters,
			store.Filter{Field: "nameLower", Op: store.OpGreaterOrEqual, Value: lower},
			store.Filter{Field: "nameLower", Op: store.OpLessThan, Value: lower + highSentinel},
		)
	}
	if q.Category != "" {
		filters = append(filters, store.Filter{Field: "category", Op: store.OpEqual, Value: q.Category})
	}
	if q.MinPrice != nil {
		filters = append(filters, store.Filter{Field: "price", Op: store.OpGreaterOrEqual, Value: *q.MinPrice})
	}
	if q.MaxPrice != nil {
		filters = append(filters, store.Filter{Field: "price", Op: store.OpLessOrEqual, Value: *q.MaxPrice})
	}
	return filters
}

// docToProduct decodes a raw store document into the domain entity.
func docToProduct(doc bson.M) (models.Product, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return models.Product{}, err
	}
	var p models.Product
	if err := bson.Unmarshal(raw, &p); err != nil {
		return models.Product{}, err
	}
	return p, nil
}
