package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"inventory/apperrors"
)

// Store is a generic document-store adapter over named mongo collections.
// Documents are flat field/value maps; the store assigns ids on Add and the
// adapter is agnostic to what the fields mean.
type Store struct {
	db *mongo.Database
}

func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

// Get returns the document with the given id, or ErrNotFound.
func (s *Store) Get(ctx context.Context, collection, id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NotFound(collection, id)
	}

	var doc bson.M
	err = s.db.Collection(collection).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFound(collection, id)
	}
	if err != nil {
		return nil, apperrors.Unavailable(err)
	}
	return doc, nil
}

// Add inserts the document and returns the store-assigned id.
func (s *Store) Add(ctx context.Context, collection string, doc bson.M) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", apperrors.Unavailable(err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", apperrors.Unavailable(errors.New("unexpected inserted id type"))
	}
	return oid.Hex(), nil
}

// Update merges the given fields into an existing document. Fields present
// overwrite, fields absent are untouched; the schema is flat so no deep merge
// happens. Fails with ErrNotFound when the id is absent.
func (s *Store) Update(ctx context.Context, collection, id string, fields bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.NotFound(collection, id)
	}

	res, err := s.db.Collection(collection).UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return apperrors.Unavailable(err)
	}
	if res.MatchedCount == 0 {
		return apperrors.NotFound(collection, id)
	}
	return nil
}

// Delete removes the document with the given id, or fails with ErrNotFound.
func (s *Store) Delete(ctx context.Context, collection, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.NotFound(collection, id)
	}

	res, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return apperrors.Unavailable(err)
	}
	if res.DeletedCount == 0 {
		return apperrors.NotFound(collection, id)
	}
	return nil
}

// QueryPage runs a filtered, sorted, paginated scan and returns one page of
// documents plus the total count of matches before pagination. A page beyond
// the available data yields an empty slice with the real total.
func (s *Store) QueryPage(ctx context.Context, collection string, opts QueryOptions) ([]bson.M, int64, error) {
	if err := opts.Validate(); err != nil {
		return nil, 0, err
	}

	col := s.db.Collection(collection)
	filter := buildFilter(opts.Filters)

	total, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, apperrors.Unavailable(err)
	}

	findOpts := options.Find().
		SetSort(sortDoc(opts.Sort)).
		SetSkip(opts.Skip()).
		SetLimit(int64(opts.PageSize))

	cursor, err := col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, apperrors.Unavailable(err)
	}

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, apperrors.Unavailable(err)
	}
	return docs, total, nil
}
