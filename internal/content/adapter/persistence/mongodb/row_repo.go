package mongodb

import (
	"context"
	"time"

	"clubsite/internal/content/domain/model"
	"clubsite/internal/content/domain/repository"
	apperrors "clubsite/internal/shared/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRowRepository implements the RowRepository interface using MongoDB.
// Rows are addressed by the application-level "id" column, not Mongo's _id.
type MongoRowRepository struct {
	db *mongo.Database
}

// NewMongoRowRepository creates a new MongoDB row repository and ensures the
// indexes the admin and RSVP paths rely on.
func NewMongoRowRepository(db *mongo.Database) (*MongoRowRepository, error) {
	repo := &MongoRowRepository{db: db}

	ctx := context.Background()

	// Composite unique index backing the duplicate-RSVP classification.
	rsvpIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "event_id", Value: 1}, {Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := db.Collection("event_rsvps").Indexes().CreateOne(ctx, rsvpIndex); err != nil {
		return nil, err
	}

	// Unique subscriber emails.
	subIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := db.Collection("newsletter_subscribers").Indexes().CreateOne(ctx, subIndex); err != nil {
		return nil, err
	}

	return repo, nil
}

// List fetches all rows of a collection, optionally filtered, sorted
// ascending by the ordering key.
func (r *MongoRowRepository) List(ctx context.Context, collection string, opts repository.ListOptions) ([]model.Row, error) {
	filter := bson.M{}
	for k, v := range opts.Filter {
		filter[k] = v
	}

	findOpts := options.Find()
	if opts.OrderBy != "" {
		findOpts.SetSort(bson.D{{Key: opts.OrderBy, Value: 1}})
	}

	cursor, err := r.db.Collection(collection).Find(ctx, filter, findOpts)
	if err != nil {
		return nil, apperrors.NewInfrastructureError("row store query failed").WithCause(err)
	}
	defer cursor.Close(ctx)

	var rows []model.Row
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, apperrors.NewInfrastructureError("row decode failed").WithCause(err)
		}
		rows = append(rows, normalizeRow(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, apperrors.NewInfrastructureError("row cursor failed").WithCause(err)
	}
	return rows, nil
}

// Insert stores one row.
func (r *MongoRowRepository) Insert(ctx context.Context, collection string, row model.Row) error {
	doc := bson.M{}
	for k, v := range row {
		doc[k] = v
	}
	if _, err := r.db.Collection(collection).InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.NewConflictError("duplicate row").WithCause(err)
		}
		return apperrors.NewInfrastructureError("row insert failed").WithCause(err)
	}
	return nil
}

// Update replaces the editable columns of the row identified by id.
func (r *MongoRowRepository) Update(ctx context.Context, collection, id string, row model.Row) error {
	set := bson.M{}
	for k, v := range row {
		set[k] = v
	}
	res, err := r.db.Collection(collection).UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.NewConflictError("duplicate row").WithCause(err)
		}
		return apperrors.NewInfrastructureError("row update failed").WithCause(err)
	}
	if res.MatchedCount == 0 {
		return apperrors.NewNotFoundError("row")
	}
	return nil
}

// Delete removes the row identified by id.
func (r *MongoRowRepository) Delete(ctx context.Context, collection, id string) error {
	res, err := r.db.Collection(collection).DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return apperrors.NewInfrastructureError("row delete failed").WithCause(err)
	}
	if res.DeletedCount == 0 {
		return apperrors.NewNotFoundError("row")
	}
	return nil
}

// normalizeRow converts BSON driver types into the plain Go values the rest
// of the system expects. Mongo's ObjectID is dropped: rows are keyed by the
// application "id" column.
func normalizeRow(doc bson.M) model.Row {
	row := make(model.Row, len(doc))
	for k, v := range doc {
		if k == "_id" {
			continue
		}
		row[k] = normalizeValue(v)
	}
	return row
}

func normalizeValue(v interface{}) interface{} {
	switch val := v.(type) {
	case primitive.A:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = normalizeValue(item)
		}
		return out
	case primitive.M:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			out[k] = normalizeValue(item)
		}
		return out
	case primitive.DateTime:
		return val.Time().UTC()
	case primitive.ObjectID:
		return val.Hex()
	case int32:
		return float64(val)
	case int64:
		return float64(val)
	case time.Time:
		return val.UTC()
	default:
		return v
	}
}
