package request

import (
	"context"
	"errors"

	"prestova-one/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrNotFound = errors.New("request not found")
	// ErrConflict means a concurrent decision changed the request between
	// read and write; the caller should re-read and retry.
	ErrConflict = errors.New("request was modified concurrently")
)

type RequestRepository interface {
	Create(ctx context.Context, req *Request) error
	Get(ctx context.Context, id string) (*Request, error)
	List(ctx context.Context, filter bson.M, limit, offset int64) ([]Request, int64, error)
	// UpdateDecision persists the outcome of an approval decision. The write
	// is a compare-and-set on the request's prior overall status so that two
	// racing approvers cannot both commit against the same pending step.
	UpdateDecision(ctx context.Context, id string, expectedStatus Status, req *Request) error
	EnsureIndexes(ctx context.Context) error
}

type RequestRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewRequestRepository(mongodb *database.MongodbDB) RequestRepository {
	return &RequestRepositoryImpl{
		Collection: mongodb.DB.Collection("requests"),
	}
}

func (r *RequestRepositoryImpl) Create(ctx context.Context, req *Request) error {
	_, err := r.Collection.InsertOne(ctx, req)
	return err
}

func (r *RequestRepositoryImpl) Get(ctx context.Context, id string) (*Request, error) {
	var req Request
	err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&req)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *RequestRepositoryImpl) List(ctx context.Context, filter bson.M, limit, offset int64) ([]Request, int64, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	if offset > 0 {
		opts.SetSkip(offset)
	}
	opts.SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var requests []Request
	if err = cursor.All(ctx, &requests); err != nil {
		return nil, 0, err
	}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

func (r *RequestRepositoryImpl) UpdateDecision(ctx context.Context, id string, expectedStatus Status, req *Request) error {
	update := bson.M{
		"$set": bson.M{
			"status":        req.Status,
			"approval_flow": req.ApprovalFlow,
			"updated_at":    req.UpdatedAt,
		},
	}

	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": id, "status": expectedStatus}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		// Either the request vanished or its status moved under us
		var exists Request
		if ferr := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&exists); ferr == mongo.ErrNoDocuments {
			return ErrNotFound
		}
		return ErrConflict
	}
	return nil
}

func (r *RequestRepositoryImpl) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "department_id", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "requester_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}
	_, err := r.Collection.Indexes().CreateMany(ctx, indexes)
	return err
}
