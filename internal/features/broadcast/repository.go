package broadcast

import (
	"context"
	"errors"
	"time"

	"prestova-one/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("broadcast list not found")

type BroadcastRepository interface {
	Create(ctx context.Context, list *BroadcastList) error
	Get(ctx context.Context, id string) (*BroadcastList, error)
	FindByName(ctx context.Context, name string) (*BroadcastList, error)
	List(ctx context.Context) ([]BroadcastList, error)
	Update(ctx context.Context, id string, list *BroadcastList) error
	Delete(ctx context.Context, id string) error
}

type BroadcastRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewBroadcastRepository(mongodb *database.MongodbDB) BroadcastRepository {
	return &BroadcastRepositoryImpl{
		Collection: mongodb.DB.Collection("broadcast_lists"),
	}
}

func (r *BroadcastRepositoryImpl) Create(ctx context.Context, list *BroadcastList) error {
	_, err := r.Collection.InsertOne(ctx, list)
	return err
}

func (r *BroadcastRepositoryImpl) Get(ctx context.Context, id string) (*BroadcastList, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var list BroadcastList
	err = r.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&list)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &list, nil
}

func (r *BroadcastRepositoryImpl) FindByName(ctx context.Context, name string) (*BroadcastList, error) {
	var list BroadcastList
	err := r.Collection.FindOne(ctx, bson.M{"name": name}).Decode(&list)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &list, nil
}

func (r *BroadcastRepositoryImpl) List(ctx context.Context) ([]BroadcastList, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var lists []BroadcastList
	if err = cursor.All(ctx, &lists); err != nil {
		return nil, err
	}
	return lists, nil
}

func (r *BroadcastRepositoryImpl) Update(ctx context.Context, id string, list *BroadcastList) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	update := bson.M{
		"$set": bson.M{
			"name":       list.Name,
			"recipients": list.Recipients,
			"updated_at": time.Now(),
		},
	}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	return err
}

func (r *BroadcastRepositoryImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
