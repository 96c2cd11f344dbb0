package cart

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devservices/devshop/internal/domain"
)

// ErrNotFound signals that no cart exists for a session identifier.
var ErrNotFound = errors.New("cart not found")

// Repository persists one cart per session identifier.
type Repository interface {
	// Save upserts the cart for sessionID, replacing its entire item
	// list. An empty sessionID gets a freshly generated identifier;
	// the effective identifier is returned either way.
	Save(ctx context.Context, sessionID string, items []domain.CartItem) (string, error)

	// Get retrieves the cart for sessionID. Returns ErrNotFound when
	// the session has never saved a cart.
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)

	// Count returns the number of stored carts.
	Count(ctx context.Context) (int64, error)

	// DeleteOlderThan removes carts not updated since before, returning
	// how many were purged.
	DeleteOlderThan(ctx context.Context, before time.Time) (int64, error)
}

// MongoCartRepository is the MongoDB implementation of Repository.
type MongoCartRepository struct {
	coll *mongo.Collection
}

func NewMongoCartRepository(db *mongo.Database) *MongoCartRepository {
	return &MongoCartRepository{coll: db.Collection("carts")}
}

func (r *MongoCartRepository) Save(ctx context.Context, sessionID string, items []domain.CartItem) (string, error) {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	if items == nil {
		items = []domain.CartItem{}
	}

	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"items":      items,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"id":         uuid.NewString(),
			"session_id": sessionID,
			"created_at": now,
		},
	}
	_, err := r.coll.UpdateOne(ctx, bson.M{"session_id": sessionID}, update,
		options.Update().SetUpsert(true))
	if err != nil {
		return "", err
	}
	return sessionID, nil
}

func (r *MongoCartRepository) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	var c domain.Cart
	err := r.coll.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&c)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return nil, ErrNotFound
	case err != nil:
		return nil, err
	}
	return &c, nil
}

func (r *MongoCartRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *MongoCartRepository) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"updated_at": bson.M{"$lt": before}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
