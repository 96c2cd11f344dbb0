package catalog

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devservices/devshop/internal/domain"
)

// ErrNotFound signals a lookup miss, as opposed to a store fault.
var ErrNotFound = errors.New("product not found")

// ProductRepository provides access to the seeded product catalog.
type ProductRepository interface {
	// Count returns the number of stored products.
	Count(ctx context.Context) (int64, error)

	// InsertBatch stores all given products in one operation.
	InsertBatch(ctx context.Context, products []domain.Product) error

	// ListAll returns every stored product in insertion order, capped
	// at the configured fetch limit.
	ListAll(ctx context.Context) ([]domain.Product, error)

	// GetByID retrieves one product by its opaque identifier.
	// Returns ErrNotFound when no product matches.
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

// MongoProductRepository is the MongoDB implementation of ProductRepository.
type MongoProductRepository struct {
	coll     *mongo.Collection
	maxFetch int64
}

// NewMongoProductRepository creates a repository over the products
// collection. maxFetch caps ListAll; values below 1 fall back to 1000.
func NewMongoProductRepository(db *mongo.Database, maxFetch int64) *MongoProductRepository {
	if maxFetch < 1 {
		maxFetch = 1000
	}
	return &MongoProductRepository{coll: db.Collection("products"), maxFetch: maxFetch}
}

func (r *MongoProductRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *MongoProductRepository) InsertBatch(ctx context.Context, products []domain.Product) error {
	docs := make([]interface{}, 0, len(products))
	for i := range products {
		docs = append(docs, products[i])
	}
	_, err := r.coll.InsertMany(ctx, docs)
	return err
}

func (r *MongoProductRepository) ListAll(ctx context.Context) ([]domain.Product, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetLimit(r.maxFetch))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var products []domain.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *MongoProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	var p domain.Product
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&p)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return nil, ErrNotFound
	case err != nil:
		return nil, err
	}
	return &p, nil
}
