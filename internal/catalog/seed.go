package catalog

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SeedIfEmpty populates the product catalog from the embedded manifest
// when the collection holds no documents, and does nothing otherwise.
// It is invoked once per process startup, independently of the HTTP
// layer, so tests can call it directly.
//
// The count-then-insert sequence is not atomic: two processes racing on
// an empty store can both pass the zero check and double-insert. The
// manifest is static, so the result is duplicate listings rather than
// corrupted state; this matches the observed behavior and is left as a
// known limitation.
func SeedIfEmpty(ctx context.Context, repo ProductRepository) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		zap.L().Info("product catalog already seeded", zap.Int64("count", count))
		return nil
	}

	products := Manifest()
	for i := range products {
		products[i].ID = uuid.NewString()
	}

	if err := repo.InsertBatch(ctx, products); err != nil {
		return err
	}

	zap.L().Info("seeded product catalog", zap.Int("count", len(products)))
	return nil
}
