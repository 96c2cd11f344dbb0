package catalog

import (
	_ "embed"
	"encoding/json"

	"github.com/devservices/devshop/internal/domain"
)

//go:embed manifest.json
var manifestData []byte

// Manifest returns a fresh copy of the fixed product manifest used to
// seed the catalog. Entries carry no identifier; ids are assigned at
// seed time.
func Manifest() []domain.Product {
	var products []domain.Product
	if err := json.Unmarshal(manifestData, &products); err != nil {
		// The manifest is a compile-time asset; a decode failure is a
		// build defect, not a runtime condition.
		panic(err)
	}
	return products
}

// ManifestSize reports how many offerings the manifest defines.
func ManifestSize() int {
	return len(Manifest())
}
