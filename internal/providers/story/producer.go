package story

import (
	"context"
	"math/rand/v2"

	"horrorgen/internal/catalog"
)

const catalogProviderName = "catalog"

// Producer turns a prompt into story text. Implementations must be safe for
// concurrent use.
type Producer interface {
	ProduceStory(ctx context.Context, prompt string) (string, error)
}

// CatalogProducer draws a story uniformly at random from a fixed catalog. The
// prompt is accepted but does not influence the draw.
type CatalogProducer struct {
	catalog *catalog.Catalog
	intN    func(n int) int
}

func NewCatalogProducer(c *catalog.Catalog) *CatalogProducer {
	return &CatalogProducer{catalog: c, intN: rand.IntN}
}

func (p *CatalogProducer) Name() string {
	return catalogProviderName
}

func (p *CatalogProducer) ProduceStory(ctx context.Context, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return p.catalog.Story(p.intN(p.catalog.Len())), nil
}

var _ Producer = (*CatalogProducer)(nil)
