// Package catalog turns profile documents into display records using the reference
// tables. Every function here is a pure read of its inputs.
package catalog

import (
	"github.com/kttyan/genshin-build-viewer/internal/domain"
)

// Catalog resolves names and assets against one frozen set of reference tables.
type Catalog struct {
	tables *domain.ReferenceTables
}

func New(tables *domain.ReferenceTables) *Catalog {
	if tables == nil {
		tables = domain.EmptyReferenceTables()
	}
	return &Catalog{tables: tables}
}

func (c *Catalog) text(hash domain.TextHash) (string, bool) {
	return c.tables.Text(hash)
}
