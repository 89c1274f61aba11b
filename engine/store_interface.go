package engine

import (
	"github.com/lixenwraith/speaki-box/core"
)

// AnyStore provides type-erased operations for lifecycle management
// World destroys entities across all stores through this interface
type AnyStore interface {
	Remove(e core.Entity)
	Has(e core.Entity) bool
	Count() int
	Clear()
}

var _ AnyStore = (*Store[struct{}])(nil)
