package txcache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/poolwatch/dex-backend/internal/model"
)

const snapshotKey = "transactions:snapshot"

// Cache holds the materialized transaction list between indexing runs. A
// missing snapshot is how the handlers distinguish "not yet loaded" from an
// empty collection, so Snapshot reports presence explicitly.
type Cache struct {
	store *gocache.Cache
}

func New(ttl time.Duration) *Cache {
	return &Cache{
		store: gocache.New(ttl, 2*ttl),
	}
}

func (c *Cache) SetSnapshot(txs []*model.Transaction) {
	if txs == nil {
		txs = []*model.Transaction{}
	}
	c.store.Set(snapshotKey, txs, gocache.DefaultExpiration)
}

func (c *Cache) Snapshot() ([]*model.Transaction, bool) {
	value, ok := c.store.Get(snapshotKey)
	if !ok {
		return nil, false
	}

	txs, ok := value.([]*model.Transaction)
	return txs, ok
}

func (c *Cache) Invalidate() {
	c.store.Delete(snapshotKey)
}
