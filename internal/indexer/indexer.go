package indexer

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/poolwatch/dex-backend/internal/consts"
	"github.com/poolwatch/dex-backend/internal/model"
	"github.com/poolwatch/dex-backend/internal/source"
	"github.com/poolwatch/dex-backend/internal/store"
	"github.com/poolwatch/dex-backend/internal/txcache"
	"github.com/poolwatch/dex-backend/internal/utils/config"
	"github.com/poolwatch/dex-backend/internal/utils/logger"
)

const fetchTimeout = 30 * time.Second

type Indexer struct {
	db        *gorm.DB
	store     *store.Store
	cache     *txcache.Cache
	source    source.ISource
	appConfig *config.AppConfig
	logger    *logger.Logger
}

func New(db *gorm.DB, store *store.Store, cache *txcache.Cache, src source.ISource, appConfig *config.AppConfig, logger *logger.Logger) *Indexer {
	return &Indexer{
		db:        db,
		store:     store,
		cache:     cache,
		source:    src,
		appConfig: appConfig,
		logger:    logger,
	}
}

// IndexTransactions pulls everything newer than the latest stored
// transaction from the upstream source, persists it oldest first, and
// refreshes the snapshot the list handlers serve from.
func (idx *Indexer) IndexTransactions() error {
	idx.logger.Info("[IndexTransactions] Start indexing pool transactions...")

	since := int64(0)
	latestHash := ""
	latestTx, err := idx.store.DexTransaction.GetLatest(idx.db)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			idx.logger.Error("[IndexTransactions][GetLatest]", map[string]string{
				"error": err.Error(),
			})
			return err
		}
	} else if latestTx != nil {
		since = latestTx.Timestamp
		latestHash = latestTx.Hash
	}

	idx.logger.Info(fmt.Sprintf("[IndexTransactions] Latest stored transaction: %s at %d", latestHash, since))

	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	fetched, err := fetchAll(ctx, idx.source, since)
	if err != nil {
		idx.logger.Error("[IndexTransactions][FetchTransactions]", map[string]string{
			"error": err.Error(),
		})
		return err
	}

	fresh := filterNew(fetched, since, latestHash)
	if len(fresh) == 0 {
		idx.logger.Info("[IndexTransactions] No new transactions found.")
		return idx.refreshSnapshot()
	}

	err = store.DoInTx(idx.db, func(tx *gorm.DB) error {
		for _, poolTx := range fresh {
			_, err := idx.store.DexTransaction.Create(tx, poolTx)
			if err != nil {
				idx.logger.Error("[IndexTransactions][Create]", map[string]string{
					"error": err.Error(),
				})
				return err
			}
			idx.logger.Info(fmt.Sprintf("Tx Hash: %s - USD: %s [%s]", poolTx.Hash, poolTx.AmountUSD, poolTx.Type))
		}
		return nil
	})
	if err != nil {
		return err
	}

	return idx.refreshSnapshot()
}

func (idx *Indexer) refreshSnapshot() error {
	txs, err := idx.store.DexTransaction.All(idx.db)
	if err != nil {
		idx.logger.Error("[IndexTransactions][All]", map[string]string{
			"error": err.Error(),
		})
		return err
	}

	idx.cache.SetSnapshot(txs)
	return nil
}

// fetchAll pages through the source starting at the given timestamp. The
// cursor must move strictly forward between pages: when a full page shares
// one timestamp the next fetch would repeat it forever, so a non-advancing
// cursor ends the walk and filterNew drops whatever overlapped.
func fetchAll(ctx context.Context, src source.ISource, since int64) ([]*model.Transaction, error) {
	fetched := []*model.Transaction{}
	cursor := since
	for {
		page, err := src.FetchTransactions(ctx, cursor)
		if err != nil {
			return nil, err
		}
		fetched = append(fetched, page...)
		if len(page) < consts.SourcePageLimit {
			break
		}
		next := page[len(page)-1].Timestamp
		if next <= cursor {
			break
		}
		cursor = next
	}
	return fetched, nil
}

// filterNew keeps the transactions strictly newer than the stored tip,
// deduplicated by hash and ordered oldest first for insertion. Records
// sharing the tip's timestamp are kept unless they are the tip itself.
func filterNew(txs []*model.Transaction, since int64, latestHash string) []*model.Transaction {
	seen := map[string]bool{}
	fresh := []*model.Transaction{}
	for _, tx := range txs {
		if tx == nil || tx.Hash == latestHash || seen[tx.Hash] {
			continue
		}
		if tx.Timestamp < since {
			continue
		}
		seen[tx.Hash] = true
		fresh = append(fresh, tx)
	}

	sort.SliceStable(fresh, func(i, j int) bool {
		return fresh[i].Timestamp < fresh[j].Timestamp
	})

	return fresh
}
