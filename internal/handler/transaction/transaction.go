package transaction

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/poolwatch/dex-backend/internal/model"
	"github.com/poolwatch/dex-backend/internal/monitoring"
	"github.com/poolwatch/dex-backend/internal/store"
	"github.com/poolwatch/dex-backend/internal/txcache"
	"github.com/poolwatch/dex-backend/internal/txlist"
	"github.com/poolwatch/dex-backend/internal/utils/config"
	"github.com/poolwatch/dex-backend/internal/utils/format"
	"github.com/poolwatch/dex-backend/internal/utils/logger"
)

type transactionHandler struct {
	db        *gorm.DB
	store     *store.Store
	cache     *txcache.Cache
	appConfig *config.AppConfig
	logger    *logger.Logger
	metrics   *monitoring.HTTPMetrics
}

// NewTransactionHandler creates a new instance of TransactionHandler
func NewTransactionHandler(
	db *gorm.DB,
	s *store.Store,
	cache *txcache.Cache,
	appConfig *config.AppConfig,
	logger *logger.Logger,
	metrics *monitoring.HTTPMetrics,
) IHandler {
	return &transactionHandler{
		db:        db,
		store:     s,
		cache:     cache,
		appConfig: appConfig,
		logger:    logger,
		metrics:   metrics,
	}
}

// ListTransactions retrieves the current page window of pool transactions
// @Summary List pool transactions
// @Description Returns a sorted, filtered, paginated window of pool transactions
// @Tags transactions
// @Accept json
// @Produce json
// @Param page query int false "1-based page number"
// @Param page_size query int false "page window size, 1..100"
// @Param type query string false "transaction type filter" Enums(ADD_LIQUIDITY, SWAP, REMOVE_LIQUIDITY)
// @Param sort_by query string false "sort key" Enums(amountUSD, timestamp, sender, amountToken0, amountToken1)
// @Param asc query bool false "sort flag; true ranks larger values first"
// @Success 200 {object} ListTransactionsResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/transactions [get]
func (h *transactionHandler) ListTransactions(c *gin.Context) {
	var req ListTransactionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	typeFilter := model.TransactionType(req.Type)
	if req.Type != "" && !typeFilter.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown transaction type: " + req.Type})
		return
	}

	sortKey, ok := model.ParseSortKey(req.SortBy)
	if req.SortBy != "" && !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown sort key: " + req.SortBy})
		return
	}

	pageSize := h.appConfig.PageSize
	if req.PageSize > 0 {
		pageSize = req.PageSize
	}

	state := txlist.NewViewState(pageSize)
	if req.SortBy != "" {
		state.SortKey = sortKey
	}
	if req.Asc != nil {
		state.SortAscending = *req.Asc
	}
	if req.Type != "" {
		state.SetTypeFilter(typeFilter)
	}
	if req.Page > 0 {
		state.SetPage(req.Page)
	}

	page := txlist.Derive(h.loadTransactions(), state)

	c.JSON(http.StatusOK, h.toResponse(page))
}

// loadTransactions serves from the snapshot cache, falling back to the
// database. nil means the collection is not materialized yet.
func (h *transactionHandler) loadTransactions() []*model.Transaction {
	if txs, ok := h.cache.Snapshot(); ok {
		h.recordCache("hit")
		return txs
	}
	h.recordCache("miss")

	if h.db == nil {
		return nil
	}

	txs, err := h.store.DexTransaction.All(h.db)
	if err != nil {
		h.logger.Error("[ListTransactions][All]", map[string]string{
			"error": err.Error(),
		})
		return nil
	}

	h.cache.SetSnapshot(txs)
	return txs
}

func (h *transactionHandler) recordCache(operation string) {
	if h.metrics != nil {
		h.metrics.RecordCacheOperation("snapshot", operation)
	}
}

func (h *transactionHandler) toResponse(page txlist.Page) ListTransactionsResponse {
	resp := ListTransactionsResponse{
		Transactions: []TransactionView{},
		CurrentPage:  page.CurrentPage,
		PageSize:     page.PageSize,
		TotalItems:   page.TotalItems,
		TotalPages:   page.TotalPages,
		State:        string(page.State),
		Message:      page.Message,
	}

	explorer := h.appConfig.Chain.ExplorerBaseURL
	now := time.Now()
	for _, row := range txlist.Rows(page.Transactions) {
		resp.Transactions = append(resp.Transactions, TransactionView{
			Hash:               row.Hash,
			ExplorerURL:        format.ExplorerURL(explorer, row.Hash, format.EntityTransaction),
			Type:               row.Type,
			InputTokenSymbol:   row.InputTokenSymbol,
			InputAmount:        row.InputAmount.String(),
			OutputTokenSymbol:  row.OutputTokenSymbol,
			OutputAmount:       row.OutputAmount.String(),
			AmountUSD:          row.AmountUSD.String(),
			AmountUSDFormatted: format.USD(row.AmountUSD),
			Sender:             row.Sender,
			SenderShort:        format.ShortenAddress(row.Sender),
			SenderURL:          format.ExplorerURL(explorer, row.Sender, format.EntityAddress),
			Timestamp:          row.Timestamp,
			TimeAgo:            format.RelativeTime(row.Timestamp, now),
		})
	}

	return resp
}
