package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/poolwatch/dex-backend/internal/consts"
	"github.com/poolwatch/dex-backend/internal/model"
	"github.com/poolwatch/dex-backend/internal/utils/config"
	"github.com/poolwatch/dex-backend/internal/utils/logger"
)

type subgraph struct {
	baseURL string
	client  *http.Client
	logger  *logger.Logger
}

func New(cfg *config.AppConfig, logger *logger.Logger) ISource {
	return &subgraph{
		baseURL: cfg.Chain.SubgraphURL,
		client:  &http.Client{},
		logger:  logger,
	}
}

// FetchTransactions pulls one page of pool transactions newer than the given
// timestamp, oldest first. Records that fail to decode are skipped rather
// than failing the page.
func (s *subgraph) FetchTransactions(ctx context.Context, sinceTimestamp int64) ([]*model.Transaction, error) {
	url := fmt.Sprintf("%s/transactions?since=%d&limit=%d", s.baseURL, sinceTimestamp, consts.SourcePageLimit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	req.Header.Add("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to request transactions")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("status code: %d, failed to fetch transactions: %s", resp.StatusCode, string(body))
	}

	var payload transactionsResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode transactions response")
	}

	txs := make([]*model.Transaction, 0, len(payload.Transactions))
	for _, raw := range payload.Transactions {
		tx, err := s.toTransaction(raw)
		if err != nil {
			s.logger.Error("[FetchTransactions] skipping malformed record", map[string]string{
				"hash":  raw.Hash,
				"error": err.Error(),
			})
			continue
		}
		txs = append(txs, tx)
	}

	return txs, nil
}

func (s *subgraph) toTransaction(raw transactionPayload) (*model.Transaction, error) {
	txType := model.TransactionType(raw.Type)
	if !txType.Valid() {
		return nil, errors.Errorf("unknown transaction type: %s", raw.Type)
	}

	if !common.IsHexAddress(raw.Sender) {
		return nil, errors.Errorf("invalid sender address: %s", raw.Sender)
	}

	amount0, err := decimal.NewFromString(raw.Amount0)
	if err != nil {
		return nil, errors.Wrap(err, "invalid amount0: "+raw.Amount0)
	}
	amount1, err := decimal.NewFromString(raw.Amount1)
	if err != nil {
		return nil, errors.Wrap(err, "invalid amount1: "+raw.Amount1)
	}
	amountUSD, err := decimal.NewFromString(raw.AmountUSD)
	if err != nil {
		return nil, errors.Wrap(err, "invalid amount_usd: "+raw.AmountUSD)
	}

	if raw.Hash == "" || raw.Timestamp <= 0 {
		return nil, errors.Errorf("missing hash or timestamp, hash=%q timestamp=%s",
			raw.Hash, strconv.FormatInt(raw.Timestamp, 10))
	}

	return &model.Transaction{
		Hash:         raw.Hash,
		Timestamp:    raw.Timestamp,
		Type:         txType,
		Token0Symbol: raw.Token0Symbol,
		Token1Symbol: raw.Token1Symbol,
		Amount0:      amount0,
		Amount1:      amount1,
		AmountUSD:    amountUSD,
		Sender:       common.HexToAddress(raw.Sender).Hex(),
	}, nil
}
