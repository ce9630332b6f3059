package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poolwatch/dex-backend/internal/model"
	"github.com/poolwatch/dex-backend/internal/types/environments"
	"github.com/poolwatch/dex-backend/internal/utils/logger"
)

const validSender = "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"

func newTestSubgraph(t *testing.T, handler http.HandlerFunc) (*subgraph, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &subgraph{
		baseURL: srv.URL,
		client:  srv.Client(),
		logger:  logger.New(environments.Test),
	}, srv
}

func TestFetchTransactions_DecodesRecords(t *testing.T) {
	client, _ := newTestSubgraph(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transactions", r.URL.Path)
		assert.Equal(t, "150", r.URL.Query().Get("since"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"transactions":[
			{"hash":"0x1","timestamp":200,"type":"SWAP","token0_symbol":"WETH","token1_symbol":"USDC",
			 "amount0":"-1.5","amount1":"3000","amount_usd":"2985.12","sender":"` + validSender + `"}
		]}`))
	})

	txs, err := client.FetchTransactions(context.Background(), 150)

	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "0x1", txs[0].Hash)
	assert.Equal(t, model.TxTypeSwap, txs[0].Type)
	assert.Equal(t, "-1.5", txs[0].Amount0.String())
	// sender is normalized to its checksummed form
	assert.Equal(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", txs[0].Sender)
}

func TestFetchTransactions_SkipsMalformedRecords(t *testing.T) {
	client, _ := newTestSubgraph(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"transactions":[
			{"hash":"0x1","timestamp":1,"type":"SWAP","amount0":"1","amount1":"-2","amount_usd":"3","sender":"` + validSender + `"},
			{"hash":"0x2","timestamp":2,"type":"NOT_A_TYPE","amount0":"1","amount1":"-2","amount_usd":"3","sender":"` + validSender + `"},
			{"hash":"0x3","timestamp":3,"type":"SWAP","amount0":"oops","amount1":"-2","amount_usd":"3","sender":"` + validSender + `"},
			{"hash":"0x4","timestamp":4,"type":"SWAP","amount0":"1","amount1":"-2","amount_usd":"3","sender":"somewhere"},
			{"hash":"","timestamp":5,"type":"SWAP","amount0":"1","amount1":"-2","amount_usd":"3","sender":"` + validSender + `"},
			{"hash":"0x6","timestamp":6,"type":"ADD_LIQUIDITY","amount0":"1","amount1":"2","amount_usd":"3","sender":"` + validSender + `"}
		]}`))
	})

	txs, err := client.FetchTransactions(context.Background(), 0)

	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "0x1", txs[0].Hash)
	assert.Equal(t, "0x6", txs[1].Hash)
}

func TestFetchTransactions_UpstreamError(t *testing.T) {
	client, _ := newTestSubgraph(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "subgraph is indexing", http.StatusServiceUnavailable)
	})

	txs, err := client.FetchTransactions(context.Background(), 0)

	assert.Nil(t, txs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status code: 503")
}

func TestFetchTransactions_BadJSON(t *testing.T) {
	client, _ := newTestSubgraph(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	})

	_, err := client.FetchTransactions(context.Background(), 0)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode")
}
