package txlist

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poolwatch/dex-backend/internal/model"
)

func TestNewRow_SwapLabels(t *testing.T) {
	// Pool paid out 1.5 WETH (negative), took in 3000 USDC.
	tx := &model.Transaction{
		Hash:         "0xabc",
		Type:         model.TxTypeSwap,
		Token0Symbol: "WETH",
		Token1Symbol: "USDC",
		Amount0:      decimal.RequireFromString("-1.5"),
		Amount1:      decimal.RequireFromString("3000"),
		AmountUSD:    decimal.RequireFromString("2985.12"),
		Sender:       "0xsender",
	}

	row := NewRow(tx)

	assert.Equal(t, "WETH", row.OutputTokenSymbol)
	assert.Equal(t, "1.5", row.OutputAmount.String())
	assert.Equal(t, "USDC", row.InputTokenSymbol)
	assert.Equal(t, "3000", row.InputAmount.String())
	assert.Equal(t, "2985.12", row.AmountUSD.String())
}

func TestNewRow_ReverseDirection(t *testing.T) {
	tx := &model.Transaction{
		Token0Symbol: "WETH",
		Token1Symbol: "USDC",
		Amount0:      decimal.RequireFromString("2"),
		Amount1:      decimal.RequireFromString("-4000"),
	}

	row := NewRow(tx)

	// amount1 is the outflow, so token0 is the input side
	assert.Equal(t, "USDC", row.OutputTokenSymbol)
	assert.Equal(t, "4000", row.OutputAmount.String())
	assert.Equal(t, "WETH", row.InputTokenSymbol)
	assert.Equal(t, "2", row.InputAmount.String())
}

func TestRows_SkipsNilRecords(t *testing.T) {
	txs := []*model.Transaction{
		{Hash: "0x1", Token0Symbol: "WETH", Token1Symbol: "USDC"},
		nil,
		{Hash: "0x2", Token0Symbol: "WETH", Token1Symbol: "USDC"},
	}

	rows := Rows(txs)

	require.Len(t, rows, 2)
	assert.Equal(t, "0x1", rows[0].Hash)
	assert.Equal(t, "0x2", rows[1].Hash)
}
