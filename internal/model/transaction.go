package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TxTypeAddLiquidity    TransactionType = "ADD_LIQUIDITY"
	TxTypeSwap            TransactionType = "SWAP"
	TxTypeRemoveLiquidity TransactionType = "REMOVE_LIQUIDITY"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TxTypeAddLiquidity, TxTypeSwap, TxTypeRemoveLiquidity:
		return true
	}
	return false
}

// Transaction is one on-chain liquidity or swap event. Amounts are signed
// from the pool's point of view: a negative amount is an outflow to the
// sender.
type Transaction struct {
	ID           int             `json:"id" gorm:"primaryKey"`
	Hash         string          `json:"hash" gorm:"uniqueIndex"`
	Timestamp    int64           `json:"timestamp"`
	Type         TransactionType `json:"type"`
	Token0Symbol string          `json:"token0_symbol"`
	Token1Symbol string          `json:"token1_symbol"`
	Amount0      decimal.Decimal `json:"amount0" gorm:"type:numeric"`
	Amount1      decimal.Decimal `json:"amount1" gorm:"type:numeric"`
	AmountUSD    decimal.Decimal `json:"amount_usd" gorm:"type:numeric"`
	Sender       string          `json:"sender"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
