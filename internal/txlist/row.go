package txlist

import (
	"github.com/shopspring/decimal"

	"github.com/poolwatch/dex-backend/internal/model"
)

// Row is the presentation shape of one transaction. The source record is
// left untouched; the input/output labels and magnitudes are derived per
// render.
type Row struct {
	Hash              string
	Type              model.TransactionType
	Timestamp         int64
	InputTokenSymbol  string
	InputAmount       decimal.Decimal
	OutputTokenSymbol string
	OutputAmount      decimal.Decimal
	AmountUSD         decimal.Decimal
	Sender            string
}

// NewRow derives the presentation labels for one transaction. The token
// whose signed amount is negative flowed out of the sender's position, so it
// is the output side.
func NewRow(tx *model.Transaction) Row {
	outSymbol, outAmount := tx.Token1Symbol, tx.Amount1
	if tx.Amount0.IsNegative() {
		outSymbol, outAmount = tx.Token0Symbol, tx.Amount0
	}

	inSymbol, inAmount := tx.Token1Symbol, tx.Amount1
	if tx.Amount1.IsNegative() {
		inSymbol, inAmount = tx.Token0Symbol, tx.Amount0
	}

	return Row{
		Hash:              tx.Hash,
		Type:              tx.Type,
		Timestamp:         tx.Timestamp,
		InputTokenSymbol:  inSymbol,
		InputAmount:       inAmount.Abs(),
		OutputTokenSymbol: outSymbol,
		OutputAmount:      outAmount.Abs(),
		AmountUSD:         tx.AmountUSD,
		Sender:            tx.Sender,
	}
}

// Rows maps a page window to presentation rows. Nil records are skipped
// rather than rendered as broken rows.
func Rows(txs []*model.Transaction) []Row {
	rows := make([]Row, 0, len(txs))
	for _, tx := range txs {
		if tx == nil {
			continue
		}
		rows = append(rows, NewRow(tx))
	}
	return rows
}
