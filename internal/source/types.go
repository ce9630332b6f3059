package source

// transactionPayload is the wire shape of one transaction event from the
// subgraph gateway. Amounts arrive as decimal strings.
type transactionPayload struct {
	Hash         string `json:"hash"`
	Timestamp    int64  `json:"timestamp"`
	Type         string `json:"type"`
	Token0Symbol string `json:"token0_symbol"`
	Token1Symbol string `json:"token1_symbol"`
	Amount0      string `json:"amount0"`
	Amount1      string `json:"amount1"`
	AmountUSD    string `json:"amount_usd"`
	Sender       string `json:"sender"`
}

type transactionsResponse struct {
	Transactions []transactionPayload `json:"transactions"`
}
