package transaction

import (
	"github.com/gin-gonic/gin"

	"github.com/poolwatch/dex-backend/internal/model"
)

type IHandler interface {
	// ListTransactions returns the sorted, filtered page window of pool
	// transactions.
	ListTransactions(c *gin.Context)
}

type ListTransactionsRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	Type     string `form:"type"`
	SortBy   string `form:"sort_by"`
	Asc      *bool  `form:"asc"`
}

// TransactionView is one rendered row: raw fields plus the derived
// presentation labels and links.
type TransactionView struct {
	Hash               string                `json:"hash"`
	ExplorerURL        string                `json:"explorer_url"`
	Type               model.TransactionType `json:"type"`
	InputTokenSymbol   string                `json:"input_token_symbol"`
	InputAmount        string                `json:"input_amount"`
	OutputTokenSymbol  string                `json:"output_token_symbol"`
	OutputAmount       string                `json:"output_amount"`
	AmountUSD          string                `json:"amount_usd"`
	AmountUSDFormatted string                `json:"amount_usd_formatted"`
	Sender             string                `json:"sender"`
	SenderShort        string                `json:"sender_short"`
	SenderURL          string                `json:"sender_url"`
	Timestamp          int64                 `json:"timestamp"`
	TimeAgo            string                `json:"time_ago"`
}

type ListTransactionsResponse struct {
	Transactions []TransactionView `json:"transactions"`
	CurrentPage  int               `json:"currentPage"`
	PageSize     int               `json:"pageSize"`
	TotalItems   int               `json:"totalItems"`
	TotalPages   int               `json:"totalPages"`
	State        string            `json:"state"`
	Message      string            `json:"message,omitempty"`
}
