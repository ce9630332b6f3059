package txlist

import (
	"sort"
	"strings"

	"github.com/poolwatch/dex-backend/internal/consts"
	"github.com/poolwatch/dex-backend/internal/model"
)

type PageState string

const (
	// StateLoading means the transaction collection has not been
	// materialized yet (nil input).
	StateLoading PageState = "loading"
	// StateEmpty means the collection is known and zero rows match the
	// active filter.
	StateEmpty PageState = "empty"
	StateOK    PageState = "ok"
)

// NoTransactionsMessage is rendered verbatim by the front-end for the empty
// state.
const NoTransactionsMessage = "No Transactions"

// Page is the derived window of transactions to render, plus pagination
// metadata.
type Page struct {
	Transactions []*model.Transaction
	CurrentPage  int
	PageSize     int
	TotalItems   int
	TotalPages   int
	State        PageState
	Message      string
}

// Derive computes the page window for the given state. The input slice is
// never mutated; a nil slice means the data has not loaded yet.
//
// The pipeline intentionally sorts the full collection before filtering, and
// takes the page count from a separately filtered count. That matches the
// upstream front-end's order of operations; both paths share one predicate
// so the counts agree.
func Derive(txs []*model.Transaction, state ViewState) Page {
	if state.PageSize <= 0 {
		state.PageSize = consts.DefaultPageSize
	}

	page := Page{
		CurrentPage: state.CurrentPage,
		PageSize:    state.PageSize,
		TotalPages:  1,
		State:       StateOK,
	}

	if txs == nil {
		page.State = StateLoading
		return page
	}

	filteredCount := 0
	for _, tx := range txs {
		if matchesFilter(tx, state.TypeFilter) {
			filteredCount++
		}
	}
	page.TotalItems = filteredCount

	totalPages := filteredCount / state.PageSize
	if filteredCount%state.PageSize != 0 {
		totalPages++
	}
	if totalPages < 1 {
		totalPages = 1
	}
	page.TotalPages = totalPages

	sorted := make([]*model.Transaction, len(txs))
	copy(sorted, txs)
	sortTransactions(sorted, state.SortKey, state.SortAscending)

	filtered := make([]*model.Transaction, 0, filteredCount)
	for _, tx := range sorted {
		if matchesFilter(tx, state.TypeFilter) {
			filtered = append(filtered, tx)
		}
	}

	if len(filtered) == 0 {
		page.State = StateEmpty
		page.Message = NoTransactionsMessage
		page.Transactions = []*model.Transaction{}
		return page
	}

	start := state.PageSize * (state.CurrentPage - 1)
	end := state.PageSize * state.CurrentPage
	if start < 0 || start >= len(filtered) {
		page.Transactions = []*model.Transaction{}
		return page
	}
	if end > len(filtered) {
		end = len(filtered)
	}
	page.Transactions = filtered[start:end]

	return page
}

func matchesFilter(tx *model.Transaction, filter model.TransactionType) bool {
	if tx == nil {
		return false
	}
	return filter == "" || tx.Type == filter
}

// sortTransactions orders the slice in place. One comparator per sort key;
// compare returns >0 when a ranks above b in raw field order. With
// ascending=true larger values go first (inverted flag, see ViewState).
func sortTransactions(txs []*model.Transaction, key model.SortKey, ascending bool) {
	var compare func(a, b *model.Transaction) int

	switch key {
	case model.SortKeyAmountUSD:
		compare = func(a, b *model.Transaction) int { return a.AmountUSD.Cmp(b.AmountUSD) }
	case model.SortKeySender:
		compare = func(a, b *model.Transaction) int { return strings.Compare(a.Sender, b.Sender) }
	case model.SortKeyAmountToken0:
		compare = func(a, b *model.Transaction) int { return a.Amount0.Cmp(b.Amount0) }
	case model.SortKeyAmountToken1:
		compare = func(a, b *model.Transaction) int { return a.Amount1.Cmp(b.Amount1) }
	case model.SortKeyTimestamp:
		fallthrough
	default:
		compare = func(a, b *model.Transaction) int {
			switch {
			case a.Timestamp < b.Timestamp:
				return -1
			case a.Timestamp > b.Timestamp:
				return 1
			}
			return 0
		}
	}

	sort.SliceStable(txs, func(i, j int) bool {
		a, b := txs[i], txs[j]
		if a == nil || b == nil {
			return b == nil && a != nil
		}
		if ascending {
			return compare(a, b) > 0
		}
		return compare(a, b) < 0
	})
}
