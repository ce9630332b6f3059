package model

// SortKey selects the transaction field the list is ordered by.
type SortKey string

const (
	SortKeyAmountUSD    SortKey = "amountUSD"
	SortKeyTimestamp    SortKey = "timestamp"
	SortKeySender       SortKey = "sender"
	SortKeyAmountToken0 SortKey = "amountToken0"
	SortKeyAmountToken1 SortKey = "amountToken1"
)

// ParseSortKey converts a wire value into a SortKey; ok is false for
// anything outside the enumeration.
func ParseSortKey(s string) (SortKey, bool) {
	key := SortKey(s)
	return key, key.Valid()
}

func (k SortKey) Valid() bool {
	switch k {
	case SortKeyAmountUSD, SortKeyTimestamp, SortKeySender, SortKeyAmountToken0, SortKeyAmountToken1:
		return true
	}
	return false
}
