package txlist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/poolwatch/dex-backend/internal/model"
)

func TestNewViewState_Defaults(t *testing.T) {
	state := NewViewState(0)

	assert.Equal(t, model.SortKeyTimestamp, state.SortKey)
	assert.True(t, state.SortAscending)
	assert.Equal(t, model.TransactionType(""), state.TypeFilter)
	assert.Equal(t, 1, state.CurrentPage)
	assert.Equal(t, 10, state.PageSize)
}

func TestViewState_SetSortTogglesActiveKey(t *testing.T) {
	state := NewViewState(10)

	state.SetSort(model.SortKeyAmountUSD)
	assert.Equal(t, model.SortKeyAmountUSD, state.SortKey)
	assert.True(t, state.SortAscending)

	state.SetSort(model.SortKeyAmountUSD)
	assert.False(t, state.SortAscending)

	// a different key re-activates with the flag reset
	state.SetSort(model.SortKeySender)
	assert.Equal(t, model.SortKeySender, state.SortKey)
	assert.True(t, state.SortAscending)
}

func TestViewState_SetTypeFilterResetsPage(t *testing.T) {
	state := NewViewState(10)
	state.SetPage(5)

	state.SetTypeFilter(model.TxTypeSwap)
	assert.Equal(t, 1, state.CurrentPage)

	state.SetPage(3)
	state.SetTypeFilter("")
	assert.Equal(t, 1, state.CurrentPage)
}
