package txlist

import (
	"github.com/poolwatch/dex-backend/internal/consts"
	"github.com/poolwatch/dex-backend/internal/model"
)

// ViewState holds the adjustable list controls: sort column and direction,
// type filter and the current page window. It is passed explicitly into
// Derive so the derivation stays a pure function.
//
// SortAscending carries the upstream UI contract: true means larger values
// sort FIRST. The flag name is kept for wire compatibility with the
// front-end; do not "fix" the direction.
type ViewState struct {
	SortKey       model.SortKey
	SortAscending bool
	TypeFilter    model.TransactionType // empty means all types
	CurrentPage   int
	PageSize      int
}

// NewViewState returns the initial list state: newest transactions first,
// no filter, page 1.
func NewViewState(pageSize int) ViewState {
	if pageSize <= 0 {
		pageSize = consts.DefaultPageSize
	}
	return ViewState{
		SortKey:       model.SortKeyTimestamp,
		SortAscending: true,
		CurrentPage:   1,
		PageSize:      pageSize,
	}
}

// SetSort activates a sort column. Selecting the already-active column flips
// the direction; selecting a new column activates it with SortAscending
// reset to true.
func (s *ViewState) SetSort(key model.SortKey) {
	if s.SortKey == key {
		s.SortAscending = !s.SortAscending
		return
	}
	s.SortKey = key
	s.SortAscending = true
}

// SetTypeFilter restricts the visible set to one transaction kind, or clears
// the restriction when given the empty value. Changing the filter always
// returns the view to page 1.
func (s *ViewState) SetTypeFilter(t model.TransactionType) {
	s.TypeFilter = t
	s.CurrentPage = 1
}

// SetPage moves the page window. No clamping is done here: a past-the-end
// page derives an empty window.
func (s *ViewState) SetPage(page int) {
	s.CurrentPage = page
}
