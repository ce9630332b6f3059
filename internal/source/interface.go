package source

import (
	"context"

	"github.com/poolwatch/dex-backend/internal/model"
)

// ISource is the upstream data-fetch collaborator: it materializes the list
// of known pool transactions. Implementations return one page per call,
// oldest first; a page shorter than the source page limit means the tail has
// been reached.
type ISource interface {
	FetchTransactions(ctx context.Context, sinceTimestamp int64) ([]*model.Transaction, error)
}
