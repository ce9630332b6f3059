package consts

const (
	// DefaultPageSize is the page window size used when the client does not
	// override it.
	DefaultPageSize = 10

	// MaxPageSize caps client-supplied page sizes.
	MaxPageSize = 100

	// DefaultIndexPeriod is the indexing interval used when INDEX_PERIOD is
	// not configured.
	DefaultIndexPeriod = "2m"

	// SourcePageLimit is the batch size the upstream source returns per
	// request.
	SourcePageLimit = 100
)
