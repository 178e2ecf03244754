package dto

const (
	DefaultPageIndex = 1
	DefaultPageSize  = 10

	// MaxPageSize is the upper bound the use case enforces on PageSize.
	MaxPageSize = 100
)

// ProductQuery carries pagination and ordering for a product listing.
// PageIndex is 1-based. SortBy is the caller-supplied sort field name; empty
// means unset, and anything outside the repository's allow-list falls back
// to ordering by id.
type ProductQuery struct {
	PageIndex  int
	PageSize   int
	SortBy     string
	Descending bool
}

// DefaultProductQuery returns the query used when the caller sends no
// arguments at all: first page, ten rows, ascending id order.
func DefaultProductQuery() *ProductQuery {
	return &ProductQuery{
		PageIndex: DefaultPageIndex,
		PageSize:  DefaultPageSize,
	}
}
