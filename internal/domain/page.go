package domain

// MaxPage is the highest page number a listing accepts.
const MaxPage = 1_000_000

// PageRequest is a 1-indexed page selection.
type PageRequest struct {
	Page     int
	PageSize int
}

// Normalize applies defaults, clamps the page to MaxPage and the page size
// to maxSize.
func (p PageRequest) Normalize(defaultSize, maxSize int) PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.PageSize < 1 {
		p.PageSize = defaultSize
	}
	if p.PageSize > maxSize {
		p.PageSize = maxSize
	}
	return p
}

// Offset returns the number of rows to skip.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Page is one page of a listing with the total match count.
type Page[T any] struct {
	Items      []T
	TotalCount int
	Page       int
	PageSize   int
}

// TotalPages returns the number of pages needed to cover TotalCount.
func (p Page[T]) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return (p.TotalCount + p.PageSize - 1) / p.PageSize
}

// NewPage assembles a page for req.
func NewPage[T any](items []T, total int, req PageRequest) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, TotalCount: total, Page: req.Page, PageSize: req.PageSize}
}

// PageLimits holds the default and maximum page sizes for listings.
type PageLimits struct {
	DefaultSize int
	MaxSize     int
}

// Apply normalizes p against the limits.
func (l PageLimits) Apply(p PageRequest) PageRequest {
	return p.Normalize(l.DefaultSize, l.MaxSize)
}
