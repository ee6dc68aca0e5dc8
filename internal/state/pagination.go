package state

// Pagination defaults
const (
	DefaultPage       = 1
	DefaultTotalPages = 1
)

// Pagination tracks the page cursor, the page count and the loading flag.
// It is not safe for concurrent use; Store serializes access.
type Pagination struct {
	currentPage int
	totalPages  int
	isLoading   bool
}

// NewPagination creates a cursor on the first page
func NewPagination() Pagination {
	return Pagination{currentPage: DefaultPage, totalPages: DefaultTotalPages}
}

// SetPage stores the page verbatim, without clamping against TotalPages
func (p *Pagination) SetPage(page int) {
	p.currentPage = page
}

// SetTotalPages stores the page count reported by the data source
func (p *Pagination) SetTotalPages(total int) {
	p.totalPages = total
}

// SetLoading sets the loading flag
func (p *Pagination) SetLoading(loading bool) {
	p.isLoading = loading
}

// CurrentPage returns the page cursor
func (p *Pagination) CurrentPage() int {
	return p.currentPage
}

// TotalPages returns the page count
func (p *Pagination) TotalPages() int {
	return p.totalPages
}

// IsLoading returns the loading flag
func (p *Pagination) IsLoading() bool {
	return p.isLoading
}
