package dashboard

// DefaultPageSize is the number of rows per table page.
const DefaultPageSize = 10

// Paginate returns the 1-based page of items. Pages before the first are
// treated as the first; pages past the end are empty.
func Paginate[T any](items []T, page, size int) []T {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := min(start+size, len(items))
	return items[start:end]
}

// TotalPages is ceil(total/size).
func TotalPages(total, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	if total <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// PageInfo describes the rows shown, for "Showing 11-20 of 42".
type PageInfo struct {
	Page  int `json:"page"`
	Pages int `json:"pages"`
	Start int `json:"start"`
	End   int `json:"end"`
	Total int `json:"total"`
}

// Pager holds the current page of one list.
type Pager struct {
	page int
	size int
}

func NewPager(size int) *Pager {
	if size <= 0 {
		size = DefaultPageSize
	}
	return &Pager{page: 1, size: size}
}

func (p *Pager) Page() int { return p.page }

func (p *Pager) Size() int { return p.size }

// Reset goes back to the first page, used whenever a filter changes.
func (p *Pager) Reset() { p.page = 1 }

// SetPage jumps to page, clamped to [1, TotalPages(total)].
func (p *Pager) SetPage(page, total int) {
	p.page = page
	p.Clamp(total)
}

// Clamp keeps the current page inside the list after it shrank.
func (p *Pager) Clamp(total int) {
	last := max(TotalPages(total, p.size), 1)
	p.page = min(max(p.page, 1), last)
}

func (p *Pager) HasPrev() bool { return p.page > 1 }

func (p *Pager) HasNext(total int) bool { return p.page < TotalPages(total, p.size) }

// Prev moves back one page; it reports false when already on the first page.
func (p *Pager) Prev() bool {
	if !p.HasPrev() {
		return false
	}
	p.page--
	return true
}

// Next moves forward one page; it reports false on the last page.
func (p *Pager) Next(total int) bool {
	if !p.HasNext(total) {
		return false
	}
	p.page++
	return true
}

func (p *Pager) Info(total int) PageInfo {
	info := PageInfo{Page: p.page, Pages: TotalPages(total, p.size), Total: total}
	if total == 0 {
		return info
	}
	info.Start = (p.page-1)*p.size + 1
	info.End = min(info.Start+p.size-1, total)
	if info.Start > total {
		info.Start, info.End = 0, 0
	}
	return info
}

// ApplyPage returns the current page of items.
func ApplyPage[T any](p *Pager, items []T) []T {
	return Paginate(items, p.page, p.size)
}
