package pagination

const (
	MinPage      = 1
	MaxLimit     = 100
	DefaultLimit = 10
)

// Paginate is a page request over an in-memory list. A Limit below one means
// DefaultLimit.
type Paginate struct {
	Page  int
	Limit int
}

func (p Paginate) Size() int {
	if p.Limit <= 0 {
		return DefaultLimit
	}

	return p.Limit
}

// Offset is the index of the first item of the current page.
func (p Paginate) Offset() int {
	if p.Page < MinPage {
		return 0
	}

	return (p.Page - 1) * p.Size()
}

// Window returns the bounds of the page inside a list of total items. Pages
// past the end yield an empty window.
func (p Paginate) Window(total int) (start, end int) {
	start = min(p.Offset(), total)
	end = min(start+p.Size(), total)

	return start, end
}

func (p Paginate) TotalPages(total int) int {
	if total <= 0 {
		return 0
	}

	size := p.Size()

	return (total + size - 1) / size
}
