package pagination

// Pagination holds the data for a single page along with all pagination metadata.
//
// NextPage and PreviousPage are pointers so they can be omitted from JSON output
// when there isn't a next or previous page.
type Pagination[T any] struct {
	Data         []T   `json:"data"`
	Page         int   `json:"page"`
	Total        int64 `json:"total"`
	PageSize     int   `json:"page_size"`
	TotalPages   int   `json:"total_pages"`
	NextPage     *int  `json:"next_page,omitempty"`
	PreviousPage *int  `json:"previous_page,omitempty"`
}

func MakePagination[T any](data []T, paginate Paginate, total int) *Pagination[T] {
	pagination := Pagination[T]{
		Data:       data,
		Page:       paginate.Page,
		Total:      int64(total),
		PageSize:   paginate.Size(),
		TotalPages: paginate.TotalPages(total),
	}

	if pagination.Page < pagination.TotalPages {
		p := pagination.Page + 1
		pagination.NextPage = &p
	}

	if pagination.Page > 1 && pagination.Page <= pagination.TotalPages {
		p := pagination.Page - 1
		pagination.PreviousPage = &p
	}

	return &pagination
}

// Slice pages through an in-memory list.
func Slice[T any](items []T, paginate Paginate) *Pagination[T] {
	start, end := paginate.Window(len(items))

	page := make([]T, end-start)
	copy(page, items[start:end])

	return MakePagination(page, paginate, len(items))
}

// HydratePagination maps the items of a page while keeping its metadata.
func HydratePagination[S any, D any](source *Pagination[S], mapper func(S) D) *Pagination[D] {
	mappedData := make([]D, len(source.Data))

	for i, item := range source.Data {
		mappedData[i] = mapper(item)
	}

	return &Pagination[D]{
		Data:         mappedData,
		Total:        source.Total,
		Page:         source.Page,
		PageSize:     source.PageSize,
		TotalPages:   source.TotalPages,
		NextPage:     source.NextPage,
		PreviousPage: source.PreviousPage,
	}
}
