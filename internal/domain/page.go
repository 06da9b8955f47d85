package domain

type Pagination struct {
	Count       int     `json:"count"`
	Next        *string `json:"next"`
	Previous    *string `json:"previous"`
	PageSize    int     `json:"page_size"`
	CurrentPage int     `json:"current_page"`
	TotalPages  int     `json:"total_pages"`
}

// Page is the normalized list result for every resource, whichever envelope
// the content API used.
type Page[T any] struct {
	Success    bool       `json:"success"`
	Message    string     `json:"message"`
	Items      []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

func (p Page[T]) Empty() bool { return len(p.Items) == 0 }

// EmptyPage is the sentinel returned when a list fetch fails.
func EmptyPage[T any](page, pageSize int, msg string) Page[T] {
	return Page[T]{
		Success: false,
		Message: msg,
		Items:   []T{},
		Pagination: Pagination{
			Count:       0,
			PageSize:    pageSize,
			CurrentPage: page,
			TotalPages:  0,
		},
	}
}

// TotalPages is ceil(count/pageSize), 0 when pageSize is not positive.
func TotalPages(count, pageSize int) int {
	if pageSize <= 0 || count <= 0 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}

type ListQuery struct {
	Page     int
	PageSize int
	Active   bool
	Category *int64
	Status   string
}

type GalleryQuery struct {
	Featured bool
	Category string
}
