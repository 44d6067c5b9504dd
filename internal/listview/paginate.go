package listview

// DefaultPageSize is used when a screen does not configure one.
const DefaultPageSize = 10

// Window is the page size and 1-based page index.
type Window struct {
	Size  int
	Index int
}

// TotalPages is ceil(n/size), never less than one so an empty list still
// renders a single (empty) page.
func TotalPages(n, size int) int {
	if size < 1 || n <= 0 {
		return 1
	}
	return (n + size - 1) / size
}

// Paginate returns records[(index-1)*size, index*size). An index outside
// [1, TotalPages] or a size below one yields an empty slice.
func Paginate[T any](records []T, size, index int) []T {
	if size < 1 || index < 1 {
		return []T{}
	}
	start := (index - 1) * size
	if start >= len(records) {
		return []T{}
	}
	end := min(start+size, len(records))
	out := make([]T, end-start)
	copy(out, records[start:end])
	return out
}
