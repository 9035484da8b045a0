package pagination

import (
	"encoding/json"
	"math"
	"slices"
)

// Page is one page of a larger result set plus paging metadata.
// Build it with New or json.Unmarshal; it is never mutated afterwards.
type Page[T any] struct {
	content       []T
	number        int
	size          int
	totalElements int64
	sort          Sort
}

// New builds a page from a query result. number is clamped to at least 0 and
// size to at least 1; a negative total becomes 0.
//
// When the page is the partial last page (offset+size exceeds total while content
// is not empty) the total is derived from the page itself, so that totalElements
// is never smaller than offset+len(content).
func New[T any](content []T, req Request, totalElements int64) Page[T] {
	req = NewRequest(req.Number, req.Size, req.Sort...)
	if content == nil {
		content = []T{}
	}
	if totalElements < 0 {
		totalElements = 0
	}
	if len(content) > 0 && req.Offset()+int64(req.Size) > totalElements {
		totalElements = req.Offset() + int64(len(content))
	}

	return Page[T]{
		content:       slices.Clone(content),
		number:        req.Number,
		size:          req.Size,
		totalElements: totalElements,
		sort:          slices.Clone(req.Sort),
	}
}

// Empty returns an empty page for the given request.
func Empty[T any](req Request) Page[T] {
	return New[T](nil, req, 0)
}

// Map converts the content of a page, keeping its metadata.
func Map[T, U any](p Page[T], fn func(T) U) Page[U] {
	mapped := make([]U, 0, len(p.content))
	for _, item := range p.content {
		mapped = append(mapped, fn(item))
	}
	return Page[U]{
		content:       mapped,
		number:        p.number,
		size:          p.size,
		totalElements: p.totalElements,
		sort:          p.sort,
	}
}

// Content returns a copy of the page's elements.
func (p Page[T]) Content() []T {
	if p.content == nil {
		return []T{}
	}
	return slices.Clone(p.content)
}

// Number is the zero-based page index.
func (p Page[T]) Number() int { return p.number }

// Size is the requested page size.
func (p Page[T]) Size() int { return p.size }

// TotalElements is the size of the whole result set.
func (p Page[T]) TotalElements() int64 { return p.totalElements }

// NumberOfElements is the number of elements on this page.
func (p Page[T]) NumberOfElements() int { return len(p.content) }

// Sort is the ordering the page was produced with.
func (p Page[T]) Sort() Sort { return slices.Clone(p.sort) }

// TotalPages is ceil(totalElements / size).
func (p Page[T]) TotalPages() int {
	if p.size < 1 {
		return 0
	}
	pages := p.totalElements / int64(p.size)
	if p.totalElements%int64(p.size) != 0 {
		pages++
	}
	if pages > math.MaxInt {
		return math.MaxInt
	}
	return int(pages)
}

// IsFirst reports whether this is the first page.
func (p Page[T]) IsFirst() bool { return p.number == 0 }

// IsLast reports whether no page follows this one.
func (p Page[T]) IsLast() bool { return p.number >= p.TotalPages()-1 }

// Request returns the request that describes this page.
func (p Page[T]) Request() Request {
	return Request{Number: p.number, Size: p.size, Sort: p.Sort()}
}

type sortJSON struct {
	Sorted   bool `json:"sorted"`
	Unsorted bool `json:"unsorted"`
	Empty    bool `json:"empty"`
}

type pageableJSON struct {
	PageNumber int      `json:"pageNumber"`
	PageSize   int      `json:"pageSize"`
	Offset     int64    `json:"offset"`
	Paged      bool     `json:"paged"`
	Unpaged    bool     `json:"unpaged"`
	Sort       sortJSON `json:"sort"`
}

type pageJSON[T any] struct {
	Content          []T          `json:"content"`
	Pageable         pageableJSON `json:"pageable"`
	Number           int          `json:"number"`
	Size             int          `json:"size"`
	TotalElements    int64        `json:"totalElements"`
	TotalPages       int          `json:"totalPages"`
	Last             bool         `json:"last"`
	First            bool         `json:"first"`
	NumberOfElements int          `json:"numberOfElements"`
	Empty            bool         `json:"empty"`
	Sort             sortJSON     `json:"sort"`
}

func (s Sort) toJSON() sortJSON {
	return sortJSON{Sorted: s.IsSorted(), Unsorted: !s.IsSorted(), Empty: !s.IsSorted()}
}

// MarshalJSON renders the page envelope.
func (p Page[T]) MarshalJSON() ([]byte, error) {
	sort := p.sort.toJSON()
	return json.Marshal(pageJSON[T]{
		Content: p.Content(),
		Pageable: pageableJSON{
			PageNumber: p.number,
			PageSize:   p.size,
			Offset:     p.Request().Offset(),
			Paged:      true,
			Sort:       sort,
		},
		Number:           p.number,
		Size:             p.size,
		TotalElements:    p.totalElements,
		TotalPages:       p.TotalPages(),
		Last:             p.IsLast(),
		First:            p.IsFirst(),
		NumberOfElements: p.NumberOfElements(),
		Empty:            p.NumberOfElements() == 0,
		Sort:             sort,
	})
}

// UnmarshalJSON rebuilds a page from an external payload. It never fails: each
// field is decoded independently and falls back to its default when missing,
// null or not decodable. content defaults to empty, number below 0 becomes 0,
// size below 1 becomes 1 and totalElements defaults to 0. Derived fields
// (totalPages, last, ...) and the pageable and sort metadata are ignored and
// recomputed.
func (p *Page[T]) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		fields = nil
	}

	var content []T
	if raw, ok := fields["content"]; ok {
		if err := json.Unmarshal(raw, &content); err != nil {
			content = nil
		}
	}

	number := decodeOr(fields["number"], 0)
	size := decodeOr(fields["size"], 0)
	total := decodeOr(fields["totalElements"], int64(0))

	*p = New(content, NewRequest(number, size), total)
	return nil
}

// decodeOr decodes raw into a value of type N, returning fallback when raw is
// absent, null or of the wrong type.
func decodeOr[N int | int64](raw json.RawMessage, fallback N) N {
	if len(raw) == 0 {
		return fallback
	}
	var v *N
	if err := json.Unmarshal(raw, &v); err != nil || v == nil {
		return fallback
	}
	return *v
}
