package pagination

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Direction is the ordering direction of a sort property.
type Direction string

// Sort directions.
const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// Order sorts by one property.
type Order struct {
	Property  string    `json:"property"`
	Direction Direction `json:"direction"`
}

// Sort is an ordered list of sort properties. The first entry has the highest precedence.
type Sort []Order

// IsSorted reports whether at least one order is present.
func (s Sort) IsSorted() bool {
	return len(s) > 0
}

// Request describes which page of a result set to return.
type Request struct {
	Number int
	Size   int
	Sort   Sort
}

// Defaults controls how a Request is derived from query parameters.
type Defaults struct {
	Size    int
	MaxSize int
}

// NewRequest returns a page request with number clamped to at least 0 and size
// clamped to at least 1. number is also capped so that the end of the page,
// (number+1)*size, still fits in an int64.
func NewRequest(number, size int, sort ...Order) Request {
	if number < 0 {
		number = 0
	}
	if size < 1 {
		size = 1
	}
	if maxNumber := math.MaxInt64/int64(size) - 1; int64(number) > maxNumber {
		number = int(maxNumber)
	}
	return Request{Number: number, Size: size, Sort: Sort(sort)}
}

// Offset is the zero-based index of the first element of the requested page.
func (r Request) Offset() int64 {
	return int64(r.Number) * int64(r.Size)
}

// FromQuery reads the page, size and sort query parameters. Malformed values fall
// back to defaults; size is capped at d.MaxSize when it is set.
//
// Sort values use the form "property" or "property,direction", e.g. sort=title,desc.
func FromQuery(q url.Values, d Defaults) Request {
	number := parseIntOr(q.Get("page"), 0)
	size := parseIntOr(q.Get("size"), d.Size)
	if d.MaxSize > 0 && size > d.MaxSize {
		size = d.MaxSize
	}
	return NewRequest(number, size, ParseSort(q["sort"])...)
}

// ParseSort parses sort parameters. Empty properties are skipped and unknown
// directions default to ascending.
func ParseSort(values []string) Sort {
	var sort Sort
	for _, value := range values {
		parts := strings.Split(value, ",")
		property := strings.TrimSpace(parts[0])
		if property == "" {
			continue
		}
		direction := Asc
		if len(parts) > 1 && strings.EqualFold(strings.TrimSpace(parts[1]), string(Desc)) {
			direction = Desc
		}
		sort = append(sort, Order{Property: property, Direction: direction})
	}
	return sort
}

func parseIntOr(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}
