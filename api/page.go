package api

import (
	"bytes"
	"encoding/json"
)

// Page is the normalized paginated collection shape. Every list response,
// whatever the backend actually sent, is converted to this before it reaches
// a controller.
type Page[T any] struct {
	Items         []T
	PageNumber    int
	PageSize      int
	TotalElements int
	TotalPages    int
	First         bool
	Last          bool
}

// envelope mirrors the backend's PagedResponse. Older endpoints use
// page/size, newer ones pageNumber/pageSize; both are accepted.
type envelope struct {
	Content       json.RawMessage `json:"content"`
	PageNumber    *int            `json:"pageNumber"`
	Page          *int            `json:"page"`
	PageSize      *int            `json:"pageSize"`
	Size          *int            `json:"size"`
	TotalElements int             `json:"totalElements"`
	TotalPages    int             `json:"totalPages"`
	First         bool            `json:"first"`
	Last          bool            `json:"last"`
}

// DecodePage normalizes the three response shapes the backend has been seen
// to produce:
//
//   - the pagination envelope {content: [...], pageNumber, ...}
//   - a bare array, treated as a single unpaginated page
//   - a singular object (search-by-email style), treated as a one-item page
//
// An empty body decodes to an empty single page.
func DecodePage[T any](raw json.RawMessage) (Page[T], error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return singlePage[T](nil), nil
	}

	switch raw[0] {
	case '[':
		var items []T
		if err := json.Unmarshal(raw, &items); err != nil {
			return Page[T]{}, err
		}
		return singlePage(items), nil

	case '{':
		var env envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			return Page[T]{}, err
		}
		if env.Content == nil {
			// Not an envelope at all: a singular record.
			var item T
			if err := json.Unmarshal(raw, &item); err != nil {
				return Page[T]{}, err
			}
			return singlePage([]T{item}), nil
		}

		var items []T
		if err := json.Unmarshal(env.Content, &items); err != nil {
			return Page[T]{}, err
		}
		p := Page[T]{
			Items:         items,
			TotalElements: env.TotalElements,
			TotalPages:    env.TotalPages,
			First:         env.First,
			Last:          env.Last,
		}
		if env.PageNumber != nil {
			p.PageNumber = *env.PageNumber
		} else if env.Page != nil {
			p.PageNumber = *env.Page
		}
		if env.PageSize != nil {
			p.PageSize = *env.PageSize
		} else if env.Size != nil {
			p.PageSize = *env.Size
		}
		if p.PageSize == 0 {
			p.PageSize = len(items)
		}
		return p, nil
	}

	// Scalar body. Nothing list-shaped to salvage.
	return singlePage[T](nil), nil
}

func singlePage[T any](items []T) Page[T] {
	return Page[T]{
		Items:         items,
		PageNumber:    0,
		PageSize:      len(items),
		TotalElements: len(items),
		TotalPages:    1,
		First:         true,
		Last:          true,
	}
}

// Empty reports whether the page holds no rows. A successful fetch of an
// empty collection is the empty state, never the error state.
func (p Page[T]) Empty() bool {
	return p.TotalElements == 0 && len(p.Items) == 0
}
