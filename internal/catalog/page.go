package catalog

import (
	"encoding/json"

	"github.com/LuciusCaesar/D360-Client/internal/metrics"
	"github.com/LuciusCaesar/D360-Client/internal/models"
)

// Page is the paging envelope wrapped around list responses.
type Page[T any] struct {
	PageSize int `json:"pageSize"`
	PageNum  int `json:"pageNum"`
	Total    int `json:"total"`
	Items    []T `json:"items"`
}

// Truncated reports whether the server holds more items than this page carries.
func (p Page[T]) Truncated() bool { return p.Total > len(p.Items) }

// Count is the number of items on the page.
func (p Page[T]) Count() int { return len(p.Items) }

// TotalCount is the number of items the server reports overall.
func (p Page[T]) TotalCount() int { return p.Total }

// decodePage reads an envelope. A missing or null items key yields an empty page.
func decodePage[T any](entity string, body []byte) (Page[T], error) {
	var env struct {
		PageSize int             `json:"pageSize"`
		PageNum  int             `json:"pageNum"`
		Total    int             `json:"total"`
		Items    json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		metrics.Inc(metrics.DecodeErrors)
		return Page[T]{}, models.WrapDecodeError("Page", err)
	}
	page := Page[T]{PageSize: env.PageSize, PageNum: env.PageNum, Total: env.Total, Items: []T{}}
	if len(env.Items) == 0 || string(env.Items) == "null" {
		return page, nil
	}
	items, err := decodeList[T](entity, env.Items)
	if err != nil {
		return Page[T]{}, err
	}
	page.Items = items
	return page, nil
}
