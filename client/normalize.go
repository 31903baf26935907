package client

import (
	"sort"
	"strings"
)

// Pagination mirrors the paging block of listing responses.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// DefaultPagination is what a listing without a usable paging block
// normalizes to: a single page of the default size.
func DefaultPagination() Pagination {
	return Pagination{Total: 0, Page: 1, Limit: 10, TotalPages: 1}
}

// lookup walks a dotted path through nested objects. The path matches only
// when every intermediate step is an object.
func lookup(doc any, path string) (any, bool) {
	current := doc
	for _, key := range strings.Split(path, ".") {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// ExtractArray resolves the records of a listing response that may arrive in
// several envelope shapes. The candidate paths are probed in order; the
// first one holding an array wins, and a single object at a matching path is
// treated as a one-element listing. When no path matches, the first
// array-valued property of the document's data object in key order is used.
// A response with no array anywhere normalizes to an empty slice, never nil.
func ExtractArray(doc map[string]any, paths ...string) []any {
	for _, path := range paths {
		value, ok := lookup(doc, path)
		if !ok || value == nil {
			continue
		}
		switch v := value.(type) {
		case []any:
			return v
		case map[string]any:
			return []any{v}
		}
	}

	// double-wrapped envelopes put the payload one level deeper
	for _, root := range []string{"data", "data.data"} {
		value, ok := lookup(doc, root)
		if !ok {
			continue
		}
		if arr, ok := value.([]any); ok {
			return arr
		}
		obj, ok := value.(map[string]any)
		if !ok {
			continue
		}
		// map iteration order is random; sort the keys so the same
		// document always yields the same property
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if arr, ok := obj[k].([]any); ok {
				return arr
			}
		}
	}

	return []any{}
}

// ExtractPagination probes the candidate paths for a paging block and falls
// back to DefaultPagination when none is present or the block is malformed.
func ExtractPagination(doc map[string]any, paths ...string) Pagination {
	for _, path := range paths {
		value, ok := lookup(doc, path)
		if !ok {
			continue
		}
		obj, ok := value.(map[string]any)
		if !ok {
			continue
		}

		p := DefaultPagination()
		if total, ok := intField(obj, "total"); ok {
			p.Total = total
		}
		if page, ok := intField(obj, "page"); ok {
			p.Page = page
		}
		if limit, ok := intField(obj, "limit"); ok {
			p.Limit = limit
		}
		if totalPages, ok := intField(obj, "totalPages"); ok {
			p.TotalPages = totalPages
		} else if p.Limit > 0 {
			p.TotalPages = (p.Total + p.Limit - 1) / p.Limit
			if p.TotalPages < 1 {
				p.TotalPages = 1
			}
		}
		return p
	}

	return DefaultPagination()
}

// intField reads a numeric JSON property, which decodes as float64.
func intField(obj map[string]any, key string) (int, bool) {
	value, ok := obj[key]
	if !ok {
		return 0, false
	}
	switch v := value.(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	}
	return 0, false
}
