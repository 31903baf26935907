package client

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeDoc(t *testing.T, raw string) map[string]any {
	t.Helper()
	doc := map[string]any{}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return doc
}

func TestExtractArrayFlatEnvelope(t *testing.T) {
	doc := decodeDoc(t, `{"success":true,"data":{"items":[{"id":1},{"id":2}]}}`)

	items := ExtractArray(doc, "data.items", "data.data.items")
	assert.Len(t, items, 2)
}

func TestExtractArrayDoubleWrappedEnvelope(t *testing.T) {
	doc := decodeDoc(t, `{"success":true,"data":{"data":{"items":[{"id":1},{"id":2},{"id":3}]}}}`)

	items := ExtractArray(doc, "data.items", "data.data.items")
	assert.Len(t, items, 3)
}

func TestExtractArrayPathOrderWins(t *testing.T) {
	doc := decodeDoc(t, `{"data":{"items":[{"id":1}],"data":{"items":[{"id":2},{"id":3}]}}}`)

	items := ExtractArray(doc, "data.items", "data.data.items")
	require.Len(t, items, 1)

	first, ok := items[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), first["id"])
}

func TestExtractArrayBareArrayAtData(t *testing.T) {
	doc := decodeDoc(t, `{"success":true,"data":[{"id":7}]}`)

	items := ExtractArray(doc, "data.items")
	assert.Len(t, items, 1)
}

func TestExtractArraySingleObjectWrapped(t *testing.T) {
	doc := decodeDoc(t, `{"data":{"items":{"id":42}}}`)

	items := ExtractArray(doc, "data.items")
	require.Len(t, items, 1)

	obj, ok := items[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(42), obj["id"])
}

func TestExtractArrayFirstArrayPropertyFallback(t *testing.T) {
	doc := decodeDoc(t, `{"data":{"total":3,"records":[{"id":1},{"id":2}]}}`)

	items := ExtractArray(doc, "data.items")
	assert.Len(t, items, 2)
}

func TestExtractArrayFallbackPicksFirstKeyInOrder(t *testing.T) {
	doc := decodeDoc(t, `{"data":{"zrecords":[{"id":1}],"arecords":[{"id":2},{"id":3}],"total":3}}`)

	for i := 0; i < 20; i++ {
		items := ExtractArray(doc, "data.items")
		require.Len(t, items, 2)

		first, ok := items[0].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, float64(2), first["id"])
	}
}

func TestExtractArrayNothingUsable(t *testing.T) {
	doc := decodeDoc(t, `{"success":true,"message":"ok","data":null}`)

	items := ExtractArray(doc, "data.items", "data.data.items")
	require.NotNil(t, items)
	assert.Empty(t, items)
}

func TestExtractPagination(t *testing.T) {
	doc := decodeDoc(t, `{"data":{"pagination":{"total":42,"page":3,"limit":10,"totalPages":5}}}`)

	p := ExtractPagination(doc, "data.pagination", "data.data.pagination")
	assert.Equal(t, Pagination{Total: 42, Page: 3, Limit: 10, TotalPages: 5}, p)
}

func TestExtractPaginationDerivesTotalPages(t *testing.T) {
	doc := decodeDoc(t, `{"data":{"pagination":{"total":21,"page":1,"limit":10}}}`)

	p := ExtractPagination(doc, "data.pagination")
	assert.Equal(t, 3, p.TotalPages)
}

func TestExtractPaginationMissingBlockDefaults(t *testing.T) {
	doc := decodeDoc(t, `{"data":{"items":[]}}`)

	p := ExtractPagination(doc, "data.pagination", "data.data.pagination")
	assert.Equal(t, DefaultPagination(), p)
}

func TestExtractPaginationDoubleWrapped(t *testing.T) {
	doc := decodeDoc(t, `{"data":{"data":{"pagination":{"total":8,"page":2,"limit":4,"totalPages":2}}}}`)

	p := ExtractPagination(doc, "data.pagination", "data.data.pagination")
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 8, p.Total)
}
