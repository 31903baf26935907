package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/schedulo-dev/staff-scheduler/backend/internal/grid"
	"github.com/stretchr/testify/assert"
)

func TestListParams(t *testing.T) {
	h := &Handler{}

	tests := []struct {
		name         string
		url          string
		wantPage     int
		wantLimit    int
		wantLocation int64
	}{
		{"defaults", "/shifts", 1, 10, grid.LocationAll},
		{"explicit", "/shifts?page=3&limit=25&location=7", 3, 25, 7},
		{"all locations keyword", "/shifts?location=all", 1, 10, grid.LocationAll},
		{"garbage falls back", "/shifts?page=abc&limit=-2&location=xyz", 1, 10, grid.LocationAll},
		{"zero page clamps", "/shifts?page=0", 1, 10, grid.LocationAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			page, limit, locationID := h.listParams(r)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantLocation, locationID)
		})
	}
}

func TestCalendarParams(t *testing.T) {
	h := &Handler{}

	r := httptest.NewRequest("GET", "/shifts/calendar?year=2025&month=7&week=2", nil)
	year, month, week, err := h.calendarParams(r)
	assert.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 7, int(month))
	assert.Equal(t, 2, week)

	r = httptest.NewRequest("GET", "/shifts/calendar?year=abc", nil)
	_, _, _, err = h.calendarParams(r)
	assert.Error(t, err)
}
