package model

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPageParams(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		want       PageParams
	}{
		{"defaults", 0, 0, PageParams{Page: 1, Size: DefaultPageSize}},
		{"negative page", -3, 10, PageParams{Page: 1, Size: 10}},
		{"clamped size", 2, 500, PageParams{Page: 2, Size: MaxPageSize}},
		{"as given", 3, 20, PageParams{Page: 3, Size: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPageParams(tt.page, tt.size))
		})
	}
}

func TestPageParams_Offset(t *testing.T) {
	assert.Equal(t, 0, NewPageParams(1, 10).Offset())
	assert.Equal(t, 20, NewPageParams(3, 10).Offset())
}

func TestNewPage(t *testing.T) {
	p := NewPage([]string{"a", "b"}, 5, NewPageParams(1, 2))

	assert.Equal(t, 3, p.Pages)
	assert.Equal(t, int64(5), p.Total)
	assert.Len(t, p.Items, 2)

	empty := NewPage[string](nil, 0, NewPageParams(1, 10))
	assert.NotNil(t, empty.Items)
	assert.Equal(t, 0, empty.Pages)
}

func TestMapPage(t *testing.T) {
	p := NewPage([]int{1, 2, 3}, 3, NewPageParams(1, 10))
	doubled := MapPage(p, func(i int) int { return i * 2 })

	assert.Equal(t, []int{2, 4, 6}, doubled.Items)
	assert.Equal(t, p.Pages, doubled.Pages)
}

func TestBase_JSONHidesInternalKey(t *testing.T) {
	id := uuid.New()
	raw, err := json.Marshal(Base{PkID: 42, ID: id})
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":"`+id.String()+`"}`, string(raw))
}
