package docstore

import (
	"testing"
	"time"

	"marketplace/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestApplyQuery(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	docs := []*entity.Document{
		{ID: "c", Data: map[string]any{"status": "pending", "rank": int64(3), "at": base.Format(time.RFC3339Nano)}},
		{ID: "a", Data: map[string]any{"status": "pending", "rank": 1.0, "at": base.Add(time.Hour)}},
		{ID: "b", Data: map[string]any{"status": "approved", "rank": int64(2), "at": base.Add(-time.Hour)}},
		{ID: "d", Data: map[string]any{"rank": int64(4)}},
	}

	tests := []struct {
		name  string
		query entity.Query
		want  []string
	}{
		{
			name:  "no query sorts by id",
			query: entity.Query{},
			want:  []string{"a", "b", "c", "d"},
		},
		{
			name:  "equality filter",
			query: entity.Query{}.Where("status", "pending"),
			want:  []string{"a", "c"},
		},
		{
			name:  "numeric filter matches across int and float",
			query: entity.Query{}.Where("rank", 1),
			want:  []string{"a"},
		},
		{
			name:  "missing field never matches",
			query: entity.Query{}.Where("status", nil),
			want:  []string{},
		},
		{
			name:  "mixed timestamp representations order together",
			query: entity.Query{}.Ordered("at", entity.SortAscending),
			want:  []string{"d", "b", "c", "a"},
		},
		{
			name:  "descending with limit",
			query: entity.Query{}.Ordered("rank", entity.SortDescending).Limited(2),
			want:  []string{"d", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := applyQuery(docs, tt.query)

			ids := make([]string, 0, len(got))
			for _, doc := range got {
				ids = append(ids, doc.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestQueryBuildersDoNotShareFilters(t *testing.T) {
	base := entity.Query{}.Where("status", "pending")

	first := base.Where("type", "restaurant")
	second := base.Where("type", "delivery")

	assert.Len(t, base.Filters, 1)
	assert.Equal(t, "restaurant", first.Filters[1].Value)
	assert.Equal(t, "delivery", second.Filters[1].Value)
}

func TestDecodeDataNormalizesNumbers(t *testing.T) {
	data, err := decodeData([]byte(`{"n":3,"f":2.5,"e":1e3,"nested":{"k":[1,2.0]}}`))

	assert.NoError(t, err)
	assert.Equal(t, int64(3), data["n"])
	assert.Equal(t, 2.5, data["f"])
	assert.Equal(t, 1000.0, data["e"])
	assert.Equal(t, map[string]any{"k": []any{int64(1), 2.0}}, data["nested"])
}

func TestFingerprintDetectsChanges(t *testing.T) {
	docs := []*entity.Document{{ID: "a", Data: map[string]any{"status": "pending"}}}
	same := []*entity.Document{{ID: "a", Data: map[string]any{"status": "pending"}}}
	changed := []*entity.Document{{ID: "a", Data: map[string]any{"status": "approved"}}}

	assert.Equal(t, fingerprint(docs), fingerprint(same))
	assert.NotEqual(t, fingerprint(docs), fingerprint(changed))
	assert.Equal(t, uint64(0), fingerprint((*entity.Document)(nil)))
}

func TestValuesEqualKeepsTypes(t *testing.T) {
	tests := []struct {
		name   string
		stored any
		filter any
		want   bool
	}{
		{name: "bool does not match its text", stored: true, filter: "true", want: false},
		{name: "text does not match a bool", stored: "true", filter: true, want: false},
		{name: "numeric text does not match a number", stored: "1", filter: 1, want: false},
		{name: "number does not match numeric text", stored: int64(1), filter: "1", want: false},
		{name: "numbers compare by value", stored: int64(1), filter: 1.0, want: true},
		{name: "strings compare exactly", stored: "pending", filter: "pending", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, valuesEqual(tt.stored, tt.filter))
			assert.Equal(t, tt.want, valuesEqual(tt.filter, tt.stored), "equality must be symmetric")
		})
	}
}
