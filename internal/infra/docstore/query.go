package docstore

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"time"

	"marketplace/internal/domain/entity"
)

// applyQuery evaluates q over documents in memory, for backends without native query support.
func applyQuery(docs []*entity.Document, q entity.Query) []*entity.Document {
	matched := make([]*entity.Document, 0, len(docs))
	for _, doc := range docs {
		if matchFilters(doc.Data, q.Filters) {
			matched = append(matched, doc)
		}
	}

	if q.OrderBy != nil && q.OrderBy.Field != "" {
		field := q.OrderBy.Field
		desc := q.OrderBy.Direction == entity.SortDescending
		slices.SortStableFunc(matched, func(a, b *entity.Document) int {
			c := compareValues(a.Data[field], b.Data[field])
			if desc {
				return -c
			}

			return c
		})
	} else {
		slices.SortStableFunc(matched, func(a, b *entity.Document) int {
			return cmp.Compare(a.ID, b.ID)
		})
	}

	if q.Limit > 0 && len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}

	return matched
}

func matchFilters(data map[string]any, filters []entity.Filter) bool {
	for _, f := range filters {
		value, ok := data[f.Field]
		if !ok || !valuesEqual(value, f.Value) {
			return false
		}
	}

	return true
}

func valuesEqual(a, b any) bool {
	if af, ok := toFloat(a); ok {
		bf, ok := toFloat(b)

		return ok && af == bf
	}
	if at, ok := toTime(a); ok {
		bt, ok := toTime(b)

		return ok && at.Equal(bt)
	}

	return reflect.DeepEqual(a, b)
}

// compareValues orders mixed values: missing values first, then numbers,
// timestamps, strings and booleans.
func compareValues(a, b any) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}

	if af, ok := toFloat(a); ok {
		if bf, ok := toFloat(b); ok {
			return cmp.Compare(af, bf)
		}
	}
	if at, ok := toTime(a); ok {
		if bt, ok := toTime(b); ok {
			return at.Compare(bt)
		}
	}
	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			return cmp.Compare(as, bs)
		}
	}
	if ab, ok := a.(bool); ok {
		if bb, ok := b.(bool); ok {
			switch {
			case ab == bb:
				return 0
			case !ab:
				return -1
			default:
				return 1
			}
		}
	}

	return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

func toTime(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}

		return *v, true
	case string:
		t, err := time.Parse(time.RFC3339Nano, v)

		return t, err == nil
	default:
		return time.Time{}, false
	}
}
