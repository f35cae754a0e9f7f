package docstore

import (
	"bytes"
	"encoding/json"
	"maps"
	"strings"
	"time"

	"marketplace/internal/domain/constants"

	"github.com/pkg/errors"
)

// stampCreate returns a copy of data carrying fresh createdAt and updatedAt values.
func stampCreate(data map[string]any, now time.Time) map[string]any {
	stamped := cloneData(data)
	stamped[constants.FieldCreatedAt] = now
	stamped[constants.FieldUpdatedAt] = now

	return stamped
}

// stampUpdate returns a copy of partial carrying a fresh updatedAt value.
func stampUpdate(partial map[string]any, now time.Time) map[string]any {
	stamped := cloneData(partial)
	stamped[constants.FieldUpdatedAt] = now

	return stamped
}

func cloneData(data map[string]any) map[string]any {
	cloned := make(map[string]any, len(data)+2)
	maps.Copy(cloned, data)

	return cloned
}

// encodeData serializes a payload for backends that store JSON.
func encodeData(data map[string]any) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode document")
	}

	return raw, nil
}

// decodeData parses a stored JSON payload. Integral numbers become int64 and
// the rest float64, matching the types the hosted backend returns.
func decodeData(raw []byte) (map[string]any, error) {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var data map[string]any
	if err := decoder.Decode(&data); err != nil {
		return nil, errors.Wrap(err, "failed to decode document")
	}
	if data == nil {
		data = map[string]any{}
	}

	normalized, _ := normalizeNumbers(data).(map[string]any)

	return normalized, nil
}

func normalizeNumbers(value any) any {
	switch v := value.(type) {
	case json.Number:
		if !strings.ContainsAny(v.String(), ".eE") {
			if n, err := v.Int64(); err == nil {
				return n
			}
		}
		f, _ := v.Float64()

		return f
	case map[string]any:
		for key, item := range v {
			v[key] = normalizeNumbers(item)
		}

		return v
	case []any:
		for i, item := range v {
			v[i] = normalizeNumbers(item)
		}

		return v
	default:
		return value
	}
}

// mergeData applies a partial update on top of a stored payload.
// Nested maps are replaced, not merged, as the hosted backend does.
func mergeData(stored, partial map[string]any) map[string]any {
	merged := cloneData(stored)
	maps.Copy(merged, partial)

	return merged
}
