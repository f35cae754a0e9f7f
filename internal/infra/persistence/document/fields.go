// Package document maps domain entities onto the generic document store.
// Field names follow the camelCase layout shared with the web clients.
package document

import (
	"time"

	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"
)

// stringField reads a string field, tolerating absent or mistyped values.
func stringField(data map[string]any, key string) string {
	value, _ := data[key].(string)

	return value
}

func boolField(data map[string]any, key string) bool {
	value, _ := data[key].(bool)

	return value
}

// timeField projects a stored timestamp to time.Time. Backends return native
// timestamps or RFC3339 strings depending on how the value was written.
func timeField(data map[string]any, key string) time.Time {
	switch v := data[key].(type) {
	case time.Time:
		return v
	case *time.Time:
		if v != nil {
			return *v
		}
	case string:
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return t
		}
	}

	return time.Time{}
}

func optionalTimeField(data map[string]any, key string) *time.Time {
	t := timeField(data, key)
	if t.IsZero() {
		return nil
	}

	return &t
}

// storeError converts gateway sentinels into domain errors. notFound is
// returned for ErrDocumentNotFound so each repository keeps its own sentinel.
func storeError(err error, notFound error, action string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrDocumentNotFound):
		return notFound
	case errors.Is(err, repository.ErrPermissionDenied):
		return domainerrors.ErrPermissionDenied.WrapMessage(action)
	case errors.Is(err, repository.ErrUnavailable):
		return domainerrors.ErrStoreUnavailable.WrapMessage(action)
	default:
		return domainerrors.NewStoreExecuteError(err, action)
	}
}
