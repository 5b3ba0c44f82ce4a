//go:build unit || e2e

package testutil

// Field overrides one request field; a nil value removes the key so "required" validation can be hit.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}
