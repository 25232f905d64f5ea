//go:build unit || e2e

package testutil

// Field sets key to value; a nil value removes the key so the field is absent
// from the request body.
func Field(key string, value any) func(map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}
