//go:build unit

package phone_test

import (
	"testing"

	"lead-capture/internal/pkg/phone"

	"github.com/stretchr/testify/assert"
)

func TestShapeInput(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "digits only are kept", raw: "9876543210", expected: "9876543210"},
		{name: "separators are removed", raw: "98765-43210", expected: "9876543210"},
		{name: "letters are removed", raw: "12345abcde", expected: "12345"},
		{name: "truncated to ten digits", raw: "12345678901", expected: "1234567890"},
		{name: "country prefix counts towards the limit", raw: "+91 98765 43210", expected: "9198765432"},
		{name: "non-ASCII digits are dropped", raw: "١٢٣4567890", expected: "4567890"},
		{name: "empty input", raw: "", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := phone.ShapeInput(tc.raw)
			assert.Equal(t, tc.expected, got)
			assert.LessOrEqual(t, len(got), 10)
		})
	}
}

func TestE164(t *testing.T) {
	t.Run("valid Indian mobile number", func(t *testing.T) {
		assert.Equal(t, "+919876543210", phone.E164("9876543210"))
	})

	t.Run("unparseable input is returned unchanged", func(t *testing.T) {
		assert.Equal(t, "abc", phone.E164("abc"))
		assert.Equal(t, "", phone.E164(""))
	})
}
