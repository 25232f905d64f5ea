//go:build unit

package lead_test

import (
	"strings"
	"testing"

	"lead-capture/internal/domain/lead"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidPhone(t *testing.T) {
	testCases := []struct {
		phone    string
		expected bool
	}{
		{phone: "1234567890", expected: true},
		{phone: "0000000000", expected: true},
		{phone: "9876543210", expected: true},
		{phone: "123", expected: false},
		{phone: "", expected: false},
		{phone: "123456789", expected: false},
		{phone: "12345678901", expected: false},
		{phone: "12345abcde", expected: false},
		{phone: "12345 6789", expected: false},
		{phone: "+919876543", expected: false},
		{phone: "١٢٣٤٥٦٧٨٩٠", expected: false},
		{phone: "１２３４５６７８９０", expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.phone, func(t *testing.T) {
			assert.Equal(t, tc.expected, lead.IsValidPhone(tc.phone))
		})
	}
}

func TestNewPhoneNumber(t *testing.T) {
	t.Run("valid number is kept verbatim", func(t *testing.T) {
		p, err := lead.NewPhoneNumber("9876543210")
		require.NoError(t, err)
		assert.Equal(t, "9876543210", p.String())
	})

	t.Run("invalid number reports the user facing message", func(t *testing.T) {
		_, err := lead.NewPhoneNumber("987")
		require.ErrorIs(t, err, lead.ErrInvalidPhone)
		assert.Equal(t, "Phone number must be exactly 10 digits", err.Error())
	})
}

func TestTextValueObjects(t *testing.T) {
	t.Run("client name is trimmed", func(t *testing.T) {
		n, err := lead.NewClientName("  Asha  ")
		require.NoError(t, err)
		assert.Equal(t, "Asha", n.String())
	})

	t.Run("blank client name", func(t *testing.T) {
		_, err := lead.NewClientName(" \t ")
		assert.ErrorIs(t, err, lead.ErrEmptyClientName)
	})

	t.Run("blank description", func(t *testing.T) {
		_, err := lead.NewDescription(strings.Repeat(" ", 5))
		assert.ErrorIs(t, err, lead.ErrEmptyDescription)
	})

	t.Run("email is optional and not format checked", func(t *testing.T) {
		assert.True(t, lead.NewEmail("").IsEmpty())
		assert.Equal(t, "not-an-email", lead.NewEmail(" not-an-email ").String())
	})
}

func TestStatus_IsValid(t *testing.T) {
	for _, s := range []lead.Status{lead.StatusPending, lead.StatusProcessing, lead.StatusCompleted, lead.StatusCancelled} {
		assert.True(t, s.IsValid(), s)
	}
	for _, s := range []lead.Status{"archived", "", "Pending"} {
		assert.False(t, s.IsValid(), s)
	}
}
