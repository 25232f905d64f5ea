package lead

import "strings"

const PhoneDigits = 10

// IsValidPhone reports whether s is exactly ten ASCII digits.
func IsValidPhone(s string) bool {
	if len(s) != PhoneDigits {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

type PhoneNumber struct {
	value string
}

func NewPhoneNumber(s string) (PhoneNumber, error) {
	if !IsValidPhone(s) {
		return PhoneNumber{}, ErrInvalidPhone
	}
	return PhoneNumber{value: s}, nil
}

func (p PhoneNumber) String() string { return p.value }

type ClientName struct {
	value string
}

func NewClientName(s string) (ClientName, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return ClientName{}, ErrEmptyClientName
	}
	return ClientName{value: t}, nil
}

func (n ClientName) String() string { return n.value }

// Email is optional and deliberately unvalidated.
type Email struct {
	value string
}

func NewEmail(s string) Email {
	return Email{value: strings.TrimSpace(s)}
}

func (e Email) String() string { return e.value }

func (e Email) IsEmpty() bool { return e.value == "" }

type Description struct {
	text string
}

func NewDescription(s string) (Description, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Description{}, ErrEmptyDescription
	}
	return Description{text: t}, nil
}

func (d Description) String() string { return d.text }
