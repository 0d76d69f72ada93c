package contact

import "fmt"

// PhoneDigits is the required length of a phone number.
const PhoneDigits = 10

// PhoneNumber is a phone number of exactly PhoneDigits decimal digits.
// The zero value is not a valid number; use NewPhoneNumber.
type PhoneNumber struct {
	value string
}

// NewPhoneNumber validates value and returns it as a PhoneNumber.
// It returns an error wrapping ErrInvalidFormat if value is not exactly
// PhoneDigits characters in the range '0'..'9'.
func NewPhoneNumber(value string) (PhoneNumber, error) {
	if !isPhoneDigits(value) {
		return PhoneNumber{}, fmt.Errorf("%w: %q must be %d digits", ErrInvalidFormat, value, PhoneDigits)
	}
	return PhoneNumber{value: value}, nil
}

// String returns the digits of the phone number.
func (p PhoneNumber) String() string { return p.value }

func isPhoneDigits(s string) bool {
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
