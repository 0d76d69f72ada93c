package contact

import (
	"fmt"
	"slices"
	"strings"
)

// PhoneSeparator joins phone numbers in a Record's text form.
const PhoneSeparator = "; "

// Record is one contact: a fixed Name and an ordered list of phone numbers.
// Duplicate numbers are allowed. A Record is not safe for concurrent use.
type Record struct {
	name   Name
	phones []PhoneNumber
}

// NewRecord returns a Record named name with no phone numbers.
func NewRecord(name string) *Record {
	return &Record{name: NewName(name)}
}

// Name returns the contact's name.
func (r *Record) Name() Name { return r.name }

// Phones returns a copy of the phone numbers in insertion order.
func (r *Record) Phones() []PhoneNumber {
	return slices.Clone(r.phones)
}

// AddPhone validates raw and appends it to the phone list.
func (r *Record) AddPhone(raw string) error {
	p, err := NewPhoneNumber(raw)
	if err != nil {
		return fmt.Errorf("add phone to %s: %w", r.name, err)
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes the first phone number equal to raw.
// It returns an error wrapping ErrNotFound if no number matches.
func (r *Record) RemovePhone(raw string) error {
	i := r.indexOf(raw)
	if i < 0 {
		return fmt.Errorf("remove phone %q from %s: %w", raw, r.name, ErrNotFound)
	}
	r.phones = slices.Delete(r.phones, i, i+1)
	return nil
}

// EditPhone replaces the first phone number equal to oldRaw with newRaw,
// keeping its position. A missing oldRaw is reported as ErrNotFound before
// newRaw is validated.
func (r *Record) EditPhone(oldRaw, newRaw string) error {
	i := r.indexOf(oldRaw)
	if i < 0 {
		return fmt.Errorf("edit phone %q of %s: %w", oldRaw, r.name, ErrNotFound)
	}
	p, err := NewPhoneNumber(newRaw)
	if err != nil {
		return fmt.Errorf("edit phone %q of %s: %w", oldRaw, r.name, err)
	}
	r.phones[i] = p
	return nil
}

// FindPhone returns the first phone number equal to raw.
func (r *Record) FindPhone(raw string) (PhoneNumber, bool) {
	i := r.indexOf(raw)
	if i < 0 {
		return PhoneNumber{}, false
	}
	return r.phones[i], true
}

// String renders the record as "Contact name: NAME, phones: P1; P2".
func (r *Record) String() string {
	digits := make([]string, len(r.phones))
	for i, p := range r.phones {
		digits[i] = p.value
	}
	return fmt.Sprintf("Contact name: %s, phones: %s", r.name, strings.Join(digits, PhoneSeparator))
}

func (r *Record) indexOf(raw string) int {
	return slices.IndexFunc(r.phones, func(p PhoneNumber) bool { return p.value == raw })
}
