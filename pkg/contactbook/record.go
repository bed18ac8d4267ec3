package contactbook

import (
	"fmt"
	"slices"
	"strings"
)

// PhoneSeparator joins phone numbers in a record's string representation.
const PhoneSeparator = "; "

// noPhonesPlaceholder is rendered when a record has no phone numbers yet.
const noPhonesPlaceholder = "no phones"

// Record holds one contact: a name frozen at construction and an ordered,
// mutable list of validated phone numbers. Duplicate numbers are permitted;
// operations that look up a number act on the first occurrence.
type Record struct {
	name   Field
	phones []Field
}

// NewRecord creates a record for the given contact name with an empty phone
// list.
func NewRecord(name string) *Record {
	return &Record{
		name: NewName(name),
	}
}

// Name returns the contact name the record was created with.
func (r *Record) Name() string {
	return r.name.String()
}

// AddPhone validates raw and appends it to the end of the phone list.
// On validation failure the list is left unchanged and the error wraps
// ErrInvalidPhoneFormat.
func (r *Record) AddPhone(raw string) error {
	phone, err := NewPhone(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, phone)
	return nil
}

// FindPhone scans the phone list in insertion order and returns the first
// entry whose value equals raw exactly. The second return reports whether a
// match was found.
func (r *Record) FindPhone(raw string) (Field, bool) {
	if i := r.indexOf(raw); i >= 0 {
		return r.phones[i], true
	}
	return Field{}, false
}

// RemovePhone deletes the first occurrence of raw from the phone list.
// Removing a number that is not present is a no-op.
func (r *Record) RemovePhone(raw string) {
	if i := r.indexOf(raw); i >= 0 {
		r.phones = slices.Delete(r.phones, i, i+1)
	}
}

// EditPhone replaces the first occurrence of oldRaw with newRaw, keeping its
// position in the list. It returns *ErrPhoneNotFound when oldRaw is not
// present and an error wrapping ErrInvalidPhoneFormat when newRaw fails
// validation. Either failure leaves the phone list untouched.
func (r *Record) EditPhone(oldRaw, newRaw string) error {
	i := r.indexOf(oldRaw)
	if i < 0 {
		return NewErrPhoneNotFound(oldRaw, r.Name())
	}

	// Validate the replacement before touching the list.
	phone, err := NewPhone(newRaw)
	if err != nil {
		return err
	}

	r.phones[i] = phone
	return nil
}

// Phones returns a copy of the phone list in insertion order.
func (r *Record) Phones() []Field {
	return slices.Clone(r.phones)
}

// Len returns the number of phone numbers in the record.
func (r *Record) Len() int {
	return len(r.phones)
}

// String renders the record as a single human-readable line, e.g.
//
//	Contact name: John, phones: 1112223333; 5555555555
func (r *Record) String() string {
	phones := noPhonesPlaceholder
	if len(r.phones) > 0 {
		values := make([]string, len(r.phones))
		for i, p := range r.phones {
			values[i] = p.String()
		}
		phones = strings.Join(values, PhoneSeparator)
	}
	return fmt.Sprintf("Contact name: %s, phones: %s", r.Name(), phones)
}

// indexOf returns the position of the first phone equal to raw, or -1.
func (r *Record) indexOf(raw string) int {
	return slices.IndexFunc(r.phones, func(p Field) bool {
		return p.String() == raw
	})
}
