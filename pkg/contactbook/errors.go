package contactbook

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPhoneFormat is returned when a phone number is not exactly
	// ten ASCII digits.
	ErrInvalidPhoneFormat = errors.New("contactbook: invalid phone number format, expected 10 digits")

	// ErrInvalidKind is returned when a Field is constructed with an unknown kind.
	ErrInvalidKind = errors.New("contactbook: invalid field kind")
)

// ErrPhoneNotFound indicates the phone number to be edited does not exist in
// the target record's phone list.
type ErrPhoneNotFound struct {
	Phone   string
	Contact string
}

func (e *ErrPhoneNotFound) Error() string {
	return fmt.Sprintf("contactbook: phone number '%s' not found in contact '%s'", e.Phone, e.Contact)
}

func NewErrPhoneNotFound(phone, contact string) *ErrPhoneNotFound {
	return &ErrPhoneNotFound{
		Phone:   phone,
		Contact: contact,
	}
}

func IsPhoneNotFoundError(err error) bool {
	var e *ErrPhoneNotFound
	return errors.As(err, &e)
}
