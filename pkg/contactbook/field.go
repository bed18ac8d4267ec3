package contactbook

import (
	"errors"

	"github.com/dmitrymomot/contactkit/pkg/validator"
)

// PhoneLength is the exact number of digits a phone number must contain.
const PhoneLength = 10

// Kind selects the validation rule applied when a Field is constructed.
type Kind int

const (
	// NameKind holds a contact name; any string is accepted.
	NameKind Kind = iota
	// PhoneKind holds a phone number; exactly ten ASCII digits.
	PhoneKind
)

func (k Kind) String() string {
	switch k {
	case NameKind:
		return "name"
	case PhoneKind:
		return "phone"
	default:
		return "unknown"
	}
}

// rules returns the validation rules for a raw value of this kind.
func (k Kind) rules(raw string) []validator.Rule {
	switch k {
	case PhoneKind:
		return []validator.Rule{
			validator.LenString(k.String(), raw, PhoneLength),
			validator.DigitsOnly(k.String(), raw),
		}
	default:
		return nil
	}
}

// Field is an immutable string value validated at construction time
// according to its Kind. The zero value is an empty NameKind field.
type Field struct {
	kind  Kind
	value string
}

// NewField constructs a Field of the given kind, applying the kind's
// validation rules to raw. A failed validation leaves nothing constructed:
// the returned Field is the zero value and the error wraps
// ErrInvalidPhoneFormat together with the field-level details.
func NewField(kind Kind, raw string) (Field, error) {
	if kind != NameKind && kind != PhoneKind {
		return Field{}, ErrInvalidKind
	}
	if err := validator.Apply(kind.rules(raw)...); err != nil {
		return Field{}, errors.Join(ErrInvalidPhoneFormat, err)
	}
	return Field{kind: kind, value: raw}, nil
}

// NewName wraps a contact name in a Field. Names are free-form, so
// construction cannot fail.
func NewName(raw string) Field {
	return Field{kind: NameKind, value: raw}
}

// NewPhone validates raw as a phone number and wraps it in a Field.
func NewPhone(raw string) (Field, error) {
	return NewField(PhoneKind, raw)
}

// Kind returns the validation kind the field was constructed with.
func (f Field) Kind() Kind {
	return f.kind
}

// String returns the stored value verbatim.
func (f Field) String() string {
	return f.value
}
