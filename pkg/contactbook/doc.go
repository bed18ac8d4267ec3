// Package contactbook provides an in-memory contact directory: named records
// holding validated phone numbers, collected in an address book keyed by
// contact name.
//
// The package revolves around three types:
//
//   - Field       – an immutable string value validated at construction time
//     according to its Kind (NameKind accepts anything, PhoneKind requires
//     exactly ten ASCII digits)
//   - Record      – one contact: a frozen name plus an ordered, mutable list
//     of phone Fields with add/find/remove/edit operations
//   - AddressBook – a name-keyed collection of records with
//     add/find/delete operations
//
// # Usage
//
//	book := contactbook.New()
//
//	john := contactbook.NewRecord("John")
//	if err := john.AddPhone("1234567890"); err != nil {
//	    // not ten digits
//	}
//	book.AddRecord(john)
//
//	if record, ok := book.Find("John"); ok {
//	    _ = record.EditPhone("1234567890", "1112223333")
//	    fmt.Println(record) // Contact name: John, phones: 1112223333
//	}
//
// # Validation
//
// Phone numbers are validated once, when a Field is constructed (via AddPhone
// or the replacement step of EditPhone). Validation is rule-based and backed
// by the validator package; a failure wraps ErrInvalidPhoneFormat and leaves
// the record untouched. Names carry no format rule.
//
// # Error Handling
//
// Two error kinds exist:
//
//   - ErrInvalidPhoneFormat – sentinel, matched with errors.Is; returned when
//     a phone value is not exactly ten digits
//   - ErrPhoneNotFound      – struct error returned by EditPhone when the
//     number to replace is absent; carries the missing number and the contact
//     name, matched with errors.As or IsPhoneNotFoundError
//
// Lookups (Record.FindPhone, AddressBook.Find) signal absence with a
// comma-ok boolean rather than an error, and deletions (Record.RemovePhone,
// AddressBook.Delete) treat an absent target as a successful no-op.
//
// # Concurrency
//
// The types in this package are not safe for concurrent use. Callers that
// share a Record or AddressBook across goroutines must provide their own
// synchronization.
package contactbook
