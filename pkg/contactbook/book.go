package contactbook

import (
	"sort"
)

// AddressBook owns a collection of records keyed by contact name. The map is
// private; all access goes through the methods below.
type AddressBook struct {
	records map[string]*Record
}

// New creates an empty address book.
func New() *AddressBook {
	return &AddressBook{
		records: make(map[string]*Record),
	}
}

// AddRecord stores the record under its own contact name, silently
// overwriting any record previously stored under that name. Nil records are
// ignored.
func (b *AddressBook) AddRecord(record *Record) {
	if record == nil {
		return
	}
	b.records[record.Name()] = record
}

// Find returns the record stored under name. The second return reports
// whether the name is present.
func (b *AddressBook) Find(name string) (*Record, bool) {
	record, ok := b.records[name]
	return record, ok
}

// Delete removes the record stored under name. Deleting an absent name is a
// no-op.
func (b *AddressBook) Delete(name string) {
	delete(b.records, name)
}

// Len returns the number of records in the book.
func (b *AddressBook) Len() int {
	return len(b.records)
}

// Names returns the contact names in the book, sorted for deterministic
// output.
func (b *AddressBook) Names() []string {
	names := make([]string, 0, len(b.records))
	for name := range b.records {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
